package service

import (
	"errors"
	"fmt"
	"strings"

	"canteen-pos/internal/domain"
)

var (
	ErrEmptyCategoryName = errors.New("category name must not be empty")
	ErrEmptyDishName     = errors.New("dish name must not be empty")
	ErrInvalidPrice      = errors.New("dish price must be positive")
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) CreateCategory(category *domain.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrEmptyCategoryName
	}
	return s.repo.CreateCategory(category)
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *MenuService) UpdateCategory(category *domain.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrEmptyCategoryName
	}
	return s.repo.UpdateCategory(category)
}

func (s *MenuService) DeleteCategory(id int) error {
	return s.repo.DeleteCategory(id)
}

func (s *MenuService) CreateDish(dish *domain.Dish) error {
	dish.Name = strings.TrimSpace(dish.Name)
	if dish.Name == "" {
		return ErrEmptyDishName
	}
	if !dish.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if _, err := s.repo.GetCategory(dish.CategoryID); err != nil {
		return err
	}
	return s.repo.CreateDish(dish)
}

func (s *MenuService) GetDish(id int) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *MenuService) ListDishes(filter domain.DishFilter) ([]domain.MenuDish, error) {
	return s.repo.ListDishes(filter)
}

// UpdateDish merges the set fields of update onto the stored dish.
// Each updatable field is listed and validated here.
func (s *MenuService) UpdateDish(id int, update domain.DishUpdate) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrEmptyDishName
		}
		dish.Name = name
	}
	if update.Price != nil {
		if !update.Price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		dish.Price = *update.Price
	}
	if update.CategoryID != nil {
		if _, err := s.repo.GetCategory(*update.CategoryID); err != nil {
			return nil, err
		}
		dish.CategoryID = *update.CategoryID
	}
	if update.IsAvailable != nil {
		dish.IsAvailable = *update.IsAvailable
	}

	if err := s.repo.UpdateDish(dish); err != nil {
		return nil, fmt.Errorf("failed to update dish %d: %w", id, err)
	}
	return dish, nil
}

func (s *MenuService) DeleteDish(id int) error {
	return s.repo.DeleteDish(id)
}

// Menu returns all dishes grouped by category name, the cashier view.
func (s *MenuService) Menu() (map[string][]domain.MenuDish, error) {
	dishes, err := s.repo.ListDishes(domain.DishFilter{AvailableOnly: true})
	if err != nil {
		return nil, err
	}

	menu := make(map[string][]domain.MenuDish)
	for _, dish := range dishes {
		menu[dish.CategoryName] = append(menu[dish.CategoryName], dish)
	}
	return menu, nil
}
