package mocks

import (
	"canteen-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateCategory(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MenuRepository) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MenuRepository) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MenuRepository) UpdateCategory(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MenuRepository) DeleteCategory(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MenuRepository) CreateDish(dish *domain.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *MenuRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MenuRepository) ListDishes(filter domain.DishFilter) ([]domain.MenuDish, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuDish), args.Error(1)
}

func (m *MenuRepository) UpdateDish(dish *domain.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *MenuRepository) DeleteDish(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
