package mocks

import (
	"canteen-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) CreateCategory(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MenuServiceInterface) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MenuServiceInterface) UpdateCategory(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MenuServiceInterface) DeleteCategory(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MenuServiceInterface) CreateDish(dish *domain.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *MenuServiceInterface) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MenuServiceInterface) ListDishes(filter domain.DishFilter) ([]domain.MenuDish, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuDish), args.Error(1)
}

func (m *MenuServiceInterface) UpdateDish(id int, update domain.DishUpdate) (*domain.Dish, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MenuServiceInterface) DeleteDish(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MenuServiceInterface) Menu() (map[string][]domain.MenuDish, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.MenuDish), args.Error(1)
}
