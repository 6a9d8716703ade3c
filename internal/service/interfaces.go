package service

import (
	"context"
	"time"

	"canteen-pos/internal/domain"
)

type MenuRepository interface {
	CreateCategory(category *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(category *domain.Category) error
	DeleteCategory(id int) error
	CreateDish(dish *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	ListDishes(filter domain.DishFilter) ([]domain.MenuDish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(id int) error
}

type OrderRepository interface {
	SaveOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(from, to *time.Time) ([]domain.OrderSummary, error)
	DeleteOrder(id int) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type ReportRepository interface {
	DailyStats(day time.Time) (*domain.DailyReport, error)
	CategorySales(start, end time.Time) ([]domain.CategorySales, error)
	PopularDishes(start, end *time.Time, limit int) ([]domain.PopularDish, error)
}

type ReportCache interface {
	PopularKey(start, end *time.Time, limit int) string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type MenuServiceInterface interface {
	CreateCategory(category *domain.Category) error
	ListCategories() ([]domain.Category, error)
	UpdateCategory(category *domain.Category) error
	DeleteCategory(id int) error
	CreateDish(dish *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	ListDishes(filter domain.DishFilter) ([]domain.MenuDish, error)
	UpdateDish(id int, update domain.DishUpdate) (*domain.Dish, error)
	DeleteDish(id int) error
	Menu() (map[string][]domain.MenuDish, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, items []domain.OrderItemInput) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List(from, to *time.Time) ([]domain.OrderSummary, error)
	Delete(id int) error
	ReceiptQR(id int) ([]byte, error)
}

type ReportServiceInterface interface {
	Daily(day time.Time) (*domain.DailyReport, error)
	ByCategory(start, end time.Time) (*domain.CategoryReport, error)
	Popular(ctx context.Context, start, end *time.Time, limit int) ([]domain.PopularDish, error)
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
var _ ReportServiceInterface = (*ReportService)(nil)
