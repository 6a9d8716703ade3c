package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Dish struct {
	ID          int             `json:"id"`
	CategoryID  int             `json:"category_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MenuDish is a dish together with its category name, as shown on the menu.
type MenuDish struct {
	Dish
	CategoryName string `json:"category_name"`
}

const OrderStatusCompleted = "completed"

type Order struct {
	ID          int             `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem captures the unit price at order time; ItemTotal = Price * Quantity.
type OrderItem struct {
	ID        int             `json:"id,omitempty"`
	DishID    int             `json:"dish_id"`
	DishName  string          `json:"dish_name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	ItemTotal decimal.Decimal `json:"item_total"`
}

// OrderItemInput is one line of an incoming order request.
type OrderItemInput struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

// OrderSummary is a list row for order history views.
type OrderSummary struct {
	OrderID     int             `json:"order_id"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

// DishUpdate is a partial dish update; nil fields are left untouched.
type DishUpdate struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int             `json:"category_id"`
	IsAvailable *bool            `json:"is_available"`
}

type DishFilter struct {
	CategoryID    int
	AvailableOnly bool
}

type DailyOrder struct {
	OrderID   int             `json:"order_id"`
	Time      string          `json:"time"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type DailyReport struct {
	Date         string          `json:"date"`
	OrdersCount  int             `json:"orders_count"`
	DailyTotal   decimal.Decimal `json:"daily_total"`
	AverageOrder decimal.Decimal `json:"average_order"`
	Orders       []DailyOrder    `json:"orders"`
}

type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CategorySales struct {
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

type CategoryReport struct {
	Period      ReportPeriod    `json:"period"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Categories  []CategorySales `json:"categories"`
}

type PopularDish struct {
	Dish     string          `json:"dish"`
	Category string          `json:"category"`
	Sold     int             `json:"sold"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	Timestamp   time.Time       `json:"timestamp"`
}
