package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"canteen-pos/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
)

type OrderService struct {
	menu      MenuRepository
	orders    OrderRepository
	publisher OrderPublisher
	qr        QRGenerator

	// now is the order timestamp source, swappable in tests.
	now func() time.Time
}

func NewOrderService(menu MenuRepository, orders OrderRepository, publisher OrderPublisher, qr QRGenerator, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		menu:      menu,
		orders:    orders,
		publisher: publisher,
		qr:        qr,
		now:       now,
	}
}

// Create validates the requested items against the menu, prices each line
// from the current dish price, and persists the order atomically. The total
// is always recomputed here; client-supplied amounts are never trusted.
func (s *OrderService) Create(ctx context.Context, items []domain.OrderItemInput) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: dish %d", ErrInvalidQuantity, item.DishID)
		}
	}

	order := &domain.Order{
		Status:      domain.OrderStatusCompleted,
		TotalAmount: decimal.Zero,
		CreatedAt:   s.now(),
		Items:       make([]domain.OrderItem, 0, len(items)),
	}

	// Duplicate dish ids stay separate line items.
	for _, item := range items {
		dish, err := s.menu.GetDish(item.DishID)
		if err != nil {
			if errors.Is(err, domain.ErrDishNotFound) {
				return nil, fmt.Errorf("%w: dish %d", domain.ErrDishNotFound, item.DishID)
			}
			return nil, fmt.Errorf("failed to load dish %d: %w", item.DishID, err)
		}
		if !dish.IsAvailable {
			return nil, fmt.Errorf("%w: dish %d", domain.ErrDishUnavailable, item.DishID)
		}

		itemTotal := dish.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Items = append(order.Items, domain.OrderItem{
			DishID:    dish.ID,
			DishName:  dish.Name,
			Quantity:  item.Quantity,
			Price:     dish.Price,
			ItemTotal: itemTotal,
		})
		order.TotalAmount = order.TotalAmount.Add(itemTotal)
	}

	if err := s.orders.SaveOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        "order_created",
			OrderID:     order.ID,
			TotalAmount: order.TotalAmount,
			ItemCount:   len(order.Items),
			Timestamp:   order.CreatedAt,
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[pos] warning: failed to publish order %d event: %v", order.ID, err)
		}
	}

	if png, err := s.qr.Generate(order.ID); err != nil {
		log.Printf("[pos] warning: failed to generate receipt QR for order %d: %v", order.ID, err)
	} else if err := s.orders.SaveQRCode(order.ID, png); err != nil {
		log.Printf("[pos] warning: failed to store receipt QR for order %d: %v", order.ID, err)
	}

	return order, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.orders.GetOrder(id)
}

func (s *OrderService) List(from, to *time.Time) ([]domain.OrderSummary, error) {
	return s.orders.ListOrders(from, to)
}

func (s *OrderService) Delete(id int) error {
	return s.orders.DeleteOrder(id)
}

// ReceiptQR returns the stored receipt QR PNG, regenerating it when missing.
func (s *OrderService) ReceiptQR(id int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 {
		qr, err = s.qr.Generate(id)
		if err != nil {
			return nil, fmt.Errorf("failed to generate receipt QR: %w", err)
		}
		if err := s.orders.SaveQRCode(id, qr); err != nil {
			log.Printf("[pos] warning: failed to cache regenerated QR for order %d: %v", id, err)
		}
	}
	return qr, nil
}
