package storage

import (
	"fmt"
	"time"

	"canteen-pos/internal/domain"

	"github.com/shopspring/decimal"
)

// Report queries read committed orders and line items only. Captured line
// totals carry the price at order time, so later price edits never change
// what a past report says.

func (r *PostgresRepository) DailyStats(day time.Time) (*domain.DailyReport, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.created_at, o.total_amount,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.created_at::date = $1
		ORDER BY o.created_at DESC
	`, day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := &domain.DailyReport{
		Date:       day.Format("2006-01-02"),
		DailyTotal: decimal.Zero,
		Orders:     []domain.DailyOrder{},
	}
	for rows.Next() {
		var createdAt time.Time
		var entry domain.DailyOrder
		if err := rows.Scan(&entry.OrderID, &createdAt, &entry.Total, &entry.ItemCount); err != nil {
			continue
		}
		entry.Time = createdAt.Format("15:04")
		report.Orders = append(report.Orders, entry)
		report.OrdersCount++
		report.DailyTotal = report.DailyTotal.Add(entry.Total)
	}
	return report, nil
}

func (r *PostgresRepository) CategorySales(start, end time.Time) ([]domain.CategorySales, error) {
	rows, err := r.DB.Query(`
		SELECT c.name, SUM(oi.quantity) AS quantity, SUM(oi.item_total) AS amount
		FROM categories c
		JOIN dishes d ON d.category_id = c.id
		JOIN order_items oi ON oi.dish_id = d.id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at::date BETWEEN $1 AND $2
		GROUP BY c.id, c.name
		ORDER BY amount DESC
	`, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []domain.CategorySales{}
	for rows.Next() {
		var row domain.CategorySales
		if err := rows.Scan(&row.Category, &row.Quantity, &row.Amount); err != nil {
			continue
		}
		sales = append(sales, row)
	}
	return sales, nil
}

func (r *PostgresRepository) PopularDishes(start, end *time.Time, limit int) ([]domain.PopularDish, error) {
	query := `
		SELECT d.name, c.name AS category, SUM(oi.quantity) AS sold, SUM(oi.item_total) AS revenue
		FROM dishes d
		JOIN categories c ON c.id = d.category_id
		JOIN order_items oi ON oi.dish_id = d.id
		JOIN orders o ON o.id = oi.order_id`
	var args []interface{}

	if start != nil {
		args = append(args, start.Format("2006-01-02"))
		query += fmt.Sprintf(" WHERE o.created_at::date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, end.Format("2006-01-02"))
		if start != nil {
			query += fmt.Sprintf(" AND o.created_at::date <= $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE o.created_at::date <= $%d", len(args))
		}
	}

	args = append(args, limit)
	query += fmt.Sprintf(`
		GROUP BY d.id, d.name, c.name
		ORDER BY sold DESC
		LIMIT $%d`, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.PopularDish{}
	for rows.Next() {
		var dish domain.PopularDish
		if err := rows.Scan(&dish.Dish, &dish.Category, &dish.Sold, &dish.Revenue); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}
