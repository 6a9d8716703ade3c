package storage

import (
	"database/sql"
	"fmt"
	"time"

	"canteen-pos/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateCategory(category *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at",
		category.Name,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, created_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var category domain.Category
	err := r.DB.QueryRow(
		"SELECT id, name, created_at FROM categories WHERE id = $1", id).
		Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) UpdateCategory(category *domain.Category) error {
	err := r.DB.QueryRow(
		"UPDATE categories SET name=$1 WHERE id=$2 RETURNING id, name, created_at",
		category.Name, category.ID).
		Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrCategoryNotFound
	}
	return err
}

// DeleteCategory checks for owned dishes and deletes in the same transaction,
// so a concurrent dish insert cannot slip between the check and the delete.
func (r *PostgresRepository) DeleteCategory(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var dishCount int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM dishes WHERE category_id = $1", id).Scan(&dishCount); err != nil {
		return err
	}
	if dishCount > 0 {
		return &domain.ConflictError{
			Msg: fmt.Sprintf("cannot delete category: it contains %d dishes", dishCount),
		}
	}

	result, err := tx.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrCategoryNotFound
	}

	return tx.Commit()
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(
		"INSERT INTO dishes (category_id, name, price, is_available) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		dish.CategoryID, dish.Name, dish.Price, dish.IsAvailable).
		Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(
		"SELECT id, category_id, name, price, is_available, created_at FROM dishes WHERE id = $1", id).
		Scan(&dish.ID, &dish.CategoryID, &dish.Name, &dish.Price, &dish.IsAvailable, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) ListDishes(filter domain.DishFilter) ([]domain.MenuDish, error) {
	query := `
		SELECT d.id, d.category_id, d.name, d.price, d.is_available, d.created_at, c.name
		FROM dishes d
		JOIN categories c ON c.id = d.category_id`
	var args []interface{}
	var clauses []string

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("d.category_id = $%d", len(args)))
	}
	if filter.AvailableOnly {
		clauses = append(clauses, "d.is_available")
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY c.name, d.name"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.MenuDish
	for rows.Next() {
		var dish domain.MenuDish
		if err := rows.Scan(&dish.ID, &dish.CategoryID, &dish.Name, &dish.Price,
			&dish.IsAvailable, &dish.CreatedAt, &dish.CategoryName); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	result, err := r.DB.Exec(`
		UPDATE dishes
		SET name=$1, price=$2, category_id=$3, is_available=$4
		WHERE id=$5`,
		dish.Name, dish.Price, dish.CategoryID, dish.IsAvailable, dish.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

// DeleteDish refuses to delete a dish still referenced by order line items;
// the reference count and the delete share one transaction.
func (r *PostgresRepository) DeleteDish(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var refCount int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM order_items WHERE dish_id = $1", id).Scan(&refCount); err != nil {
		return err
	}
	if refCount > 0 {
		return &domain.ConflictError{
			Msg: fmt.Sprintf("cannot delete dish: it appears in %d order items", refCount),
		}
	}

	result, err := tx.Exec("DELETE FROM dishes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrDishNotFound
	}

	return tx.Commit()
}

// SaveOrder persists the order header and every line item in one transaction.
func (r *PostgresRepository) SaveOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (status, total_amount, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, order.Status, order.TotalAmount, order.CreatedAt).Scan(&order.ID); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, dish_id, quantity, price, item_total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, order.ID, item.DishID, item.Quantity, item.Price, item.ItemTotal).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, status, total_amount, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.Status, &order.TotalAmount, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.id, oi.dish_id, d.name, oi.quantity, oi.price, oi.item_total
		FROM order_items oi
		JOIN dishes d ON d.id = oi.dish_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.DishID, &item.DishName,
			&item.Quantity, &item.Price, &item.ItemTotal); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders(from, to *time.Time) ([]domain.OrderSummary, error) {
	query := `
		SELECT o.id, o.total_amount, o.created_at,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		FROM orders o`
	var args []interface{}

	if from != nil {
		args = append(args, from.Format("2006-01-02"))
		query += fmt.Sprintf(" WHERE o.created_at::date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, to.Format("2006-01-02"))
		if from != nil {
			query += fmt.Sprintf(" AND o.created_at::date <= $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE o.created_at::date <= $%d", len(args))
		}
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderSummary{}
	for rows.Next() {
		var summary domain.OrderSummary
		if err := rows.Scan(&summary.OrderID, &summary.TotalAmount,
			&summary.OrderDate, &summary.ItemCount); err != nil {
			continue
		}
		summary.Date = summary.OrderDate.Format("02.01.2006")
		summary.Time = summary.OrderDate.Format("15:04")
		orders = append(orders, summary)
	}
	return orders, nil
}

func (r *PostgresRepository) DeleteOrder(id int) error {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}
