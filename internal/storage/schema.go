package storage

import "fmt"

// EnsureSchema creates the tables and indexes when they are missing.
// Every statement is idempotent.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price > 0),
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			status TEXT NOT NULL DEFAULT 'completed',
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price NUMERIC(10,2) NOT NULL,
			item_total NUMERIC(10,2) NOT NULL
		)`,
		"CREATE INDEX IF NOT EXISTS idx_dishes_category ON dishes (category_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_dish ON order_items (dish_id)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
