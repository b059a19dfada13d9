// Package postgres loads the product catalog from PostgreSQL. The
// catalog is read once at startup and stays immutable afterwards.
package postgres

import (
	"context"
	"database/sql"

	"avtomaster/pkg/catalog"
)

// Source reads products from a products table.
type Source struct {
	db *sql.DB
}

// New creates a PostgreSQL catalog source. The caller must ensure the
// database has a products table:
// CREATE TABLE IF NOT EXISTS products (id INT PRIMARY KEY, name TEXT, price INT, category TEXT, in_stock BOOLEAN);
func New(db *sql.DB) *Source {
	return &Source{db: db}
}

// Load fetches all products in id order.
func (s *Source) Load(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, price, category, in_stock FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.InStock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
