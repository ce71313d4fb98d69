package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/inventrack/inventory-api/internal/models"
)

// SQLProductRepository implements ProductRepository against the products
// table. Each method is a single statement with an implicit per-statement
// commit; no transaction spans multiple calls.
type SQLProductRepository struct {
	db *sqlx.DB
}

// NewSQLProductRepository creates a new SQLProductRepository.
func NewSQLProductRepository(db *sqlx.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db}
}

// GetAll returns all products. Order is whatever the datastore yields.
func (r *SQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	const q = `SELECT id, name, type, status FROM products`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *SQLProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	const q = `SELECT id, name, type, status FROM products WHERE id = $1 LIMIT 1`

	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product. The datastore assigns the id, which is
// written back into product.
func (r *SQLProductRepository) Create(ctx context.Context, product *models.Product) error {
	const q = `INSERT INTO products (name, type, status)
              VALUES ($1, $2, $3)
              RETURNING id`

	return r.db.QueryRowxContext(ctx, q, product.Name, product.Type, product.Status).Scan(&product.ID)
}

// Update overwrites name, type, and status for the row matching product.ID.
func (r *SQLProductRepository) Update(ctx context.Context, product *models.Product) error {
	const q = `UPDATE products SET name = $1, type = $2, status = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, q, product.Name, product.Type, product.Status, product.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes a product by id. Deleting an absent id succeeds.
func (r *SQLProductRepository) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
