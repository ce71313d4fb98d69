package repository

import (
	"context"
	"errors"

	"github.com/inventrack/inventory-api/internal/models"
)

// ErrProductNotFound is returned when an operation targets an id that does
// not exist. Delete is exempt: removing an absent id is a silent no-op.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the persistence gateway for products. Any store that
// satisfies these five operations is substitutable without touching the
// HTTP layer.
type ProductRepository interface {
	// GetAll returns every stored product in datastore order.
	GetAll(ctx context.Context) ([]models.Product, error)
	// GetByID returns the product with the given id, or ErrProductNotFound.
	GetByID(ctx context.Context, id int) (*models.Product, error)
	// Create inserts a new product and writes the assigned id back into it.
	Create(ctx context.Context, product *models.Product) error
	// Update overwrites the mutable fields of the row matching product.ID.
	// Returns ErrProductNotFound if no such row exists.
	Update(ctx context.Context, product *models.Product) error
	// Delete removes the row with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id int) error
}
