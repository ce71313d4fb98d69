package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventrack/inventory-api/internal/models"
	"github.com/inventrack/inventory-api/internal/repository"
)

// memRepo is an in-memory ProductRepository for service tests.
type memRepo struct {
	products map[int]models.Product
	nextID   int
}

func newMemRepo() *memRepo {
	return &memRepo{products: make(map[int]models.Product), nextID: 1}
}

func (m *memRepo) GetAll(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memRepo) GetByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *memRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = m.nextID
	m.nextID++
	m.products[product.ID] = *product
	return nil
}

func (m *memRepo) Update(_ context.Context, product *models.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = *product
	return nil
}

func (m *memRepo) Delete(_ context.Context, id int) error {
	delete(m.products, id)
	return nil
}

func TestCreateThenGetReturnsSameFields(t *testing.T) {
	svc := NewProductService(newMemRepo())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Name: "Bowl", Type: "Handmade", Status: "Available",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateMismatchedIDRejectedBeforeMutation(t *testing.T) {
	repo := newMemRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Name: "Plate", Type: "Machine-made", Status: "Available",
	})
	require.NoError(t, err)

	err = svc.UpdateProduct(ctx, created.ID, &UpdateProductRequest{
		ID: created.ID + 1, Name: "Changed", Type: "Machine-made", Status: "Defective",
	})
	assert.ErrorIs(t, err, ErrIDMismatch)

	// The stored product is untouched.
	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plate", got.Name)
	assert.Equal(t, "Available", got.Status)
}

func TestUpdateMissingIDReturnsNotFound(t *testing.T) {
	svc := NewProductService(newMemRepo())

	err := svc.UpdateProduct(context.Background(), 7, &UpdateProductRequest{ID: 7, Name: "Ghost"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestUpdateRoundTripKeepsUntouchedFields(t *testing.T) {
	svc := NewProductService(newMemRepo())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Name: "Cup", Type: "Handmade", Status: "Available",
	})
	require.NoError(t, err)

	err = svc.UpdateProduct(ctx, created.ID, &UpdateProductRequest{
		ID: created.ID, Name: "Espresso Cup", Type: created.Type, Status: created.Status,
	})
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Espresso Cup", got.Name)
	assert.Equal(t, "Handmade", got.Type)
	assert.Equal(t, "Available", got.Status)
}

func TestStatsCountsExactStatusLiterals(t *testing.T) {
	svc := NewProductService(newMemRepo())
	ctx := context.Background()

	for _, status := range []string{"Available", "Defective", "Available", "Unknown"} {
		_, err := svc.CreateProduct(ctx, &CreateProductRequest{
			Name: "p", Type: "Handmade", Status: status,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{Total: 4, Defective: 1, Available: 2}, stats)
}

func TestStatsEmptyTable(t *testing.T) {
	svc := NewProductService(newMemRepo())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{}, stats)
}
