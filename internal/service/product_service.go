package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/inventrack/inventory-api/internal/models"
	"github.com/inventrack/inventory-api/internal/repository"
)

// ErrIDMismatch is returned when an update's path id and body id disagree.
// The request is rejected before the repository is touched.
var ErrIDMismatch = errors.New("path id does not match body id")

// ProductService handles product CRUD operations and the stats aggregation.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductRequest represents the request to create a new product.
// The id is assigned by the datastore and ignored if supplied.
type CreateProductRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// UpdateProductRequest represents the request to update a product. The body
// declares the id it targets so it can be checked against the path.
type UpdateProductRequest struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// ListProducts returns every stored product.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct creates a new product and returns it with its assigned id.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:   req.Name,
		Type:   req.Type,
		Status: req.Status,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		log.Error().Err(err).Msg("Failed to create product")
		return nil, err
	}
	return product, nil
}

// UpdateProduct overwrites the product identified by id. The id from the
// request path must match the id declared in the body.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, req *UpdateProductRequest) error {
	if req.ID != id {
		return ErrIDMismatch
	}

	product := &models.Product{
		ID:     id,
		Name:   req.Name,
		Type:   req.Type,
		Status: req.Status,
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			log.Error().Err(err).Int("id", id).Msg("Failed to update product")
		}
		return err
	}
	return nil
}

// DeleteProduct removes a product by id. Missing ids succeed.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to delete product")
		return err
	}
	return nil
}

// Stats recomputes the aggregate from the full product list on every call.
// Total counts every row; the named buckets count exact literal status
// matches, so rows with any other status value land only in Total.
func (s *ProductService) Stats(ctx context.Context) (*models.Stats, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute product stats")
		return nil, err
	}

	stats := &models.Stats{Total: len(products)}
	for _, p := range products {
		switch p.Status {
		case models.StatusDefective:
			stats.Defective++
		case models.StatusAvailable:
			stats.Available++
		}
	}
	return stats, nil
}
