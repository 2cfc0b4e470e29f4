package service

import (
	"context"
	"fmt"

	"smartdeal/internal/catalog"
	"smartdeal/internal/domain"
	"smartdeal/internal/repository"

	"github.com/google/uuid"
)

// CatalogService exposes filtered, sorted catalog views. All filtering and
// ordering happens in the pure catalog engine over a full snapshot; the
// service only fetches the snapshot and hands it over.
type CatalogService interface {
	ListProducts(ctx context.Context, criteria catalog.Criteria, search string, sort catalog.SortMode) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	SeedProducts(ctx context.Context) (int, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// ListProducts fetches the catalog snapshot and runs the query pipeline
// over it. An empty result is a valid outcome, not an error.
func (s *catalogService) ListProducts(ctx context.Context, criteria catalog.Criteria, search string, sort catalog.SortMode) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	return catalog.Query(products, criteria, search, sort), nil
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// SeedProducts loads the demo catalog when the store is empty. Returns the
// number of products inserted; zero means the catalog was already seeded.
func (s *catalogService) SeedProducts(ctx context.Context) (int, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	products := demoProducts()
	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}

	return len(products), nil
}
