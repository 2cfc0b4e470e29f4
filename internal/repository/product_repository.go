package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"smartdeal/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog data access. The
// catalog is read as a wholesale snapshot; writes happen only through
// seeding.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Count(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, products []domain.Product) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, brand, image, ram, storage, processor, camera, display, battery,
		amazon_price, amazon_url, flipkart_price, flipkart_url, rating, specifications, timestamp`

// List returns the full catalog snapshot in insertion order.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY seq`, productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// Count returns the number of products in the catalog.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// CreateBatch inserts products inside one transaction, preserving slice
// order as catalog insertion order.
func (r *productRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, brand, image, ram, storage, processor, camera, display, battery,
			amazon_price, amazon_url, flipkart_price, flipkart_url, rating, specifications, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	for _, product := range products {
		specs, err := json.Marshal(product.Specifications)
		if err != nil {
			return fmt.Errorf("failed to marshal specifications: %w", err)
		}

		_, err = tx.ExecContext(
			ctx,
			query,
			product.ID,
			product.Name,
			product.Brand,
			product.Image,
			product.RAM,
			product.Storage,
			product.Processor,
			product.Camera,
			product.Display,
			product.Battery,
			product.AmazonPrice,
			product.AmazonURL,
			product.FlipkartPrice,
			product.FlipkartURL,
			product.Rating,
			specs,
			product.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit products: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var specs []byte

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Image,
		&product.RAM,
		&product.Storage,
		&product.Processor,
		&product.Camera,
		&product.Display,
		&product.Battery,
		&product.AmazonPrice,
		&product.AmazonURL,
		&product.FlipkartPrice,
		&product.FlipkartURL,
		&product.Rating,
		&specs,
		&product.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &product.Specifications); err != nil {
			return nil, fmt.Errorf("failed to decode specifications: %w", err)
		}
	}

	return product, nil
}
