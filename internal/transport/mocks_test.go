package transport

import (
	"context"
	"time"

	"smartdeal/internal/domain"
	"smartdeal/internal/repository"

	"github.com/google/uuid"
)

// Mock repositories for handler tests. Handlers are exercised through the
// real service layer on top of these in-memory stores.

type mockProductRepository struct {
	products []domain.Product
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	return len(m.products), nil
}

func (m *mockProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	m.products = append(m.products, products...)
	return nil
}

type mockCartRepository struct {
	items []domain.CartItem
}

func (m *mockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	for _, existing := range m.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			return repository.ErrCartItemAlreadyExists
		}
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *mockCartRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	for i, item := range m.items {
		if item.UserID == userID && item.ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockWishlistRepository struct {
	items []domain.WishlistItem
}

func (m *mockWishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockWishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) error {
	for _, existing := range m.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			return repository.ErrWishlistItemAlreadyExists
		}
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *mockWishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	for i, item := range m.items {
		if item.UserID == userID && item.ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockPriceAlertRepository struct {
	alerts []domain.PriceAlert
}

func (m *mockPriceAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PriceAlert, error) {
	var out []domain.PriceAlert
	for _, alert := range m.alerts {
		if alert.UserID == userID {
			out = append(out, alert)
		}
	}
	return out, nil
}

func (m *mockPriceAlertRepository) Create(ctx context.Context, alert *domain.PriceAlert) error {
	m.alerts = append(m.alerts, *alert)
	return nil
}

func (m *mockPriceAlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, alert := range m.alerts {
		if alert.ID == id {
			m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
			return nil
		}
	}
	return repository.ErrPriceAlertNotFound
}

type mockUserRepository struct {
	users []domain.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].FirebaseUID == firebaseUID {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func wishlistFixture(userID, productID uuid.UUID) domain.WishlistItem {
	return domain.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Timestamp: time.Now().UTC(),
	}
}

// fixtureProducts returns a small catalog with one product per store verdict.
func fixtureProducts() []domain.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{
			ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:          "iPhone 15 Pro Max",
			Brand:         "Apple",
			RAM:           "8GB",
			Storage:       "256GB",
			AmazonPrice:   134900,
			FlipkartPrice: 133900,
			Rating:        4.7,
			Timestamp:     base,
		},
		{
			ID:            uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:          "Samsung Galaxy S24 Ultra 5G",
			Brand:         "Samsung",
			RAM:           "12GB",
			Storage:       "256GB",
			AmazonPrice:   119999,
			FlipkartPrice: 121999,
			Rating:        4.5,
			Timestamp:     base.Add(24 * time.Hour),
		},
		{
			ID:            uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:          "OnePlus 12",
			Brand:         "OnePlus",
			RAM:           "16GB",
			Storage:       "512GB",
			AmazonPrice:   64999,
			FlipkartPrice: 64999,
			Rating:        4.4,
			Timestamp:     base.Add(48 * time.Hour),
		},
	}
}
