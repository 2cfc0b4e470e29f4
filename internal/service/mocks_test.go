package service

import (
	"context"

	"smartdeal/internal/domain"
	"smartdeal/internal/repository"

	"github.com/google/uuid"
)

// Mock repositories for testing

type mockProductRepository struct {
	products []domain.Product
	listErr  error
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.products, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
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
	items     []domain.CartItem
	createErr error
}

func (m *mockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	result := []domain.CartItem{}
	for _, item := range m.items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			return repository.ErrCartItemAlreadyExists
		}
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *mockCartRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.UserID != userID || item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

type mockWishlistRepository struct {
	items     []domain.WishlistItem
	deleteErr error
}

func (m *mockWishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	result := []domain.WishlistItem{}
	for _, item := range m.items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
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
	if m.deleteErr != nil {
		return m.deleteErr
	}
	kept := m.items[:0]
	for _, item := range m.items {
		if item.UserID != userID || item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

type mockPriceAlertRepository struct {
	alerts []domain.PriceAlert
}

func (m *mockPriceAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PriceAlert, error) {
	result := []domain.PriceAlert{}
	for _, alert := range m.alerts {
		if alert.UserID == userID {
			result = append(result, alert)
		}
	}
	return result, nil
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
	for _, user := range m.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*domain.User, error) {
	for _, user := range m.users {
		if user.FirebaseUID == firebaseUID {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}
