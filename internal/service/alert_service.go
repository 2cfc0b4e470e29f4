package service

import (
	"context"
	"fmt"
	"time"

	"smartdeal/internal/domain"
	"smartdeal/internal/repository"

	"github.com/google/uuid"
)

// AlertService manages price drop alerts. Alert evaluation and delivery
// happen in an external worker; this service only owns the records.
type AlertService interface {
	CreateAlert(ctx context.Context, userID, productID uuid.UUID, targetPrice float64, email string) (*domain.PriceAlert, error)
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]domain.PriceAlert, error)
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}

type alertService struct {
	alertRepo   repository.PriceAlertRepository
	productRepo repository.ProductRepository
}

// NewAlertService creates a new instance of AlertService
func NewAlertService(alertRepo repository.PriceAlertRepository, productRepo repository.ProductRepository) AlertService {
	return &alertService{alertRepo: alertRepo, productRepo: productRepo}
}

// CreateAlert stores an active alert for the product.
func (s *alertService) CreateAlert(ctx context.Context, userID, productID uuid.UUID, targetPrice float64, email string) (*domain.PriceAlert, error) {
	// The product must exist right now; alerts for catalog-churned products
	// would never fire.
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	alert := &domain.PriceAlert{
		ID:          uuid.New(),
		UserID:      userID,
		ProductID:   productID,
		TargetPrice: targetPrice,
		Email:       email,
		Active:      true,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	return alert, nil
}

// ListAlerts returns the user's alerts, newest first.
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]domain.PriceAlert, error) {
	alerts, err := s.alertRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// DeleteAlert removes an alert by ID.
func (s *alertService) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	return s.alertRepo.Delete(ctx, id)
}
