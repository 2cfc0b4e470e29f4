package service

import (
	"context"
	"testing"

	"smartdeal/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterIsAnUpsert(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewUserService(repo)
	ctx := context.Background()

	first, err := svc.Register(ctx, "jane@example.com", "Jane", "firebase-uid-1")
	require.NoError(t, err)

	// Registering the same provider UID again returns the original record.
	second, err := svc.Register(ctx, "other@example.com", "Other", "firebase-uid-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "jane@example.com", second.Email)
	assert.Len(t, repo.users, 1)
}

func TestUserService_GetUserByID(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "jane@example.com", "Jane", "firebase-uid-1")
	require.NoError(t, err)

	got, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.FirebaseUID, got.FirebaseUID)

	_, err = svc.GetUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAlertService_CreateRequiresExistingProduct(t *testing.T) {
	products := testProducts()
	alertRepo := &mockPriceAlertRepository{}
	svc := NewAlertService(alertRepo, &mockProductRepository{products: products})
	ctx := context.Background()

	userID := uuid.New()
	alert, err := svc.CreateAlert(ctx, userID, products[0].ID, 45000, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, alert.Active)

	_, err = svc.CreateAlert(ctx, userID, uuid.New(), 45000, "jane@example.com")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	alerts, err := svc.ListAlerts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	require.NoError(t, svc.DeleteAlert(ctx, alert.ID))
	assert.ErrorIs(t, svc.DeleteAlert(ctx, alert.ID), repository.ErrPriceAlertNotFound)
}
