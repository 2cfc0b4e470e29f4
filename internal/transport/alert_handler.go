package transport

import (
	"errors"
	"net/http"

	"smartdeal/internal/middleware"
	"smartdeal/internal/repository"
	"smartdeal/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePriceAlertRequest represents the alert creation payload
type CreatePriceAlertRequest struct {
	UserID      string  `json:"userId" validate:"required,uuid"`
	ProductID   string  `json:"productId" validate:"required,uuid"`
	TargetPrice float64 `json:"targetPrice" validate:"required,gt=0"`
	Email       string  `json:"email" validate:"required,email"`
}

// AlertHandler handles HTTP requests for price alerts
type AlertHandler struct {
	alertService service.AlertService
	logger       *zap.Logger
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService service.AlertService, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		logger:       logger,
	}
}

// RegisterRoutes registers all price alert routes
func (h *AlertHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/price-alerts", func(r chi.Router) {
		r.Get("/{userId}", h.ListAlerts)
		r.Post("/", h.CreateAlert)
		r.Delete("/{id}", h.DeleteAlert)
	})
}

// ListAlerts returns the user's price alerts
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	alerts, err := h.alertService.ListAlerts(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list alerts", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list alerts")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, alerts)
}

// CreateAlert registers a price drop alert
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req CreatePriceAlertRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Create alert validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	productID, _ := uuid.Parse(req.ProductID)

	alert, err := h.alertService.CreateAlert(r.Context(), userID, productID, req.TargetPrice, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to create alert", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create alert")
		return
	}

	h.logger.Info("Price alert created",
		zap.String("user_id", userID.String()),
		zap.String("product_id", productID.String()),
		zap.Float64("target_price", req.TargetPrice),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, alert)
}

// DeleteAlert removes a price alert by ID
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid alert ID")
		return
	}

	if err := h.alertService.DeleteAlert(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrPriceAlertNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "alert not found")
			return
		}
		h.logger.Error("Failed to delete alert", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete alert")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "alert deleted"})
}
