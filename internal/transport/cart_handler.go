package transport

import (
	"errors"
	"net/http"

	"smartdeal/internal/catalog"
	"smartdeal/internal/middleware"
	"smartdeal/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddToCartRequest represents the cart add request payload
type AddToCartRequest struct {
	UserID        string `json:"userId" validate:"required,uuid"`
	ProductID     string `json:"productId" validate:"required,uuid"`
	SelectedStore string `json:"selectedStore" validate:"required,oneof=Amazon Flipkart"`
}

// CartResponse represents a reconciled cart view
type CartResponse struct {
	Items []catalog.CartLine `json:"items"`
	Total float64            `json:"total"`
	Count int                `json:"count"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/{userId}", h.GetCart)
		r.Post("/", h.AddToCart)
		r.Post("/move", h.MoveToCart)
		r.Delete("/{userId}/{productId}", h.RemoveFromCart)
	})
}

// GetCart returns the user's reconciled cart with its total
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	lines, total, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get cart", zap.Error(err), zap.String("user_id", userID.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items: lines,
		Total: total,
		Count: len(lines),
	})
}

// AddToCart adds a product to the user's cart with a fixed store
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	productID, _ := uuid.Parse(req.ProductID)

	item, err := h.cartService.AddToCart(r.Context(), userID, productID, req.SelectedStore)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInCart):
			middleware.RespondWithError(w, http.StatusConflict, "already in cart")
		case errors.Is(err, service.ErrUnknownStore):
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to add to cart", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add to cart")
		}
		return
	}

	h.logger.Info("Added to cart",
		zap.String("user_id", userID.String()),
		zap.String("product_id", productID.String()),
		zap.String("store", req.SelectedStore),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// MoveToCart moves a wishlist entry into the cart: remove then add, in
// that order, without rollback on a failed add
func (h *CartHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Move to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	productID, _ := uuid.Parse(req.ProductID)

	item, err := h.cartService.MoveToCart(r.Context(), userID, productID, req.SelectedStore)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInCart):
			middleware.RespondWithError(w, http.StatusConflict, "already in cart")
		case errors.Is(err, service.ErrUnknownStore):
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to move to cart", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to move to cart")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// RemoveFromCart removes a product from the user's cart; removing an
// absent product is a success
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := h.cartService.RemoveFromCart(r.Context(), userID, productID); err != nil {
		h.logger.Error("Failed to remove from cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove from cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "removed from cart"})
}
