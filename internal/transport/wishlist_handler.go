package transport

import (
	"errors"
	"net/http"

	"smartdeal/internal/middleware"
	"smartdeal/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddToWishlistRequest represents the wishlist add request payload
type AddToWishlistRequest struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	ProductID string `json:"productId" validate:"required,uuid"`
}

// WishlistHandler handles HTTP requests for wishlist operations
type WishlistHandler struct {
	wishlistService service.WishlistService
	logger          *zap.Logger
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService service.WishlistService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		logger:          logger,
	}
}

// RegisterRoutes registers all wishlist routes
func (h *WishlistHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/{userId}", h.GetWishlist)
		r.Post("/", h.AddToWishlist)
		r.Delete("/{userId}/{productId}", h.RemoveFromWishlist)
	})
}

// GetWishlist returns the user's reconciled wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	lines, err := h.wishlistService.GetWishlist(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get wishlist", zap.Error(err), zap.String("user_id", userID.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get wishlist")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, lines)
}

// AddToWishlist saves a product to the user's wishlist
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req AddToWishlistRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to wishlist validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	productID, _ := uuid.Parse(req.ProductID)

	item, err := h.wishlistService.AddToWishlist(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyInWishlist) {
			middleware.RespondWithError(w, http.StatusConflict, "already in wishlist")
			return
		}
		h.logger.Error("Failed to add to wishlist", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add to wishlist")
		return
	}

	h.logger.Info("Added to wishlist",
		zap.String("user_id", userID.String()),
		zap.String("product_id", productID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// RemoveFromWishlist removes a product from the user's wishlist; removing
// an absent product is a success
func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
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

	if err := h.wishlistService.RemoveFromWishlist(r.Context(), userID, productID); err != nil {
		h.logger.Error("Failed to remove from wishlist", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove from wishlist")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "removed from wishlist"})
}
