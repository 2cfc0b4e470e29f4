package transport

import (
	"errors"
	"net/http"
	"strconv"

	"smartdeal/internal/catalog"
	"smartdeal/internal/middleware"
	"smartdeal/internal/repository"
	"smartdeal/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for catalog browsing
type ProductHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalogService service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
	})
	r.Post("/api/admin/seed-products", h.SeedProducts)
}

// ListProducts returns the catalog filtered and sorted by the request's
// query parameters. Facet parameters repeat for multiple values, e.g.
// ?brand=Apple&brand=Samsung.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	search := r.URL.Query().Get("search")
	sort := catalog.ParseSortMode(r.URL.Query().Get("sort"))

	products, err := h.catalogService.ListProducts(r.Context(), criteria, search, sort)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by ID
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.Error(err), zap.String("product_id", id.String()))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// SeedProducts loads the demo catalog into an empty store
func (h *ProductHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.catalogService.SeedProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to seed products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to seed products")
		return
	}

	if inserted == 0 {
		middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "catalog already seeded"})
		return
	}

	h.logger.Info("Seeded demo catalog", zap.Int("count", inserted))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]int{"seeded": inserted})
}

// criteriaFromQuery builds filter criteria from query parameters, starting
// from the documented defaults and overriding only what was supplied.
func criteriaFromQuery(r *http.Request) (catalog.Criteria, error) {
	criteria := catalog.DefaultCriteria()
	q := r.URL.Query()

	if brands, ok := q["brand"]; ok {
		criteria.Brands = brands
	}
	if ram, ok := q["ram"]; ok {
		criteria.RAM = ram
	}
	if storage, ok := q["storage"]; ok {
		criteria.Storage = storage
	}

	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("minPrice must be a number")
		}
		criteria.PriceLow = v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("maxPrice must be a number")
		}
		criteria.PriceHigh = v
	}
	if raw := q.Get("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("minRating must be a number")
		}
		criteria.MinRating = v
	}

	return criteria, nil
}
