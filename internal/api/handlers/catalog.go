package handlers

import (
	"log/slog"
	"net/http"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories godoc
//
//	@Summary		List product categories
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Category
//	@Failure		502	{object}	response.ErrorResponse	"Backend returned an error"
//	@Failure		503	{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Lists products, optionally filtered by category and brand on the backend and by a free-text query on name or description.
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string	false	"Category ID"
//	@Param			brand		query		string	false	"Brand"
//	@Param			q			query		string	false	"Case-insensitive text search"
//	@Success		200			{array}		models.Product
//	@Failure		502			{object}	response.ErrorResponse	"Backend returned an error"
//	@Failure		503			{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()
		filter := models.ProductFilter{
			Category: query.Get("category"),
			Brand:    query.Get("brand"),
			Query:    query.Get("q"),
		}

		products, err := h.catalogService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product by ID
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.Product
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		503	{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
