package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the cart
//	@Description	Returns the cart lines with line count, unit count and total.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cartService.Summary(r.Context()))
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Adds one unit of the product. Adding a product already in the cart increments its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Product to add"
//	@Success		200		{object}	models.CartSummary
//	@Failure		400		{object}	response.ErrorResponse	"Invalid body or product unavailable"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Cart could not be saved"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		summary, err := h.cartService.AddByID(r.Context(), req.ProductID)
		if err != nil {
			logger.Warn("Failed to add product to cart", slog.String("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Change a line quantity
//	@Description	Adds delta to the quantity. A resulting quantity of zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			change	body		models.UpdateCartItemRequest	true	"Quantity delta"
//	@Success		200		{object}	models.CartSummary
//	@Failure		400		{object}	response.ErrorResponse	"Invalid body"
//	@Failure		404		{object}	response.ErrorResponse	"Product not in cart"
//	@Failure		500		{object}	response.ErrorResponse	"Cart could not be saved"
//	@Router			/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", productID))

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")
			return
		}

		summary, err := h.cartService.UpdateQuantity(r.Context(), productID, req.Delta)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a line from the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.CartSummary
//	@Failure		500	{object}	response.ErrorResponse	"Cart could not be saved"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")

		summary, err := h.cartService.Remove(r.Context(), productID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to remove product from cart", slog.String("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSummary
//	@Failure		500	{object}	response.ErrorResponse	"Cart could not be saved"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.cartService.Clear(r.Context()); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, h.cartService.Summary(r.Context()))
	}
}
