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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// GetStatus godoc
//
//	@Summary		Get the checkout state
//	@Description	Returns the current checkout state, the delivery variant the form must follow and the last error or placed order.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutStatus
//	@Router			/checkout [get]
func (h *CheckoutHandler) GetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.checkoutService.Status())
	}
}

// Begin godoc
//
//	@Summary		Open the checkout form
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutStatus
//	@Failure		400	{object}	response.ErrorResponse	"Cart is empty"
//	@Failure		409	{object}	response.ErrorResponse	"An order is being submitted"
//	@Router			/checkout/begin [post]
func (h *CheckoutHandler) Begin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		status, err := h.checkoutService.Begin(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Checkout could not begin", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, status)
	}
}

// Submit godoc
//
//	@Summary		Place the order
//	@Description	Validates the form, sends the cart as one order and empties the cart on success. The response carries the delivery message to show the customer.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			form	body		models.CheckoutForm	true	"Customer and delivery details"
//	@Success		201		{object}	models.CheckoutResult
//	@Failure		400		{object}	response.ErrorResponse	"Missing or invalid field, or empty cart"
//	@Failure		409		{object}	response.ErrorResponse	"An order is already being submitted"
//	@Failure		502		{object}	response.ErrorResponse	"Backend rejected the order"
//	@Failure		503		{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/checkout [post]
func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var form models.CheckoutForm
		if !utils.ParseAndValidate(r, w, &form, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.Submit(r.Context(), form)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("orderId", result.Order.ID))
		response.Success(w, http.StatusCreated, result)
	}
}

// Reset godoc
//
//	@Summary		Close the checkout
//	@Description	Returns to browsing, typically after the success screen is dismissed.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutStatus
//	@Router			/checkout/reset [post]
func (h *CheckoutHandler) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.checkoutService.Reset())
	}
}
