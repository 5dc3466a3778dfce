package handlers

import (
	"log/slog"
	"net/http"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

type OrderHandler struct {
	historyService service.OrderHistoryService
}

func NewOrderHandler(historyService service.OrderHistoryService) *OrderHandler {
	return &OrderHandler{historyService: historyService}
}

// ListOrders godoc
//
//	@Summary		List past orders
//	@Description	Local history returns orders grouped by month, newest first. Remote history requires an email and returns a flat list.
//	@Tags			Orders
//	@Produce		json
//	@Param			email	query		string	false	"Customer email (remote history only)"
//	@Success		200		{object}	models.OrderHistoryView
//	@Failure		400		{object}	response.ErrorResponse	"Invalid or missing email"
//	@Failure		503		{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		view := models.OrderHistoryView{Mode: h.historyService.Mode()}

		if view.Mode == models.HistoryModeRemote {
			orders, err := h.historyService.ByEmail(r.Context(), r.URL.Query().Get("email"))
			if err != nil {
				logger.Warn("Failed to list orders by email", slog.Any("error", err))
				response.Error(w, err)
				return
			}
			view.Orders = orders
		} else {
			groups, err := h.historyService.Groups(r.Context())
			if err != nil {
				logger.Error("Failed to group local orders", slog.Any("error", err))
				response.Error(w, err)
				return
			}
			view.Groups = groups
		}

		response.Success(w, http.StatusOK, view)
	}
}

// GetOrder godoc
//
//	@Summary		Get an order by ID
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	models.Order
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		503	{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("orderId", id))

		order, err := h.historyService.Get(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
