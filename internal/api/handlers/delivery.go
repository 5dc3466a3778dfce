package handlers

import (
	"log/slog"
	"net/http"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

type DeliveryHandler struct {
	deliveryService service.DeliveryService
}

func NewDeliveryHandler(deliveryService service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// ListZones godoc
//
//	@Summary		List delivery zones
//	@Description	Only available when the storefront delivers by zone.
//	@Tags			Delivery
//	@Produce		json
//	@Success		200	{array}		models.DeliveryZone
//	@Failure		400	{object}	response.ErrorResponse	"Storefront delivers by city"
//	@Failure		503	{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/delivery/zones [get]
func (h *DeliveryHandler) ListZones() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		zones, err := h.deliveryService.Zones(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to list delivery zones", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, zones)
	}
}

// LookupDate godoc
//
//	@Summary		Preview the delivery date for a city
//	@Description	Only available when the storefront delivers by city. A blank city returns no data.
//	@Tags			Delivery
//	@Produce		json
//	@Param			city	query		string	false	"City"
//	@Success		200		{object}	models.DeliveryDateInfo
//	@Failure		400		{object}	response.ErrorResponse	"Storefront delivers by zone"
//	@Failure		503		{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/delivery/date [get]
func (h *DeliveryHandler) LookupDate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		city := r.URL.Query().Get("city")

		info, err := h.deliveryService.LookupDate(r.Context(), city)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to look up delivery date", slog.String("city", city), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, info)
	}
}
