package handlers

import (
	"log/slog"
	"net/http"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

type OfferHandler struct {
	offerService service.OfferService
}

func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// Options godoc
//
//	@Summary		List offer form choices
//	@Tags			Offers
//	@Produce		json
//	@Success		200	{object}	models.OfferOptions
//	@Router			/offers/options [get]
func (h *OfferHandler) Options() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.offerService.Options())
	}
}

// Submit godoc
//
//	@Summary		Request a business quote
//	@Description	Validates and forwards the quote request to the backend. Errors carry the message to show in the form.
//	@Tags			Offers
//	@Accept			json
//	@Produce		json
//	@Param			offer	body		models.OfferRequest	true	"Quote request"
//	@Success		202		"Request accepted"
//	@Failure		400		{object}	response.ErrorResponse	"Missing or invalid field"
//	@Failure		404		{object}	response.ErrorResponse	"Offer route missing on the backend"
//	@Failure		502		{object}	response.ErrorResponse	"Backend rejected the request"
//	@Failure		503		{object}	response.ErrorResponse	"Backend unreachable or not configured"
//	@Router			/offers [post]
func (h *OfferHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// Field rules live in the service so messages come back in form order.
		var req models.OfferRequest
		if !utils.ParseOptionalBody(r, w, &req) {
			logger.Warn("Invalid offer request body")
			return
		}

		if err := h.offerService.Submit(r.Context(), req); err != nil {
			logger.Warn("Offer request failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusAccepted, map[string]bool{"sent": true})
	}
}
