package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/josumamgar-gif/App-Aqualan/pkg/backend"
)

const (
	MsgOfferRequiredFields = "Por favor, rellena todos los campos obligatorios marcados con *."
	MsgOfferProvince       = "Por favor, especifica la provincia."
	MsgOfferProducts       = "Selecciona al menos un producto que te interese."
	MsgOfferInvalidOption  = "Selecciona una provincia y productos de la lista."
	MsgOfferRouteMissing   = "La ruta de ofertas no existe en el servidor. Comprueba que el backend está actualizado."
	MsgOfferFailed         = "No se pudo enviar la solicitud. Inténtalo más tarde."
	MsgOfferNetwork        = "No se puede conectar con el servidor. Comprueba que el backend está en marcha."
	MsgOfferUnexpected     = "Ha ocurrido un error al enviar la solicitud. Inténtalo de nuevo en unos minutos."
)

type OfferService interface {
	Options() models.OfferOptions
	Submit(ctx context.Context, req models.OfferRequest) error
}

type offerService struct {
	api      OfferAPI
	validate *validator.Validate
}

func NewOfferService(api OfferAPI, validate *validator.Validate) OfferService {
	return &offerService{api: api, validate: validate}
}

func (s *offerService) Options() models.OfferOptions {
	return models.OfferOptions{Provinces: models.Provinces, Products: models.OfferProducts}
}

func (s *offerService) Submit(ctx context.Context, req models.OfferRequest) error {

	logger := middleware.LoggerFromContext(ctx)

	req = req.Normalized()
	req.Mensaje = sanitizeText(req.Mensaje)

	if err := s.validate.Struct(req); err != nil {
		return offerValidationError(err)
	}

	if !s.api.HasBackend() {
		return errors.BackendNotConfiguredError(backend.MsgBackendNotConfigured)
	}

	if err := s.api.SubmitOfferRequest(ctx, &req); err != nil {
		logger.Warn("Offer request failed", slog.String("empresa", req.Empresa), slog.Any("error", err))
		return offerSubmitError(err)
	}

	logger.Info("Offer request sent", slog.String("empresa", req.Empresa), slog.Int("productos", len(req.Productos)))

	return nil
}

// offerValidationError reports the most important problem first: missing
// required fields, then the free-text province, then the product choice.
func offerValidationError(err error) error {

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return errors.InternalError("Failed to validate offer request").WithError(err)
	}

	best, message := 4, MsgOfferInvalidOption
	for _, fe := range vErrs {
		rank, msg := 3, MsgOfferInvalidOption

		switch {
		case fe.Field() == "OtraProvincia":
			rank, msg = 1, MsgOfferProvince
		case fe.Field() == "Productos" && fe.Tag() != "oneof":
			rank, msg = 2, MsgOfferProducts
		case fe.Tag() == "required":
			rank, msg = 0, MsgOfferRequiredFields
		}

		if rank < best {
			best, message = rank, msg
		}
	}

	return errors.ValidationError(message).WithError(err)
}

func offerSubmitError(err error) error {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		return errors.InternalError(MsgOfferUnexpected).WithError(err)
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound:
		return withMessage(err, MsgOfferRouteMissing)
	case errors.ErrCodeNetwork:
		return withMessage(err, MsgOfferNetwork)
	case errors.ErrCodeUpstream:
		if appErr.Detail != "" {
			return withMessage(err, appErr.Detail)
		}
		return withMessage(err, MsgOfferFailed)
	default:
		return withMessage(err, MsgOfferUnexpected)
	}
}
