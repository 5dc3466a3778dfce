package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.BadRequestError("Invalid input data"))
		return false
	}

	return true

}

// ParseOptionalBody decodes a JSON body when one is present. An empty body
// leaves dest untouched.
func ParseOptionalBody(r *http.Request, w http.ResponseWriter, dest any) bool {

	if r.Body == nil || r.ContentLength == 0 {
		return true
	}

	if err := DecodeJSONBody(r, dest); err != nil && !errors.Is(err, errEmptyBody) {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	return true
}
