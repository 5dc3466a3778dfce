package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
)

const (
	MsgUnexpected       = "Ha ocurrido un error inesperado. Inténtalo de nuevo."
	MsgValidationFailed = "Revisa los datos enviados"
)

// APIResponse is the envelope every storefront endpoint answers with.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", slog.Int("status", statusCode), slog.Any("error", err))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error maps err to its status and envelope. Errors that are not AppErrors
// never leak their text to the client.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		appErr = errors.InternalError(MsgUnexpected)
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	WriteJSON(w, appErr.StatusCode, APIResponse{Error: body})
}

// ValidationError answers 400 with one detail per rejected field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	WriteJSON(w, http.StatusBadRequest, APIResponse{
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: MsgValidationFailed,
			Details: details,
		},
	})
}

func fieldMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: obligatorio", field)
	case "required_if":
		return fmt.Sprintf("%s: obligatorio cuando %s", field, param)
	case "email", "contains":
		return fmt.Sprintf("%s: email no válido", field)
	case "oneof":
		return fmt.Sprintf("%s: debe ser uno de %s", field, param)
	case "min", "gte":
		return fmt.Sprintf("%s: mínimo %s", field, param)
	case "max", "lte":
		return fmt.Sprintf("%s: máximo %s", field, param)
	case "gt":
		return fmt.Sprintf("%s: debe ser mayor que %s", field, param)
	}

	return fmt.Sprintf("%s: no válido (%s)", field, fe.Tag())
}
