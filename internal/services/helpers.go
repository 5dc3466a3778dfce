package service

import (
	"html"
	"strings"

	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/microcosm-cc/bluemonday"
)

// backendError keeps AppErrors coming from the backend client as they are and
// wraps anything else.
func backendError(err error, message string) error {
	if _, ok := errors.IsAppError(err); ok {
		return err
	}
	return errors.InternalError(message).WithError(err)
}

// withMessage returns a copy of an AppError with a friendlier message, keeping
// its code, status and detail.
func withMessage(err error, message string) error {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		return errors.InternalError(message).WithError(err)
	}

	return &errors.AppError{
		Code:       appErr.Code,
		Message:    message,
		Detail:     appErr.Detail,
		StatusCode: appErr.StatusCode,
		Err:        err,
	}
}

var strictPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from free text. bluemonday escapes entities, so
// they are unescaped again to keep "&" and quotes readable.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
