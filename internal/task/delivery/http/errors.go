package http

import (
	"errors"
	"net/http"

	"lockfocus-assistant/internal/task"
	pkgErrors "lockfocus-assistant/pkg/errors"
)

var errMessageRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return errMessageRequired
	default:
		return pkgErrors.ErrInternalServerError
	}
}
