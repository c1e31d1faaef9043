package http

import (
	"errors"
	"net/http"

	"lockfocus-assistant/internal/chat"
	pkgErrors "lockfocus-assistant/pkg/errors"
)

var (
	errMessageRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	errSessionIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errMessageRequired
	default:
		return pkgErrors.ErrInternalServerError
	}
}
