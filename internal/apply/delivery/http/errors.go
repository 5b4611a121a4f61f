package http

import (
	"legal-practice-assistant/internal/apply"
	pkgErrors "legal-practice-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case apply.ErrNoActions:
		return pkgErrors.NewHTTPError(400, "actions must not be empty")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
