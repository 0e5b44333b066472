package http

import (
	"timeline-to-calendar/internal/apikeys"
	pkgErrors "timeline-to-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case apikeys.ErrProviderInvalid:
		return pkgErrors.NewHTTPError(400, "provider name must be 2-100 characters")
	case apikeys.ErrKeyInvalid:
		return pkgErrors.NewHTTPError(400, "api key must be 10-100 characters")
	case apikeys.ErrProviderUnknown:
		return pkgErrors.NewHTTPError(400, "unknown provider")
	case apikeys.ErrKeyNotFound:
		return pkgErrors.NewHTTPError(404, "no api key stored for this provider")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
