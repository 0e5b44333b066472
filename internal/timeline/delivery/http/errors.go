package http

import (
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/timeline"
	pkgErrors "timeline-to-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case timeline.ErrTextEmpty:
		return pkgErrors.NewHTTPError(400, "timeline text is required")
	case timeline.ErrNoEvents:
		return pkgErrors.NewHTTPError(400, "no events to create")
	case timeline.ErrDateOrder:
		return pkgErrors.NewHTTPError(400, "event end date must not be before its start date")
	case timeline.ErrProviderUnknown:
		return pkgErrors.NewHTTPError(400, "unknown provider")
	case timeline.ErrNoAPIKey:
		return pkgErrors.NewHTTPError(400, "no api key configured for this provider")
	case auth.ErrNoGoogleToken:
		return pkgErrors.NewHTTPError(403, "no google credentials on file, sign in again")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
