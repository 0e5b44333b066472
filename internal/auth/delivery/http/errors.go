package http

import (
	"timeline-to-calendar/internal/auth"
	pkgErrors "timeline-to-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case auth.ErrSessionNotFound, auth.ErrTokenInvalid:
		return pkgErrors.NewHTTPError(401, "invalid or expired token")
	case auth.ErrNoGoogleToken:
		return pkgErrors.NewHTTPError(403, "no google credentials on file, sign in again")
	case auth.ErrCallbackCodeEmpty:
		return pkgErrors.NewHTTPError(400, "authorization code is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
