package http

import (
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/task"
	pkgErrors "timeline-to-calendar/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTitleEmpty:
		return pkgErrors.NewHTTPError(400, "title is required")
	case task.ErrTextEmpty:
		return pkgErrors.NewHTTPError(400, "timeline text is required")
	case task.ErrPriorityInvalid:
		return pkgErrors.NewHTTPError(400, "priority must be high, medium or low")
	case task.ErrProviderUnknown:
		return pkgErrors.NewHTTPError(400, "unknown provider")
	case task.ErrNoAPIKey:
		return pkgErrors.NewHTTPError(400, "no api key configured for this provider")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrListNotFound:
		return pkgErrors.NewHTTPError(404, "task list not found")
	case auth.ErrNoGoogleToken:
		return pkgErrors.NewHTTPError(403, "no google credentials on file, sign in again")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
