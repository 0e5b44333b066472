package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/calendar"
	"timeline-to-calendar/internal/middleware"
	pkgErrors "timeline-to-calendar/pkg/errors"
	"timeline-to-calendar/pkg/response"
)

type calendarResp struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Primary    bool   `json:"primary"`
	AccessRole string `json:"access_role"`
}

func newCalendarResps(calendars []calendar.Calendar) []calendarResp {
	resps := make([]calendarResp, len(calendars))
	for i, cal := range calendars {
		resps[i] = calendarResp{
			ID:         cal.ID,
			Summary:    cal.Summary,
			Primary:    cal.Primary,
			AccessRole: cal.AccessRole,
		}
	}
	return resps
}

// ListWritable godoc
// @Summary     List writable Google calendars
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} []calendarResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "No Google credentials"
// @Router      /api/v1/calendar/google/calendars/writable [GET]
func (h *handler) ListWritable(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	calendars, err := h.uc.ListWritable(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWritable: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCalendarResps(calendars))
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrNoGoogleToken:
		return pkgErrors.NewHTTPError(403, "no google credentials on file, sign in again")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
