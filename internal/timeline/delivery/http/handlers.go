package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
	"timeline-to-calendar/pkg/response"
)

// Providers godoc
// @Summary     Provider/model catalog for parsing
// @Tags        Timeline
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} providersResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/timeline/providers [GET]
func (h *handler) Providers(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Providers(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Providers: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProvidersResp(output))
}

// Preview godoc
// @Summary     Parse timeline text into events
// @Description Sends the text to the chosen LLM provider and returns parsed events without creating anything.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body previewReq true "Timeline text and provider selection"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/timeline/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput(user.ID))
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// CreateEvents godoc
// @Summary     Commit previewed events to Google Calendar
// @Description Inserts each event into the target calendar and reports per-event success/failure.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createEventsReq true "Events and target calendar"
// @Success     200 {object} createEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "No Google credentials"
// @Router      /api/v1/timeline/create-events [POST]
func (h *handler) CreateEvents(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvents(ctx, req.toInput(user.ID))
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateEventsResp(output))
}
