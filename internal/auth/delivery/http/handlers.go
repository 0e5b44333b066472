package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
	pkgErrors "timeline-to-calendar/pkg/errors"
	"timeline-to-calendar/pkg/response"
)

// Login godoc
// @Summary     Start Google sign-in
// @Description Redirects the browser to the Google OAuth consent screen.
// @Tags        Auth
// @Produce     json
// @Success     307 "Redirect to Google"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/google [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.uc.LoginURL(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginURL: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code and redirects to the frontend with a session token.
// @Tags        Auth
// @Produce     json
// @Param       code query string true "Authorization code from Google"
// @Success     307 "Redirect to frontend"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	output, err := h.uc.HandleCallback(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, output.RedirectURL)
}

// Verify godoc
// @Summary     Verify a session token
// @Description Checks a token and returns the user it belongs to.
// @Tags        Auth
// @Produce     json
// @Param       token query string true "Session token"
// @Success     200 {object} verifyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/verify [GET]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "token is required"), nil)
		return
	}

	output, err := h.uc.Verify(ctx, token)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newVerifyResp(output))
}

// Profile godoc
// @Summary     Current user profile
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Profile(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the session behind the presented token.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// GetSystemPrompt godoc
// @Summary     Get the saved system prompt
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} systemPromptResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/system-prompt [GET]
func (h *handler) GetSystemPrompt(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	prompt, err := h.uc.GetSystemPrompt(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSystemPrompt: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, systemPromptResp{Prompt: prompt})
}

// SaveSystemPrompt godoc
// @Summary     Save the system prompt
// @Description Stores the user's grounding text for LLM parsing. An empty prompt clears it.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body saveSystemPromptReq true "Prompt"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/system-prompt [POST]
func (h *handler) SaveSystemPrompt(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSaveSystemPromptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SaveSystemPrompt(ctx, user.ID, req.Prompt); err != nil {
		h.l.Errorf(ctx, "uc.SaveSystemPrompt: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// CalendarStatus godoc
// @Summary     Google Calendar access status
// @Description Reports whether the stored Google token can still reach Calendar and Tasks.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} calendarStatusResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/calendar-status [GET]
func (h *handler) CalendarStatus(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.CalendarStatus(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCalendarStatusResp(output))
}
