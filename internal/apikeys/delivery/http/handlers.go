package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
	pkgErrors "timeline-to-calendar/pkg/errors"
	"timeline-to-calendar/pkg/response"
)

// Providers godoc
// @Summary     Provider/model catalog
// @Description Returns the supported LLM providers and their static model lists.
// @Tags        APIKeys
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} providersResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/api-keys/providers [GET]
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

// List godoc
// @Summary     Stored key presence
// @Description Returns a per-provider boolean map. Raw keys are never returned.
// @Tags        APIKeys
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/api-keys/list [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Save godoc
// @Summary     Save an API key
// @Description Stores a provider credential, encrypted at rest.
// @Tags        APIKeys
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body saveReq true "Provider and key"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/api-keys/save [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Save(ctx, req.toInput(user.ID)); err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Remove godoc
// @Summary     Remove an API key
// @Tags        APIKeys
// @Produce     json
// @Security    BearerAuth
// @Param       provider path string true "Provider name"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/api-keys/remove/{provider} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	provider := c.Param("provider")
	if provider == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "provider is required"), nil)
		return
	}

	if err := h.uc.Remove(ctx, user.ID, provider); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Test godoc
// @Summary     Test a stored API key
// @Description Calls the provider with the stored key and reports whether it worked.
// @Tags        APIKeys
// @Produce     json
// @Security    BearerAuth
// @Param       provider path string true "Provider name"
// @Success     200 {object} testResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/api-keys/test/{provider} [GET]
func (h *handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	provider := c.Param("provider")
	output, err := h.uc.Test(ctx, user.ID, provider)
	if err != nil {
		h.l.Errorf(ctx, "uc.Test: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTestResp(output))
}

// Models godoc
// @Summary     Model ids for a provider
// @Description Returns model ids, fetched live from the vendor when a key is stored.
// @Tags        APIKeys
// @Produce     json
// @Security    BearerAuth
// @Param       provider path string true "Provider name"
// @Success     200 {object} []string
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/api-keys/models/{provider} [GET]
func (h *handler) Models(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	provider := c.Param("provider")
	models, err := h.uc.Models(ctx, user.ID, provider)
	if err != nil {
		h.l.Errorf(ctx, "uc.Models: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, models)
}
