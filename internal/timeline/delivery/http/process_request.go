package http

import (
	"github.com/gin-gonic/gin"
)

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateEventsReq binds and validates the create-events body.
func (h *handler) processCreateEventsReq(c *gin.Context) (createEventsReq, error) {
	var req createEventsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
