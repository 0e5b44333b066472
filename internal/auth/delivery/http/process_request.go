package http

import (
	"github.com/gin-gonic/gin"
)

// processSaveSystemPromptReq binds and validates the system prompt body.
func (h *handler) processSaveSystemPromptReq(c *gin.Context) (saveSystemPromptReq, error) {
	var req saveSystemPromptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
