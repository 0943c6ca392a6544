package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate roadmap request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processParseTimeReq binds and validates the parse time request body.
func (h *handler) processParseTimeReq(c *gin.Context) (parseTimeReq, error) {
	var req parseTimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
