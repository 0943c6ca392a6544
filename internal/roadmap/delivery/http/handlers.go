package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"career-roadmap-generator/pkg/response"
)

// Generate godoc
// @Summary     Generate a career roadmap
// @Description Generates a personalized career roadmap from a flexible time budget.
// @Tags        Roadmap
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Career goal and time budget"
// @Success     200 {object} response.Resp{data=roadmap.GenerateOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /generate-roadmap [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, output)
}

// ParseTime godoc
// @Summary     Parse a time budget
// @Description Converts a free-form duration string into hours with scheduling options.
// @Tags        Roadmap
// @Accept      json
// @Produce     json
// @Param       body body parseTimeReq true "Time input"
// @Success     200 {object} response.Resp{data=roadmap.ParseTimeOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /parse-time [POST]
func (h *handler) ParseTime(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseTimeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseTime(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTime: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, output)
}

// CareerOptions godoc
// @Summary     List supported career paths
// @Description Returns the static catalog of career roles with key skills.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} response.Resp{data=careerOptionsResp}
// @Router      /career-options [GET]
func (h *handler) CareerOptions(c *gin.Context) {
	response.OK(c, careerCatalog)
}

// TimeFormats godoc
// @Summary     List supported time formats
// @Description Returns examples of accepted duration formats and conversion rates.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} response.Resp{data=timeFormatsResp}
// @Router      /time-formats [GET]
func (h *handler) TimeFormats(c *gin.Context) {
	response.OK(c, timeFormatsGuide)
}

// TestLLM godoc
// @Summary     Test LLM connectivity
// @Description Sends a trivial prompt through the configured provider chain.
// @Tags        System
// @Produce     json
// @Success     200 {object} response.Resp{data=testLLMResp}
// @Router      /test-groq [GET]
func (h *handler) TestLLM(c *gin.Context) {
	ctx := c.Request.Context()
	ts := time.Now().Format(time.RFC3339)

	output, err := h.uc.Ping(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Ping: %v", err)
		response.OK(c, testLLMResp{
			Status:    "error",
			Error:     err.Error(),
			Timestamp: ts,
		})
		return
	}

	response.OK(c, h.newTestLLMResp(output, ts))
}
