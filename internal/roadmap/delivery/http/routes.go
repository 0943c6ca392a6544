package http

import (
	"career-roadmap-generator/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Paths are
// registered at the root so existing clients keep working unprefixed.
// Only the generation route is rate limited; it is the only one that
// spends LLM tokens.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/generate-roadmap", mw.RateLimit(), h.Generate)
	rg.POST("/parse-time", h.ParseTime)
	rg.GET("/career-options", h.CareerOptions)
	rg.GET("/time-formats", h.TimeFormats)
	rg.GET("/test-groq", h.TestLLM)
}
