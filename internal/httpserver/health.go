package httpserver

import (
	"career-roadmap-generator/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "2.0.0"
	ServiceName   = "career-roadmap-generator"
)

// featureList advertises what the service can do; surfaced on /health so
// frontends can toggle UI affordances without a separate capabilities call.
var featureList = []string{
	"Flexible time input parsing",
	"Personalized roadmaps",
	"Multiple scheduling options",
	"Project-based learning",
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":   "healthy",
		"version":  HealthVersion,
		"service":  ServiceName,
		"model":    srv.modelName(),
		"features": featureList,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// modelName reports the primary provider's model for the health payload.
func (srv HTTPServer) modelName() string {
	for _, p := range srv.cfg.LLM.Providers {
		if p.Enabled {
			return p.Model
		}
	}
	return ""
}
