package httpserver

import (
	"context"

	"career-roadmap-generator/internal/middleware"
	roadmapHTTP "career-roadmap-generator/internal/roadmap/delivery/http"
	roadmapUC "career-roadmap-generator/internal/roadmap/usecase"

	"github.com/gin-gonic/gin"
)

// setupRoadmapDomain initializes the roadmap domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupRoadmapDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := roadmapUC.New(srv.l, srv.llm)

	// 2. HTTP Handler
	h := roadmapHTTP.New(srv.l, uc)

	// 3. Routes: registered at the root, no version prefix
	roadmapHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Roadmap domain registered")
	return nil
}
