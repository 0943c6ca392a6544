package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"career-roadmap-generator/internal/middleware"
	"career-roadmap-generator/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: srv.cfg.CORS.AllowCreds,
		MaxAge:           12 * time.Hour,
	}
	if len(srv.cfg.CORS.AllowedOrigins) == 1 && srv.cfg.CORS.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		// gin-contrib/cors rejects credentials together with a wildcard origin.
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = srv.cfg.CORS.AllowedOrigins
	}
	srv.gin.Use(cors.New(corsCfg))

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) && corsCfg.AllowAllOrigins {
		srv.l.Warn(ctx, "CORS allows all origins in production")
	}
	srv.l.Infof(ctx, "CORS origins: %v", srv.cfg.CORS.AllowedOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupRoadmapDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}

	return nil
}
