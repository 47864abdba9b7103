package httpserver

import (
	"context"

	"voice-timer-skill/internal/model"
	skillHTTP "voice-timer-skill/internal/skill/delivery/http"
	"voice-timer-skill/internal/test"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Logger())

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "Environment: production")
	} else {
		srv.l.Infof(ctx, "Environment: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	skillHTTP.RegisterRoutes(srv.gin, srv.skillHandler, srv.mw.IPAllowlist(), srv.mw.RateLimit())
	srv.l.Infof(ctx, "Skill route registered at POST /alexa")

	switch {
	case srv.testHandler == nil:
		srv.l.Infof(ctx, "Test handler not configured, skipping /test routes")
	case model.IsProduction(srv.environment):
		srv.l.Infof(ctx, "Production environment, skipping /test routes")
	default:
		test.RegisterRoutes(srv.gin, srv.testHandler)
		srv.l.Infof(ctx, "Test routes registered under /test")
	}

	return nil
}
