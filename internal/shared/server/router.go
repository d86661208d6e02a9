package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"smartrecruit-backend/internal/analyze"
	"smartrecruit-backend/internal/config"
	"smartrecruit-backend/internal/services/health"
	"smartrecruit-backend/internal/shared/server/middleware"
	"smartrecruit-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	AnalyzeHandler *analyze.Handler
	HealthService  *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	tmpl, err := analyze.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	deps.AnalyzeHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.HealthService.Status())
	})
	deps.AnalyzeHandler.RegisterAPIRoutes(api)

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
