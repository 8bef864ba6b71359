package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kisxo/ita-api/internal/database"
	"github.com/kisxo/ita-api/internal/errors"
	"github.com/kisxo/ita-api/internal/logger"
	"github.com/kisxo/ita-api/internal/middleware"
	"github.com/kisxo/ita-api/internal/repository"
	"github.com/kisxo/ita-api/internal/services"
	"github.com/kisxo/ita-api/pkg/config"
)

// NewRouter builds the gin engine with the middleware stack and all routes
func NewRouter(db *database.DB, cfg *config.Config, log logger.Logger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if cfg.OTelEnabled {
		r.Use(otelgin.Middleware(cfg.OTelServiceName))
	}
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(log.With("component", "http")))
	r.Use(gin.CustomRecovery(recoverPanic))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))

	SetupRoutes(r, db, log)
	return r, nil
}

// recoverPanic renders a recovered panic like any other internal failure
func recoverPanic(c *gin.Context, recovered any) {
	respondError(c, errors.InternalError("Internal server error", fmt.Errorf("panic: %v", recovered)))
}

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, log logger.Logger) {
	repos := repository.NewRepositories(db.DB)
	svcs := services.NewServices(repos, log)

	contestantHandler := NewContestantHandler(svcs.Contestant)
	healthHandler := NewHealthHandler(db)

	r.GET("/healthz", healthHandler.GetHealth)

	// ita stands for Incredible Talent of Assam
	r.GET("/ita/", contestantHandler.GetContestant)
	r.POST("/ita", contestantHandler.CreateContestant)
	r.PATCH("/ita/", contestantHandler.UpdateContestant)
}
