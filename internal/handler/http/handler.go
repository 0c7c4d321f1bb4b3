package http

import (
	"context"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/validators"
)

// HealthChecker reports whether the backing database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators of the HTTP layer besides the services.
type Dependencies struct {
	Validator validators.Validator
	Metrics   *metrics.Workflow
	Health    HealthChecker
}

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services      *service.Services
	validator     validators.Validator
	metrics       *metrics.Workflow
	healthChecker HealthChecker

	tokens config.App
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		validator:     deps.Validator,
		metrics:       deps.Metrics,
		healthChecker: deps.Health,
		tokens:        cfg.App,
		server:        cfg.Server,
		logger:        logger,
	}
}
