package handler

import (
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/handler/grpc"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/handler/http"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers whose addresses are configured.
func NewHandlers(services *service.Services, deps http.Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, deps, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
