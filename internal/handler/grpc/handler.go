// Package grpc exposes the standard gRPC health service of the server.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
)

// Handler serves grpc.health.v1.Health. The overall status is SERVING from
// registration until Shutdown.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		logger: logger,
	}
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to every watcher.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}
