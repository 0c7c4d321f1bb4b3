package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/handler"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/handler/http"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/metrics"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/server"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/validators"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("legal-scale-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("documents_dir", cfg.Storage.Files.DocumentsDir).
		Bool("user_cache", cfg.Storage.Cache.RedisAddress != "").
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	files, err := store.NewLocalFileStorage(cfg.Storage.Files.DocumentsDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating document store")
	}

	var cache store.UserCache
	if cfg.Storage.Cache.RedisAddress != "" {
		userCache, client, err := store.NewRedisUserCache(ctx, cfg.Storage.Cache, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting user cache")
		}
		defer client.Close()
		cache = userCache
	}

	storages := store.NewStorages(db, files, cache, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	workflowMetrics := metrics.New(registry)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, workflowMetrics, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, http.Dependencies{
		Validator: validators.NewRequestValidator(),
		Metrics:   workflowMetrics,
		Health:    db,
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
