package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/adapters/sources"
	"github.com/keebscout/keebscout/internal/api/handlers"
	"github.com/keebscout/keebscout/internal/api/routes"
	"github.com/keebscout/keebscout/internal/application/services"
	"github.com/keebscout/keebscout/internal/infrastructure/observability"
	"github.com/keebscout/keebscout/pkg/config"
)

func main() {
	// Load .env if present; real environments configure via env vars
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("keebscout-api", cfg.Server.Env)

	registry, err := buildRegistry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build adapter registry")
	}

	enrichment, err := services.NewEnrichmentServiceFromFile(services.GetReviewsConfigPath())
	if err != nil {
		log.Warn().Err(err).Msg("curated reviews unavailable, results will not be enriched")
		enrichment = nil
	}

	pipeline := services.NewPipelineService(enrichment)

	searchHandler := handlers.NewSearchHandler(registry, pipeline, cfg.Pipeline)

	router := routes.NewRouter(searchHandler)
	handler := router.SetupRoutes()

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}

func buildRegistry(cfg *config.Config) (*sources.Registry, error) {
	amazon, err := sources.NewAmazonAdapter(sources.ModeAuto)
	if err != nil {
		return nil, err
	}
	bestBuy, err := sources.NewBestBuyAdapter(cfg.Sources.BestBuyAPIKey, sources.ModeAuto)
	if err != nil {
		return nil, err
	}
	walmart, err := sources.NewWalmartAdapter(cfg.Sources.WalmartAPIKey, sources.ModeAuto)
	if err != nil {
		return nil, err
	}

	adapters := []sources.SourceAdapter{amazon, bestBuy, walmart}
	if cfg.Sources.CSVPath != "" {
		adapters = append(adapters, sources.NewCSVAdapter(cfg.Sources.CSVPath))
	}
	return sources.NewRegistry(adapters...), nil
}
