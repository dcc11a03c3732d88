// ABOUTME: Main entry point for the SkillScope API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillscope-api/api"
	"skillscope-api/api/handlers"
	"skillscope-api/core/aggregate"
	"skillscope-api/core/enrich"
	"skillscope-api/core/interfaces"
	"skillscope-api/core/providers/udemy"
	"skillscope-api/core/providers/youtube"
	"skillscope-api/infrastructure/cache/memory"
	"skillscope-api/infrastructure/cache/redis"
	stdhttp "skillscope-api/infrastructure/http/standard"
	"skillscope-api/infrastructure/logger"
	"skillscope-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger := logger.NewLogrusLogger(cfg.Log)
	appLogger.Info("Starting SkillScope API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			appLogger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			appLogger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		appLogger.Info("Using memory cache", nil)
	}

	httpTimeout := time.Duration(cfg.Server.HTTPTimeoutSeconds) * time.Second
	httpClient := stdhttp.NewStandardHTTPClient(httpTimeout)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     appLogger,
	}

	// Create providers and services
	videoProvider := youtube.NewClient(deps, cfg.Providers.YouTubeAPIKey)
	courseProvider := udemy.NewClient(deps, cfg.Providers, httpTimeout)
	enricher := enrich.NewService(deps, cfg.Enrichment)
	searchService := aggregate.NewService(deps, videoProvider, courseProvider, enricher)

	if !videoProvider.Configured() {
		appLogger.Warn("YOUTUBE_API_KEY not set, search requests will fail", nil)
	}
	if !courseProvider.Configured() {
		appLogger.Info("Udemy credentials not set, course results disabled", nil)
	}
	if !enricher.Enabled() {
		appLogger.Info("OPENROUTER_KEY not set, enrichment uses defaults", nil)
	}

	// Create router with middleware and register handlers
	router := api.NewRouter(api.APIConfig{
		Logger:     appLogger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	})
	handlers.NewSearchHandler(searchService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server stopped", nil)
}
