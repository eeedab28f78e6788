// ABOUTME: Main entry point for the SiteGen API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitegen-api/api"
	"sitegen-api/api/handlers"
	"sitegen-api/core/analyzer"
	"sitegen-api/core/deploy"
	"sitegen-api/core/identity"
	"sitegen-api/core/images"
	"sitegen-api/core/interfaces"
	"sitegen-api/core/quota"
	"sitegen-api/core/synth"
	"sitegen-api/core/website"
	"sitegen-api/infrastructure/cache/memory"
	"sitegen-api/infrastructure/cache/redis"
	stdhttp "sitegen-api/infrastructure/http/standard"
	logruslogger "sitegen-api/infrastructure/logger/logrus"
	"sitegen-api/infrastructure/storage/sqlite"
	"sitegen-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(os.Stdout, os.Getenv("LOG_LEVEL"))
	logger.Info("Starting SiteGen API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"base_url":   cfg.Server.BaseURL,
	})

	// Missing provider keys degrade their stage rather than failing startup
	if degraded := cfg.DegradedModes(); len(degraded) > 0 {
		logger.Warn("Running with degraded pipeline stages", map[string]interface{}{
			"stages": degraded,
		})
	}

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		logger.Info("Using memory cache", nil)
	}

	// Create storage
	storage, err := sqlite.NewClient(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer storage.Close()

	// Create HTTP clients. Image search and page analysis degrade to
	// fallbacks on any failure, so their provider calls get one attempt
	// with no backoff.
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)
	providerClient := stdhttp.NewSingleAttemptHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	providerDeps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: providerClient,
		Logger:     logger,
	}

	// Create pipeline services
	imageService := images.NewImageService(providerDeps, cfg.Providers.PexelsAPIKey)
	analyzerService := analyzer.NewAnalyzerService(providerDeps)
	synthService := synth.NewSynthesizerService(deps, imageService, cfg.Providers.OpenAIAPIKey, cfg.Providers.OpenAIModel)
	deployService := deploy.NewDeployService(deps, cfg.Providers.NetlifyAPIKey)
	quotaGate := quota.NewGate()
	identityService := identity.NewService(storage, logger)
	websiteService := website.NewWebsiteService(
		deps,
		analyzerService,
		synthService,
		deployService,
		quotaGate,
		storage,
		storage,
		cfg.Server.BaseURL,
	)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	websiteHandler := handlers.NewWebsiteHandler(websiteService, identityService, cfg.Server.BaseURL)
	websiteHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // creation runs the whole external pipeline
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
   _____ _ __       ______           ___    ____  ____
  / ___/(_) /____  / ____/__  ____  /   |  / __ \/  _/
  \__ \/ / __/ _ \/ / __/ _ \/ __ \/ /| | / /_/ // /
 ___/ / / /_/  __/ /_/ /  __/ / / / ___ |/ ____// /
/____/_/\__/\___/\____/\___/_/ /_/_/  |_/_/   /___/
	`)
}
