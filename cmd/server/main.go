package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dermalens/backend/config"
	"github.com/dermalens/backend/internal/catalog"
	httpDelivery "github.com/dermalens/backend/internal/delivery/http"
	"github.com/dermalens/backend/internal/domain"
	"github.com/dermalens/backend/internal/infrastructure/cache"
	"github.com/dermalens/backend/internal/infrastructure/ollama"
	"github.com/dermalens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting DermaLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Catalog is built once and shared read-only by every request
	productCatalog := catalog.Default()
	log.Printf("Catalog loaded: %d products", productCatalog.Len())

	// Initialize infrastructure dependencies
	generator := ollama.NewClient(ollama.Config{
		BaseURL:          cfg.Ollama.BaseURL,
		Model:            cfg.Ollama.Model,
		Timeout:          cfg.Ollama.Timeout,
		BreakerThreshold: cfg.Ollama.BreakerThreshold,
		BreakerCooldown:  cfg.Ollama.BreakerCooldown,
	})
	log.Printf("Ollama configured: %s (model: %s, timeout: %s)",
		cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		generator.SetDebug(true)
		log.Printf("Ollama client debug mode enabled")
	}

	var responseCache domain.CacheRepository
	if cfg.Cache.Enabled {
		memoryCache := cache.NewMemoryCache()
		defer memoryCache.Close()
		responseCache = memoryCache
		log.Printf("Response cache enabled (TTL: %s)", cfg.Cache.TTL)
	}

	// Initialize usecase layer
	recommendService := usecase.NewRecommendService(
		productCatalog,
		generator,
		responseCache,
		usecase.RecommendConfig{
			TopK:                  cfg.Recommend.TopK,
			ContextLimit:          cfg.Recommend.ContextLimit,
			MaxProducts:           cfg.Recommend.MaxProducts,
			StrictConditionFilter: cfg.Recommend.StrictConditionFilter,
			CacheTTL:              cfg.Cache.TTL,
			EnableDebugLogging:    cfg.Recommend.EnableDebugLogging,
		},
	)

	log.Printf("Recommend: topK=%d contextLimit=%d maxProducts=%d strictFilter=%v",
		cfg.Recommend.TopK,
		cfg.Recommend.ContextLimit,
		cfg.Recommend.MaxProducts,
		cfg.Recommend.StrictConditionFilter)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendService, generator)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
