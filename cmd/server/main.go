package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shelfscan/backend/config"
	httpDelivery "github.com/shelfscan/backend/internal/delivery/http"
	"github.com/shelfscan/backend/internal/infrastructure/cache"
	"github.com/shelfscan/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Static lookup tables must be internally consistent before serving
	if err := usecase.ValidateTables(); err != nil {
		log.Fatalf("Invalid shelf-life tables: %v", err)
	}

	log.Printf("Starting ShelfScan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Scan cache TTL: %s", cfg.Cache.TTL)
	log.Printf("Rate limit: %d req/min per IP", cfg.RateLimit.PerIP)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	// Initialize usecase layer
	receiptService := usecase.NewReceiptService(memoryCache, usecase.ReceiptServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	if cfg.Matching.EnableDebugLogging {
		log.Printf("Matching debug logging enabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(receiptService)

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
