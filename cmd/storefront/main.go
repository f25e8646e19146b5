// cmd/storefront/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	storefront "github.com/your-org/storefront-client"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging)
	logger.Infof("Starting %s v%s against %s", cfg.App.Name, cfg.App.Version, cfg.API.BaseURL)

	client, err := storefront.New(cfg, logger, storefront.Options{})
	if err != nil {
		logger.Fatalf("Failed to initialize client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Hit the backend once so a misconfigured base URL fails fast
	categories, err := client.Catalog.GetCategories(ctx)
	if err != nil {
		logger.Fatalf("Backend is unreachable: %v", err)
	}
	logger.WithField("categories", len(categories)).Info("Connected to backend")

	for _, category := range categories {
		fmt.Println(category.Name)
	}
}
