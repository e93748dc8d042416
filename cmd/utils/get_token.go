package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"flightsearch-service/internal/infrastructure/config"
	"flightsearch-service/internal/infrastructure/oauth"
	"flightsearch-service/pkg/logger"
)

// Debug utility: mints an access token with the configured client
// credentials and prints it, for exercising the API by hand.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	tokens := oauth.NewTokenCache(cfg.AmadeusBaseURL, cfg.AmadeusClientID, cfg.AmadeusClientSecret, logger.NewLogger(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := tokens.Token(ctx)
	if err != nil {
		log.Fatalf("failed to fetch token: %v", err)
	}

	fmt.Printf("\nAccess Token: %s\n\n", token)
}
