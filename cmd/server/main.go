package main

import (
	"fmt"
	"os"

	"github.com/hotelsuite/hotelsuite/internal/config"
	"github.com/hotelsuite/hotelsuite/internal/logger"
	"github.com/hotelsuite/hotelsuite/internal/server"
)

var version = "dev" // Will be set during build with -ldflags

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	srv := server.New(cfg, log, version)

	log.Info().
		Str("version", version).
		Str("api", cfg.API.BaseURL).
		Msg("Starting hotel web front...")

	// Start HTTP server (this blocks)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
