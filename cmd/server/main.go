package main

import (
	"github.com/rpeart73/clockwork-elite/internal/config"
	"github.com/rpeart73/clockwork-elite/internal/database"
	"github.com/rpeart73/clockwork-elite/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize database connection; the service degrades to in-memory
	// operation when no database is reachable.
	var drafts *database.DraftStore
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without draft persistence")
	} else {
		logger.Info().Msg("Database connection established successfully")

		drafts, err = database.NewDraftStore(db)
		if err != nil {
			logger.Warn().Err(err).Msg("Draft table setup failed")
			drafts = nil
		}
	}

	// Create and initialize server
	srv := server.New(cfg, db, drafts, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
