package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/lucasb/schoolhub/internal/pkg/logger"
	"github.com/lucasb/schoolhub/internal/server"
)

// @title SchoolHub API
// @version 1.0
// @description REST API for managing students, courses, subjects and avatars

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using process environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
