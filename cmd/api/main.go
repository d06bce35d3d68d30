package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/okandemir/coursefeedback/internal/pkg/logger"
	"github.com/okandemir/coursefeedback/internal/server"
)

// @title Course Feedback API
// @version 1.0
// @description REST API for the student course-feedback portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	// A missing .env file is fine; the environment may carry everything
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
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
