package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/flightdesk/internal/server"
)

func main() {
	// Create a new server instance.
	s := server.New()

	// Register all application routes.
	if err := s.RegisterRoutes(context.Background()); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	// Start the server.
	s.Start()
}
