package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight page loads may keep running once
// the server is asked to stop.
const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal arrives,
// then shuts it down gracefully.
func (s *Server) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := s.E.Start(s.Cfg.AppAddr); err != nil && err != http.ErrServerClosed {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")
	s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and then lets
// every module release its resources.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Requests still running at the deadline are cut off, which cancels their
	// page loads.
	if err := s.E.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	for _, m := range s.modules {
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
