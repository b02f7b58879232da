package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stargazer/internal/config"
	"stargazer/internal/logger"
	"stargazer/internal/server"
)

func main() {
	ctx := context.Background()

	// .env is a development convenience; absence is not an error
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded environment from .env file")
	}

	// Missing credentials must fail here, before any UI is served
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load configuration", err)
	}

	if level := logger.ParseLogLevel(cfg.LogLevel); level != -1 {
		logger.GetGlobalLogger().SetLevel(level)
	}
	if format := logger.ParseLogFormat(cfg.LogFormat); format != -1 {
		logger.GetGlobalLogger().SetFormat(format)
	}

	logger.Infof("Starting Stargazer %s on port %s", config.Version, cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // star chart generation is slow upstream
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
