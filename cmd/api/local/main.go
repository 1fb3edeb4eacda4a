//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsclient "github.com/haloiq/tax-api/internal/client/aws"
	"github.com/haloiq/tax-api/internal/config"
	"github.com/haloiq/tax-api/internal/logger"
	"github.com/haloiq/tax-api/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           Tax API
// @version         1.0
// @description     Per-period payroll tax estimates and tax-type lookups

// @contact.name   API Support

// @host      localhost:8000
// @BasePath  /
func main() {
	if err := godotenv.Load(); err != nil {
		// Variables may be set directly in the environment.
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	ctx := context.Background()
	secrets, secretsErr := secretFetcher(ctx)
	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	if secretsErr != nil {
		logger.Warn("Secrets Manager unavailable, using TAXUPDATE_KEY", zap.Error(secretsErr))
	}

	srv, err := server.New(cfg)
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests, including a provider call, a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Provider.Timeout+5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

// secretFetcher returns a Secrets Manager client when the provider key is
// stored there, or nil to use TAXUPDATE_KEY as-is. The error is reported once
// the logger is configured.
func secretFetcher(ctx context.Context) (config.SecretFetcher, error) {
	if os.Getenv("TAXUPDATE_KEY_SECRET_ARN") == "" {
		return nil, nil
	}
	client, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}
