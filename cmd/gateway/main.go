package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/application/services"
	"github.com/DanielPopoola/anet-transactions/internal/config"
	"github.com/DanielPopoola/anet-transactions/internal/infrastructure/gateway"
	"github.com/DanielPopoola/anet-transactions/internal/infrastructure/telemetry"
	"github.com/DanielPopoola/anet-transactions/internal/interfaces/rest/router"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing, err := telemetry.Setup(cfg.Tracing, cfg.Primary.Env, os.Stdout)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	httpClient := gateway.NewHTTPClient(cfg.Gateway, cfg.Primary.Env, logger)
	gatewayClient := gateway.NewInstrumentedClient(httpClient, prometheus.DefaultRegisterer)

	logger.Info("starting transaction service",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"gateway_endpoint", httpClient.Endpoint(),
		"log_level", cfg.Logger.Level,
		"tracing", cfg.Tracing.Enabled,
	)

	transactionService := services.NewTransactionService(gatewayClient, logger)

	handler, err := router.New(transactionService, router.Options{
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestDeadline(),
		ServiceName:    telemetry.ServiceName,
	})
	if err != nil {
		logger.Error("failed to build http handler", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
