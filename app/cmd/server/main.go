package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"portal-service/app/config"
	"portal-service/app/di"
	"portal-service/app/utils/logger"
)

const shutdownGracePeriod = 30 * time.Second

func main() {
	var (
		configPath   = flag.String("config", "", "Path to a YAML config overlay (overrides CONFIG_FILE)")
		printVersion = flag.Bool("version", false, "Print the service version and exit")
	)
	flag.Parse()

	if *printVersion {
		fmt.Println("portal-service", serviceVersion())
		return
	}

	if *configPath != "" {
		os.Setenv("CONFIG_FILE", *configPath)
	}

	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Starting portal service",
		"version", serviceVersion(),
		"address", fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		"log_level", cfg.LogLevel,
		"kratos_public_url", cfg.KratosPublicURL,
		"guest_organization_id", cfg.GuestOrganizationID,
		"audit_log", cfg.EnableAuditLog,
		"metrics", cfg.EnableMetrics)

	container, err := di.NewContainer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize dependency container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	e := container.CreateRouter()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Portal API listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Portal service shutting down", "grace_period", shutdownGracePeriod)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Portal service exited")
}

// serviceVersion resolves the running version: the VERSION env var wins,
// then the module version stamped into the binary, then "dev".
func serviceVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
