package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/app"
	"github.com/amitsingh771/Numerology/internal/handlers"
	"github.com/amitsingh771/Numerology/internal/logger"
)

const shutdownTimeout = 20 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Stdout, cfg.IsProduction(), cfg.LogLevel)
	log := logger.New("main").Function("run")

	application, err := app.NewWithConfig(cfg)
	if err != nil {
		return log.Err("failed to initialize app", err)
	}
	defer application.Close()

	server, err := handlers.NewServer(application)
	if err != nil {
		return log.Err("failed to build server", err)
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		s := <-quit
		log.Info("Shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.ShutdownWithContext(ctx)
	}()

	address := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info("Starting server", "address", address, "environment", cfg.Environment, "fortunes", application.FortuneRepo.Len())

	if err := server.Listen(address); err != nil {
		return log.Err("server stopped unexpectedly", err)
	}

	if err := <-shutdownErr; err != nil {
		return log.Err("failed to shut down cleanly", err)
	}

	log.Info("Server stopped")
	return nil
}
