package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/config"
	"github.com/coderpratik11/gamified-tracker/internal/handler"
	"github.com/coderpratik11/gamified-tracker/internal/logger"
	"github.com/coderpratik11/gamified-tracker/internal/repository"
	"github.com/coderpratik11/gamified-tracker/internal/router"
	"github.com/coderpratik11/gamified-tracker/internal/service"
	"github.com/coderpratik11/gamified-tracker/internal/store"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting chore tracker",
		zap.String("env", cfg.Env),
		zap.String("config_path", *configPath),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// Initialize row store
	rowStore, err := store.New(cfg.Storage, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer func() {
		if err := rowStore.Close(); err != nil {
			log.Error("Failed to close store", zap.Error(err))
		}
	}()

	// Initialize repositories
	workEntryRepo := repository.NewWorkEntryRepository(rowStore)
	userRepo := repository.NewUserRepository(rowStore)

	// Initialize services
	workEntryService := service.NewWorkEntryService(workEntryRepo, cfg.Approval.AnyoneMayReject, log.Logger)
	userService := service.NewUserService(userRepo, log.Logger)
	leaderboardService := service.NewLeaderboardService(workEntryRepo, userRepo)

	// Initialize handlers and router
	workEntryHandler := handler.NewWorkEntryHandler(workEntryService, log.Logger)
	userHandler := handler.NewUserHandler(userService, log.Logger)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, log.Logger)
	mux := router.New(workEntryHandler, userHandler, leaderboardHandler, log.Logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Shutdown complete")
}
