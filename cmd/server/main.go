package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-md-translator/internal/config"
	"pdf-md-translator/internal/handler"

	"github.com/joho/godotenv"
)

const sweepInterval = time.Minute

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	cfg := container.Config

	// Handlers
	sessionHandler := handler.NewSessionHandler(
		container.Sessions,
		cfg.GetSeedCredentials(),
		container.Logger,
	)

	convertHandler := handler.NewConvertHandler(
		container.Converter,
		container.Renderer,
		cfg.GetMaxFileSize(),
		container.Logger,
	)

	translateHandler := handler.NewTranslateHandler(
		container.Dispatcher,
		container.Renderer,
		container.Logger,
	)

	sessionMiddleware := handler.NewSessionMiddleware(
		container.Sessions,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		sessionHandler,
		convertHandler,
		translateHandler,
		sessionMiddleware.Middleware,
		cfg.GetAllowedOrigins(),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go container.Sessions.RunSweeper(ctx, sweepInterval)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           handler.RequestLogger(container.Logger)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
