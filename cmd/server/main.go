package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/internal/api/routes"
	"hiremind-api/internal/config"
	"hiremind-api/internal/generator"
	"hiremind-api/internal/llm"
	_ "hiremind-api/internal/llm/providers" // register AI providers
	"hiremind-api/internal/logging"
	"hiremind-api/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting HireMind API")

	// Initialize AI provider fallback chain
	llmManager, err := llm.NewManager(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize AI providers", map[string]interface{}{
			"error": err.Error(),
		})
	}
	logger.Info("AI provider chain configured", map[string]interface{}{
		"providers": llmManager.ProviderNames(),
	})

	// Initialize session store
	var sessionStore session.Store
	switch cfg.Session.Store {
	case "redis":
		sessionStore = session.NewRedisStore(cfg)
		logger.Info("Using Redis session store", map[string]interface{}{
			"ttl": cfg.Session.TTL.String(),
		})
	default:
		sessionStore = session.NewMemoryStore(cfg.Session.TTL)
		logger.Info("Using in-memory session store")
	}
	defer sessionStore.Close()

	gen := generator.NewService(llmManager)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, gen, llmManager, sessionStore)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		if err := sessionStore.Close(); err != nil {
			logger.Error("Error closing session store", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{
		"address": address,
	})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
