package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookchat/internal/api"
	"bookchat/internal/api/handlers"
	"bookchat/internal/repository"
	"bookchat/internal/service"
	"bookchat/pkg/config"
	"bookchat/pkg/logger"
	"bookchat/pkg/postgres"

	"go.uber.org/zap"
)

// @title BookChat API
// @version 1.0
// @description Upload a PDF book and ask questions about its content.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting BookChat service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Initialize repositories
	docRepo := repository.NewDocumentRepository(db, appLogger)

	// Initialize services
	pdfService := service.NewPDFService(appLogger)

	aiService, err := service.NewAIService(ctx, &cfg.AI, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI service", zap.Error(err))
	}
	if aiService == nil {
		appLogger.Warn("No language model API key configured, chat requests will be rejected",
			zap.String("provider", cfg.AI.Provider))
	} else {
		defer aiService.Close()
	}

	docService := service.NewDocumentService(docRepo, pdfService, cfg.Static.UploadDir, appLogger)
	chatService := service.NewChatService(docRepo, aiService, cfg.Chat.MaxContextChars, appLogger)

	// Initialize handlers
	docHandler := handlers.NewDocumentHandler(docService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)

	// Setup router
	app := api.SetupRouter(docHandler, chatHandler, &cfg.Static, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
