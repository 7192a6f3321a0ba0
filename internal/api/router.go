package api

import (
	"os"
	"path/filepath"
	"strings"

	"bookchat/docs"
	"bookchat/internal/api/handlers"
	"bookchat/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	docHandler *handlers.DocumentHandler,
	chatHandler *handlers.ChatHandler,
	staticCfg *config.StaticConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		// Whole books come in as a single multipart part.
		BodyLimit: 50 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger docs are registered through the docs package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes
	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)
	api.Post("/upload", docHandler.UploadPDF)
	api.Post("/chat", chatHandler.Chat)

	// Static front-end bundle, when built
	assetsDir := filepath.Join(staticCfg.Dir, "assets")
	if dirExists(assetsDir) {
		appLogger.Info("Serving static assets", zap.String("path", assetsDir))
		app.Static("/assets", assetsDir)
	} else {
		appLogger.Warn("Static assets directory not found, assets will not be served")
	}

	indexPath := filepath.Join(staticCfg.Dir, "index.html")

	// Catch-all: the front-end routes client-side, so every non-API path gets
	// the entry document.
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "API route not found",
			})
		}
		if fileExists(indexPath) {
			return c.SendFile(indexPath)
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Frontend not built",
		})
	})

	return app
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
