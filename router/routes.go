package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	handler "github.com/krishkalaria12/snap-gen/handlers"
	"github.com/krishkalaria12/snap-gen/middleware"
	"github.com/rs/zerolog"
)

// NewApp builds the Fiber application with middleware, routes and error
// handling wired in.
func NewApp(h *handler.Handler, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "snap-gen",
		ErrorHandler: handler.ErrorHandler(log),
		// the image collaborator alone may take up to 30s
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(recover.New())

	SetupRoutes(app, h)

	return app
}

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/healthz", h.Health)
	app.Get("/styles", h.Styles)

	// Images
	app.Post("/generate", h.GenerateImage)
	app.Post("/batch_generate", h.BatchGenerate)
	app.Get("/history", h.History)

	// Videos
	app.Post("/generate_video", h.GenerateVideo)
	app.Get("/video_history", h.VideoHistory)
}
