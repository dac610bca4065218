package routes

import (
	"github.com/gofiber/fiber/v2"

	"studyplan/backend/catalog"
	"studyplan/backend/config"
	"studyplan/backend/controllers"
)

func SetupRoutes(app *fiber.App, loader catalog.Loader, cfg *config.Config) {
	app.Get("/healthz", controllers.Health)

	planController := controllers.NewPlanController(loader, cfg)

	// Paths used by the browser client
	app.Post("/generate", planController.Generate)
	app.Post("/download", planController.Download)

	// Plan routes
	api := app.Group("/api")
	api.Get("/modules", planController.ListModules)
	api.Get("/paces", planController.GetPaces)
	api.Post("/plans", planController.Generate)
	api.Post("/plans/export", planController.Download)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
