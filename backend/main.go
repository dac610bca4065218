package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"studyplan/backend/catalog"
	"studyplan/backend/config"
	"studyplan/backend/middleware"
	"studyplan/backend/routes"
	"studyplan/backend/utils"
)

func main() {
	app := &cli.App{
		Name:   "study-planner",
		Usage:  "distribute course modules over a study window",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:  "import",
				Usage: "load a catalog workbook into the database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "path to the catalog .xlsx",
						Required: true,
					},
				},
				Action: importCatalog,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup() (*config.Config, zerolog.Logger, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("error loading config: %w", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return cfg, logger, nil
}

func serve(c *cli.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	// The database is only needed when the catalog lives there
	var db *gorm.DB
	if cfg.CatalogSource == "db" {
		db, err = utils.InitDB(cfg)
		if err != nil {
			return fmt.Errorf("error initializing database: %w", err)
		}
	}

	loader, err := catalog.NewLoader(cfg, db)
	if err != nil {
		return err
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "study-planner",
		ErrorHandler: utils.ErrorHandler(logger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, loader, cfg)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	// Start server
	logger.Info().
		Str("port", cfg.ServerPort).
		Str("catalog_source", cfg.CatalogSource).
		Int("min_plan_days", cfg.MinPlanDays).
		Msg("server starting")
	return app.Listen(":" + cfg.ServerPort)
}

func importCatalog(c *cli.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}

	ctx := logger.WithContext(context.Background())
	path := c.String("file")
	modules, err := catalog.NewXLSXLoader(path).Load(ctx)
	if err != nil {
		return err
	}
	if err := catalog.NewStore(db).Replace(ctx, modules); err != nil {
		return err
	}

	logger.Info().Str("file", path).Int("modules", len(modules)).Msg("catalog imported")
	return nil
}
