package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artifact-planner/core/config"
	"artifact-planner/core/loader"
	"artifact-planner/core/logger"
	"artifact-planner/core/middleware/auth"
	"artifact-planner/core/middleware/rayid"
	"artifact-planner/core/storage"
	"artifact-planner/feature/integrity"
	"artifact-planner/feature/loadout"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "artifact-planner/docs/swagger"
)

// @title Artifact Planner API
// @version 1.0
// @description Plans artifact loadouts from a player's backup and scores them.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the planner server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Validate(); err != nil {
			logg.Fatal("Invalid configuration", zap.Error(err))
		}

		// 3. Connect to Database (Optional)
		db := connectDatabase(cfg, logg)

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Catalog
		catalogs, err := newCatalogCache(cfg, store, db, logg)
		if err != nil {
			logg.Fatal("Failed to initialize catalog", zap.Error(err))
		}
		warmCtx, cancelWarm := context.WithTimeout(context.Background(), cfg.Storage.Timeout())
		if _, err := catalogs.Get(warmCtx); err != nil {
			// Requests retry the load; the server still starts.
			logg.Warn("Initial catalog load failed", zap.Error(err))
		}
		cancelWarm()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 6. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(loadout.NewFeature(catalogs, store, cfg.Storage.Bucket, cfg.Planner, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Planner, catalogs, db, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request finished",
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Protect every other request
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("auth", cfg.Server.AuthEnabled()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(time.Duration(cfg.Server.ShutdownSeconds) * time.Second); err != nil {
			logg.Warn("Graceful shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
