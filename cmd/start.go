package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"logbook-manager/core/config"
	"logbook-manager/core/database"
	"logbook-manager/core/loader"
	"logbook-manager/core/logger"
	"logbook-manager/core/middleware/auth"
	"logbook-manager/core/middleware/rayid"
	"logbook-manager/core/storage"

	"logbook-manager/feature/archive"
	"logbook-manager/feature/logbook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "logbook-manager/docs/swagger"
)

// @title Logbook Manager API
// @version 1.0
// @description API for ingesting and reconciling amateur radio contest logs.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the logbook manager server",
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

		// 3. Connect to Database (Optional)
		// Without a database the archive feature stays disabled.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to archive database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize the Reconciliation Engine
		manager := logbook.NewManager(logg)
		if mode, err := logbook.ParseMergeMode(cfg.Logbook.MergeMode); err != nil {
			logg.Warn("Invalid merge mode in configuration, using keep-all",
				zap.String("merge_mode", cfg.Logbook.MergeMode))
		} else {
			manager.SetMergeMode(mode)
		}
		manager.SetDropCallsignOnly(cfg.Logbook.DropCallsignOnly)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(logbook.NewFeature(manager, store, cfg.Storage.Bucket, cfg.Logbook.StoragePrefix, logg))
		mgr.Register(archive.NewFeature(db, manager, logg))

		// Middleware Registration
		// RayID must be first so every request is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
