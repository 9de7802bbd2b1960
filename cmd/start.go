package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"list-manager/core/config"
	"list-manager/core/database"
	"list-manager/core/loader"
	"list-manager/core/logger"
	"list-manager/core/middleware/auth"
	"list-manager/core/middleware/rayid"
	"list-manager/core/storage"

	"list-manager/feature/importer"
	"list-manager/feature/lists"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "list-manager/docs/swagger"
)

// @title List Manager API
// @version 1.0
// @description API for managing lists and importing external list data.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the list manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidStrategy() {
			log.Fatalf("Invalid default merge strategy: %q", cfg.Server.DefaultStrategy)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := lists.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ensureBucket(store, cfg.Storage.Bucket, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		listsFeature := lists.NewFeature(db, logg)
		mgr.Register(listsFeature)
		mgr.Register(importer.NewFeature(
			listsFeature.Service().Store(),
			store,
			cfg.Storage.Bucket,
			logg,
			importer.MergeStrategy(cfg.Server.DefaultStrategy),
		))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
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

// ensureBucket creates the image payload bucket when missing. A storage
// outage at startup is logged, not fatal; imports without images still work.
func ensureBucket(store storage.Client, bucket string, logg *zap.Logger) {
	ctx := context.Background()
	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		logg.Warn("Failed to check storage bucket", zap.String("bucket", bucket), zap.Error(err))
		return
	}
	if exists {
		return
	}
	if err := store.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logg.Warn("Failed to create storage bucket", zap.String("bucket", bucket), zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
