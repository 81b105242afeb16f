package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-impex/core/loader"
	"catalog-impex/core/logger"
	"catalog-impex/core/middleware/auth"
	"catalog-impex/core/middleware/rayid"
	"catalog-impex/core/storage"
	"catalog-impex/feature/importer"
	"catalog-impex/feature/integrity"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "catalog-impex/docs/swagger"
)

// @title Catalog Impex API
// @version 1.0
// @description API for reconciling catalog import documents.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the import server",
	Long: heredoc.Doc(`
		Starts the HTTP server and initializes all enabled features.
		The importer feature is only enabled when the catalog database is reachable.`),
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration and logger
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 3. Database (Optional)
		var db *gorm.DB
		if conn, err := connect(cfg, logg); err != nil {
			logg.Warn("Optional database connection failed, importer disabled", zap.Error(err))
		} else {
			db = conn
		}

		var svc *importer.Service
		if db != nil {
			if svc, err = newImportService(cfg, db, store, logg); err != nil {
				logg.Fatal("Failed to create import service", zap.Error(err))
			}
		}

		// 4. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ReadTimeout:           cfg.Server.ReadTimeout(),
		})

		// 5. Features
		mgr := loader.NewManager()
		mgr.Register(importer.NewFeature(svc))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Import, db, logg))

		// RayID first so every log line can be correlated
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

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		for _, f := range mgr.Features() {
			logg.Info("Feature registered", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
