package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"inventory-manager/core/loader"
	"inventory-manager/core/logger"
	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/middleware/rayid"
	"inventory-manager/core/storage"
	"inventory-manager/feature/barcode"
	"inventory-manager/feature/integrity"
	"inventory-manager/feature/labels"
	"inventory-manager/feature/part"
	"inventory-manager/feature/part/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-manager/docs/swagger"
)

// @title Inventory Manager API
// @version 1.0
// @description API for parts inventory and barcode scanning.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var migrateOnStart bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(false)
		if err != nil {
			return err
		}
		logg := env.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if env.db != nil && migrateOnStart {
			if err := models.Migrate(env.db); err != nil {
				return err
			}
			logg.Info("Database schema migrated")
		}

		reg, err := env.registry()
		if err != nil {
			return err
		}

		store, err := storage.NewClient(env.cfg.Storage)
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		mgr := loader.NewManager(logg)
		mgr.Register(part.NewFeature(env.db, logg))
		mgr.Register(barcode.NewFeature(reg, env.cfg.Barcode, logg))
		mgr.Register(labels.NewFeature(store, env.cfg.Storage, reg, env.cfg.Barcode, logg))
		mgr.Register(integrity.NewFeature(store, env.cfg.Storage, logg, env.db))

		// RayID must be first to trace everything
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

		app.Use(auth.New(auth.Config{
			ApiKey:         env.cfg.Server.ApiKey,
			PublicPrefixes: env.cfg.Server.PublicPrefixes(),
		}))

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("addr", env.cfg.Server.ListenAddr()))
			if err := app.Listen(env.cfg.Server.ListenAddr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Create or update the inventory tables before serving")
}
