package cmd

import (
	"fmt"

	"inventory-manager/core/barcode"
	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/feature/part"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment bundles what every command needs.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// loadEnvironment loads the configuration, builds the logger and connects to
// the database. A failed connection is only fatal when requireDB is set.
func loadEnvironment(requireDB bool) (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	env := &environment{cfg: cfg, logger: logg}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		if requireDB {
			return nil, err
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
		return env, nil
	}

	env.db = db
	env.logger = logg.With(zap.String("database", cfg.Database.Driver))
	return env, nil
}

// registry builds the barcode registry over the database models.
func (e *environment) registry() (*barcode.Registry, error) {
	if e.db == nil {
		return nil, nil
	}
	return barcode.NewRegistry(part.Descriptors(e.db)...)
}
