package cmd

import (
	"fmt"

	"artifact-planner/core/catalog"
	"artifact-planner/core/config"
	"artifact-planner/core/database"
	"artifact-planner/core/planner"
	"artifact-planner/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// connectDatabase opens the optional database. Failures are logged and
// yield a nil connection.
func connectDatabase(cfg *config.Config, l *zap.Logger) *gorm.DB {
	if !cfg.Database.Enabled {
		return nil
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	l.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
	return db
}

// newCatalogCache builds the configured catalog source behind a TTL cache.
func newCatalogCache(cfg *config.Config, client storage.Client, db *gorm.DB, l *zap.Logger) (*catalog.Cache, error) {
	src, err := planner.NewCatalogSource(cfg.Planner, client, cfg.Storage.Bucket, db)
	if err != nil {
		return nil, fmt.Errorf("failed to configure catalog source: %w", err)
	}
	l.Info("Catalog source configured",
		zap.String("source", src.Name()),
		zap.Duration("ttl", cfg.Planner.CatalogTTL()))
	return catalog.NewCache(src, cfg.Planner.CatalogTTL()), nil
}
