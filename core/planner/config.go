// Package planner holds the planner's runtime settings and wires them to a
// catalog source.
package planner

import (
	"errors"
	"fmt"
	"time"

	"artifact-planner/core/catalog"
	"artifact-planner/core/earnings"
	"artifact-planner/core/storage"

	"gorm.io/gorm"
)

const (
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// ErrDatabaseUnavailable is returned when the database catalog source is
// selected without a connection.
var ErrDatabaseUnavailable = errors.New("database catalog source selected but no database connection")

// Config holds the planner settings.
type Config struct {
	// Strategy is the prestige strategy used when a request names none.
	Strategy string `mapstructure:"strategy" default:"pro-permit-single-preload"`
	// AwayEarnings multiplies away earnings for the lunar strategy.
	AwayEarnings float64 `mapstructure:"away_earnings" default:"1"`
	// CatalogSource selects where the catalog is loaded from (storage, database).
	CatalogSource string `mapstructure:"catalog_source" default:"storage"`
	// CatalogObject is the catalog document inside the storage bucket.
	CatalogObject string `mapstructure:"catalog_object" default:"catalog/artifacts.json"`
	// BackupPrefix is prepended to backup ids to form storage object names.
	BackupPrefix string `mapstructure:"backup_prefix" default:"backups/"`
	// CatalogTTLSeconds is how long a loaded catalog is reused. Zero disables caching.
	CatalogTTLSeconds int `mapstructure:"catalog_ttl_seconds" default:"300"`
}

// CatalogTTL returns CatalogTTLSeconds as a duration.
func (c Config) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLSeconds) * time.Second
}

// DefaultStrategy parses Strategy.
func (c Config) DefaultStrategy() (earnings.Strategy, error) {
	return earnings.ParseStrategy(c.Strategy)
}

// Modifiers returns the configured earnings modifiers.
func (c Config) Modifiers() earnings.Modifiers {
	return earnings.NewModifiers(c.AwayEarnings)
}

// BackupObject returns the storage object name of a backup id.
func (c Config) BackupObject(id string) string {
	return c.BackupPrefix + id + ".json"
}

// NewCatalogSource builds the configured catalog source. db may be nil when
// the storage source is selected.
func NewCatalogSource(cfg Config, client storage.Client, bucket string, db *gorm.DB) (catalog.Source, error) {
	switch cfg.CatalogSource {
	case "", SourceStorage:
		return &catalog.StorageSource{Client: client, Bucket: bucket, Object: cfg.CatalogObject}, nil
	case SourceDatabase:
		if db == nil {
			return nil, ErrDatabaseUnavailable
		}
		return &catalog.DBSource{DB: db, VerifySchema: true}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}
