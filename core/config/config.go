package config

import (
	"fmt"
	"reflect"
	"strings"

	"artifact-planner/core/database"
	"artifact-planner/core/logger"
	"artifact-planner/core/planner"
	"artifact-planner/core/server"
	"artifact-planner/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Planner holds the catalog, backup and scoring settings.
	Planner planner.Config `mapstructure:"planner"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PLANNER_STRATEGY -> planner.strategy)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports settings that would otherwise only fail on the first
// request.
func (c *Config) Validate() error {
	if _, err := c.Planner.DefaultStrategy(); err != nil {
		return fmt.Errorf("planner.strategy: %w", err)
	}
	switch c.Planner.CatalogSource {
	case "", planner.SourceStorage:
	case planner.SourceDatabase:
		if !c.Database.Enabled {
			return fmt.Errorf("planner.catalog_source: %w", planner.ErrDatabaseUnavailable)
		}
	default:
		return fmt.Errorf("planner.catalog_source: unknown source %q", c.Planner.CatalogSource)
	}
	if c.Planner.CatalogTTLSeconds < 0 {
		return fmt.Errorf("planner.catalog_ttl_seconds: must not be negative, got %d", c.Planner.CatalogTTLSeconds)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
