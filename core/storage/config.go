package storage

import "time"

// Config holds configuration for the object store holding catalogs and backups.
type Config struct {
	// Endpoint is the host (and optional scheme) of the storage service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the catalog document and player backups.
	Bucket string `mapstructure:"bucket" default:"planner"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the connection timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
