// Package config provides configuration management for the artifact planner.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: optional catalog database connection
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Planner: catalog source, backup prefix, default strategy
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Planner.Strategy)
package config
