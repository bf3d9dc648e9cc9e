// Package database handles the optional database connection and schema inspection.
//
// It wraps GORM to configure MySQL (or SQLite, for local runs and tests)
// connections from the application's configuration.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let callers verify that a table carries
// the columns a model expects before querying it. The catalog database
// source uses them to fail fast on a stale artifact_catalog schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "artifact_catalog", []string{"item_key", "slots"})
package database
