// Command debug_catalog loads the configured catalog source once and prints
// every entry as JSON, or a single entry when a key is given.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"artifact-planner/core/artifact"
	"artifact-planner/core/catalog"
	"artifact-planner/core/config"
	"artifact-planner/core/database"
	"artifact-planner/core/planner"
	"artifact-planner/core/storage"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	var db *gorm.DB
	if cfg.Planner.CatalogSource == planner.SourceDatabase {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
	}

	src, err := planner.NewCatalogSource(cfg.Planner, client, cfg.Storage.Bucket, db)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	cat, err := src.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d items from %s in %v\n", cat.Len(), src.Name(), time.Since(start))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if len(os.Args) > 1 {
		entry, ok := cat.Lookup(artifact.Key(os.Args[1]))
		if !ok {
			log.Fatalf("%s: %v", os.Args[1], catalog.ErrUnknownItem)
		}
		_ = enc.Encode(entry)
		return
	}
	_ = enc.Encode(cat.Entries())
}
