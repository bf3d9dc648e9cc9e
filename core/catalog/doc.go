// Package catalog resolves item keys into the attributes the planner needs.
//
// The catalog is the planner's only source of item data: sockets, crafting
// prices and quality for the reconcile engine, and per-item effects for the
// earnings model (see package effects).
//
// # Sources
//
// A catalog can be loaded from:
//   - Storage: a JSON document in the configured bucket (StorageSource)
//   - Database: the artifact_catalog table (DBSource)
//   - Any reader holding the JSON document (Decode), used by the CLI
//
// # Caching
//
// Cache wraps a Source with a TTL and singleflight stampede protection so
// that concurrent requests share a single load.
//
//	cache := catalog.NewCache(&catalog.StorageSource{Client: client, Bucket: "planner", Object: "catalog/artifacts.json"}, 5*time.Minute)
//	cat, err := cache.Get(ctx)
//	item, err := cat.Item("LIGHT_OF_EGGENDIL_T4_LEGENDARY", catalog.KindArtifact)
package catalog
