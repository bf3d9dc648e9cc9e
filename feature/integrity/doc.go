// Package integrity provides health checks for the planner's data sources.
//
// # Checks Provided
//
//   - Structure: the catalog and backup folders exist in the storage bucket.
//   - Catalog: the catalog loads and every entry is usable (kind, slots).
//   - Server: the artifact_catalog table has every column the database source maps.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/catalog : Runs catalog check.
//   - POST /integrity/catalog/refresh : Reloads the catalog cache, then checks it.
//   - GET /integrity/server : Runs server schema check.
package integrity
