// Package checks implements the individual integrity checks: bucket
// structure, catalog consistency and database schema.
package checks
