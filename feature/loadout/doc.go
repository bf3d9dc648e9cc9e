// Package loadout exposes the planner over HTTP.
//
// A client sends a target loadout (the artifacts and stones of a recommended
// set) together with its backup, either inline or as the id of a backup
// stored in the bucket. The service reconstructs the concrete set to wear,
// preferring artifacts the player already has assembled, and returns the plan:
// per-slot assembly status plus keep, equip, assemble and unequip steps.
// When the backup carries a farm snapshot the response also includes the
// set's virtual earnings multiplier under the requested strategy.
//
// # Routes
//
//   - POST /loadout/plan
//   - POST /loadout/earnings
//   - GET  /loadout/strategies
//
// Request content errors map to 400, unknown backup ids to 404, and
// catalog load failures or reconstruction invariant violations to 500.
package loadout
