// Package loader registers HTTP features on the fiber app.
//
// A feature reports its Name, whether it IsEnabled, and mounts its routes in
// Load. Manager.LoadAll loads enabled features in registration order and
// stops at the first failure:
//
//	mgr := loader.NewManager()
//	mgr.Register(loadout.NewFeature(...))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
