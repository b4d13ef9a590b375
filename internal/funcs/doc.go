// Package funcs provides a registry of named functions.
//
// Functions are registered under a string name in one of four shapes (no
// parameter and no result, parameter only, result only, parameter and
// result) and invoked later by that name. Each shape lives in its own table,
// so the same name can be registered once per shape without collisions.
//
// Invoking a name that is not registered in the matching table fails with
// ErrFunctionNotFound. Parameters and results cross the registry as `any`
// and are checked against the registered Go types; a mismatch is reported as
// a *TypeError instead of a runtime panic.
package funcs
