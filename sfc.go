// Package sfc reconciles the gap between the parameter names a grading
// harness expects third-party code to use and the names the code actually
// declares, then drives the call. Most applications interact with this
// package by:
//  1. Declaring a caller with Function, Method or Maker (or, for full
//     control, a caller.Definition passed to the caller package directly)
//  2. Invoking it with keyword arguments under the expected names
//  3. Observing the result, the propagated failure, or (for makers) the
//     Uninstantiated placeholder
//
// The façade delegates matching to the calibrate package and dispatch to the
// caller package while keeping the common case concise. Matching never fails:
// the engine produces a best-effort correspondence, not a guaranteed one.
package sfc

import (
	"github.com/unfamiliarplace/sfc/caller"
)

// Function returns a caller for the free function fn. params names fn's
// formal parameters in positional order; required lists the canonical names
// callers will supply keywords under. Optional canonical names with defaults
// follow.
func Function(name string, fn any, params, required []string, possible ...caller.Optional) (*caller.FunctionCaller, error) {
	return caller.NewFunction(caller.Definition{
		Name:     name,
		Target:   fn,
		Params:   params,
		Required: required,
		Possible: possible,
	})
}

// Method returns a caller for the method expression fn (for example
// Location.Equal). params names the non-receiver parameters; the bound
// instance is passed to Call explicitly.
func Method(name string, fn any, params, required []string, possible ...caller.Optional) (*caller.MethodCaller, error) {
	return caller.NewMethod(caller.Definition{
		Name:     name,
		Target:   fn,
		Params:   params,
		Required: required,
		Possible: possible,
	})
}

// Maker returns a maker for the struct type target, given as a value, a
// pointer or a reflect.Type. The type's exported field names are introspected;
// no parameter name list is needed.
func Maker(name string, target any, required []string, possible ...caller.Optional) (*caller.ObjectMaker, error) {
	return caller.NewMaker(caller.Definition{
		Name:     name,
		Target:   target,
		Required: required,
		Possible: possible,
	})
}
