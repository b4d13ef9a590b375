// Package hclcall evaluates HCL expressions whose function calls are served
// by a funcs.Registry, e.g. `upper(concat("a", "b"))`.
//
// Call arguments are packed into a *params.Params, or decoded into the
// registered parameter type when the function takes a single plain value.
// Results are converted back to cty values, with non-cty Go values carried
// in the params object capsule.
package hclcall
