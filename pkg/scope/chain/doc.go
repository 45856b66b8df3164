// Package chain provides a fluent wrapper around a single value for
// dot-chained use of the scope helpers.
//
// Key operations:
// - Of/Value: wrap and unwrap a value
// - Then: mutate a copy of the carried value and carry the copy forward
// - Tap/Debug: side effects that leave the carried value unchanged
// - Map: same-type transformation of the carried value
// - Let/WithLet: package-level, type-changing steps
//
// The wrapper stores only the value; every method forwards to the free
// functions in package scope and adds no behavior of its own. Type-changing
// steps are package-level because Go methods cannot introduce new type
// parameters.
package chain
