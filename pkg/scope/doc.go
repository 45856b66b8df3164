// Package scope provides generic scope-function helpers for chaining
// configuration and transformation steps on arbitrary values.
//
// Highlights:
// - Then/Apply: mutate a copy vs. mutate through the same pointer
// - Mutate: adjust a value in place through a mutable binding
// - Let/Tap: transform a value, or observe it without replacing it
// - With/WithLet/Run: configure a copy, derive a result from a copy, or
//   evaluate a block immediately
// - Debug: format a value, emit one line through a pluggable sink and pass
//   the value on unchanged
// - ThenTry/LetTry/...: variants whose supplied function can fail; the error
//   comes back to the caller unchanged
//
// Every helper is a single synchronous call on the caller's goroutine. The
// library keeps no state of its own; the only effects are those performed by
// the caller-supplied functions.
package scope
