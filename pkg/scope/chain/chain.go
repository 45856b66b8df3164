package chain

import (
	"github.com/ib-77/scope3/pkg/scope"
)

// Chain carries a value between fluent steps. It holds nothing but the value
// itself.
type Chain[T any] struct {
	value T
}

// Of wraps a value into a Chain.
func Of[T any](v T) Chain[T] {
	return Chain[T]{value: v}
}

// Value returns the carried value.
func (c Chain[T]) Value() T {
	return c.value
}

// Then mutates a copy of the carried value and carries the copy forward.
func (c Chain[T]) Then(mutate scope.Mutator[T]) Chain[T] {
	return Chain[T]{value: scope.Then(c.value, mutate)}
}

// Tap invokes inspect with the carried value and carries it on unchanged.
func (c Chain[T]) Tap(inspect scope.Inspector[T]) Chain[T] {
	return Chain[T]{value: scope.Tap(c.value, inspect)}
}

// Debug emits the carried value through the debug sink and carries it on
// unchanged.
func (c Chain[T]) Debug(opts ...scope.Option) Chain[T] {
	return Chain[T]{value: scope.Debug(c.value, opts...)}
}

// Map transforms the carried value without changing its type.
func (c Chain[T]) Map(transform scope.Transform[T, T]) Chain[T] {
	return Chain[T]{value: scope.Let(c.value, transform)}
}

// Let transforms the carried value into a chain of a different type.
func Let[T, R any](c Chain[T], transform scope.Transform[T, R]) Chain[R] {
	return Chain[R]{value: scope.Let(c.value, transform)}
}

// WithLet configures a copy of the carried value and wraps whatever produce
// yields from it.
func WithLet[T, R any](c Chain[T], produce func(*T) R) Chain[R] {
	return Chain[R]{value: scope.WithLet(c.value, produce)}
}
