package scope

// Transform converts a value of type T into a value of type R.
type Transform[T, R any] func(T) R

// Mutator adjusts a value of type T through a pointer to it.
type Mutator[T any] func(*T)

// Inspector observes a value of type T without replacing it.
type Inspector[T any] func(T)

// Sink consumes one formatted debug line.
type Sink func(line string)
