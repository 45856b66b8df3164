package scope

// Then makes a copy of v, lets mutate adjust the copy and returns it.
// The original value is left untouched.
func Then[T any](v T, mutate Mutator[T]) T {
	mutate(&v)
	return v
}

// Apply lets mutate adjust the value behind v and returns the same pointer
// for further chaining.
func Apply[T any](v *T, mutate Mutator[T]) *T {
	mutate(v)
	return v
}

// Mutate adjusts v in place through the pointer.
func Mutate[T any](v *T, mutate Mutator[T]) {
	mutate(v)
}

// Let transforms v into a value of a possibly different type.
func Let[T, R any](v T, transform Transform[T, R]) R {
	return transform(v)
}

// Tap invokes inspect with v for its side effects and returns v unchanged.
func Tap[T any](v T, inspect Inspector[T]) T {
	inspect(v)
	return v
}

// With configures a copy of v and returns the copy.
func With[T any](v T, configure Mutator[T]) T {
	configure(&v)
	return v
}

// WithLet configures a copy of v and returns whatever produce yields from it.
func WithLet[T, R any](v T, produce func(*T) R) R {
	return produce(&v)
}

// Run evaluates compute immediately and returns its result.
func Run[R any](compute func() R) R {
	return compute()
}

// ThenTry is Then for mutations that can fail. The copy is returned in
// whatever state mutate left it, together with mutate's error unchanged.
func ThenTry[T any](v T, mutate func(*T) error) (T, error) {
	err := mutate(&v)
	return v, err
}

// LetTry is Let for transformations that can fail.
func LetTry[T, R any](v T, transform func(T) (R, error)) (R, error) {
	return transform(v)
}

// TapTry is Tap for inspectors that can fail. It returns v together with
// inspect's error unchanged.
func TapTry[T any](v T, inspect func(T) error) (T, error) {
	return v, inspect(v)
}

// WithTry is With for configurators that can fail.
func WithTry[T any](v T, configure func(*T) error) (T, error) {
	err := configure(&v)
	return v, err
}

// WithLetTry is WithLet for producers that can fail.
func WithLetTry[T, R any](v T, produce func(*T) (R, error)) (R, error) {
	return produce(&v)
}

// RunTry is Run for computations that can fail.
func RunTry[R any](compute func() (R, error)) (R, error) {
	return compute()
}
