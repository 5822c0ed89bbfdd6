package json

// Result is a success-or-failure container: exactly one of the value or
// the error is set, decided at construction. The parse and stringify
// adapters return Results instead of letting failures escape as panics,
// so callers branch on IsOk/IsErr rather than recovering.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err returns a failed Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Err returns the held error, or nil for a successful Result.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the held value and error in the conventional Go shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// OrDefault returns the held value, or def for a failed Result.
func (r Result[T]) OrDefault(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// ToMaybe converts r to a Maybe, discarding the error.
func (r Result[T]) ToMaybe() Maybe[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Maybe is an optional value: either Some(v) or None.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some returns a Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsSome reports whether m holds a value.
func (m Maybe[T]) IsSome() bool {
	return m.present
}

// IsNone reports whether m is empty.
func (m Maybe[T]) IsNone() bool {
	return !m.present
}

// Get returns the held value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// OrDefault returns the held value, or def for an empty Maybe.
func (m Maybe[T]) OrDefault(def T) T {
	if m.present {
		return m.value
	}
	return def
}
