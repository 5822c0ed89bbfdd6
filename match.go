package json

import "fmt"

// Match builds a dispatcher from one handler per Value variant. The
// returned function classifies its input at runtime and invokes exactly
// one handler, checking null before the other reference kinds so a nil
// value is never handed to the array or object handler. Numbers are
// normalized to float64, the engine's native representation.
//
// Dispatch does not recurse: a handler that wants to process nested
// members calls the dispatcher itself.
//
// The dispatcher panics when given a value outside the JSON domain;
// every engine-decoded tree is inside it.
func Match[T any](
	onNull func() T,
	onBoolean func(bool) T,
	onNumber func(float64) T,
	onString func(string) T,
	onArray func(Array) T,
	onObject func(Object) T,
) func(Value) T {
	return func(v Value) T {
		switch {
		case IsNull(v):
			return onNull()
		case IsBoolean(v):
			return onBoolean(v.(bool))
		case IsString(v):
			return onString(v.(string))
		case IsNumber(v):
			// A json.Number holding unparseable text falls through to
			// the panic below; it is not a well-formed JSON number.
			if n, ok := toFloat64(v); ok {
				return onNumber(n)
			}
		case IsArray(v):
			return onArray(v.(Array))
		case IsObject(v):
			return onObject(v.(Object))
		}
		panic(fmt.Sprintf("json: value of type %T is not a JSON value", v))
	}
}
