package json

import "encoding/json"

// Value is any JSON-representable value: nil, a boolean, a number, a
// string, an Array, or an Object. It is a type alias, so trees decoded
// by the engine are Values without conversion.
type Value = any

// Array is an ordered list of Values.
type Array = []Value

// Object is a string-keyed mapping of Values.
type Object = map[string]Value

// Kind identifies which variant of the Value domain a value belongs to.
type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"

	// KindInvalid marks values outside the JSON domain.
	KindInvalid Kind = "invalid"
)

// KindOf classifies v into its Value variant. Null is checked first so a
// nil value is never mistaken for an empty Object or Array.
func KindOf(v Value) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case string:
		return KindString
	case Array:
		return KindArray
	case Object:
		return KindObject
	}
	if isNumeric(v) {
		return KindNumber
	}
	return KindInvalid
}

// IsNull reports whether v is the JSON null value.
func IsNull(v Value) bool {
	return v == nil
}

// IsBoolean reports whether v is a JSON boolean.
func IsBoolean(v Value) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber reports whether v is a JSON number. All Go numeric kinds plus
// json.Number are accepted, so hand-built trees classify the same way as
// engine-decoded ones (which only ever hold float64).
func IsNumber(v Value) bool {
	return isNumeric(v)
}

// IsString reports whether v is a JSON string.
func IsString(v Value) bool {
	_, ok := v.(string)
	return ok
}

// IsArray reports whether v is a JSON array. Arrays and objects are both
// reference kinds; only an Array qualifies here.
func IsArray(v Value) bool {
	_, ok := v.(Array)
	return ok
}

// IsObject reports whether v is a JSON object, excluding nil and arrays.
func IsObject(v Value) bool {
	_, ok := v.(Object)
	return ok
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// toFloat64 normalizes any numeric Value to float64, the engine's native
// number representation.
func toFloat64(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
