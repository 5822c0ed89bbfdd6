// Package json is a typed layer over a standard JSON engine that never
// panics across its boundary: parse and stringify report their outcome
// through an explicit Result value, and arbitrary decoded values are
// consumed through runtime-checked variant predicates or a per-variant
// pattern matcher.
//
// The package does not implement a JSON grammar of its own. All text
// handling is delegated to the engine; this layer owns only the value
// model, the error normalization at the adapter boundary, and dispatch.
//
// # Basic Usage
//
// Parsing and serializing:
//
//	res := json.Parse(`{"user":{"name":"John"}}`)
//	if res.IsOk() {
//		value, _ := res.Unwrap()
//		// ...
//	}
//
//	text := json.Stringify(value).OrDefault("null")
//
// Filtering and pretty-printing:
//
//	json.Stringify(value, &json.StringifyOptions{
//		Whitelist:   []string{"name", "age"},
//		IndentCount: 2,
//	})
//
// Per-variant dispatch:
//
//	describe := json.Match(
//		func() string { return "null" },
//		func(b bool) string { return "boolean" },
//		func(n float64) string { return "number" },
//		func(s string) string { return "string" },
//		func(a json.Array) string { return "array" },
//		func(o json.Object) string { return "object" },
//	)
//	kind := describe(value)
//
// # File Organization
//
//   - types.go: Value, Array, Object, Kind, and the variant predicates
//   - result.go: the Result and Maybe containers
//   - parse.go: the parse adapter and Reviver support
//   - stringify.go: the stringify adapter, StringifyOptions, Replacer
//   - match.go: the pattern matcher
//   - errors.go: CaughtError and panic normalization
//   - engine.go: the host engine binding
package json
