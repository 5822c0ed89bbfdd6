package json

import jsoniter "github.com/json-iterator/go"

// engine is the host JSON engine every adapter in this package delegates
// to. The standard-library-compatible config keeps encoding/json
// semantics: numbers decode to float64 and object keys sort on output.
var engine = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	marshal   = engine.Marshal
	unmarshal = engine.Unmarshal
)

// Valid reports whether text is syntactically valid JSON. Validity is
// decided by the engine's decode path, so bare top-level scalars like
// "3" or "7.2" validate exactly when Parse accepts them.
func Valid(text string) bool {
	var v Value
	return unmarshal([]byte(text), &v) == nil
}
