package json

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// MaxIndent caps pretty-printing indentation: indent strings are
// truncated to this many characters and space counts clamped to it.
const MaxIndent = 10

// Replacer transforms each member during serialization. It runs
// top-down: the synthetic root (key "") first, containers before their
// members. Returning Omit drops the member.
type Replacer func(key string, value Value) Value

// StringifyOptions controls member filtering and indentation.
type StringifyOptions struct {
	// Replacer, when set, is applied to every member. Omit drops the
	// member.
	Replacer Replacer

	// Whitelist, when set, restricts which object members are kept, at
	// every depth. Arrays are unaffected. When Replacer is also set, the
	// whitelist filters first and the replacer sees the survivors.
	Whitelist []string

	// Indent is the per-level indentation string, truncated to
	// MaxIndent characters. Takes precedence over IndentCount.
	Indent string

	// IndentCount is a count of space characters, clamped to
	// [0, MaxIndent]. Zero means compact output.
	IndentCount int
}

// NewPrettyOptions returns options for two-space indented output.
func NewPrettyOptions() *StringifyOptions {
	return &StringifyOptions{IndentCount: 2}
}

// Stringify serializes value with the host engine and wraps the outcome
// in a Result. A failure raised during serialization is returned as Err:
// error values are forwarded unchanged, any other raised value is
// normalized into a *CaughtError.
//
// A filter that drops the root value yields Ok("null") rather than an
// absent result, so every Ok result is valid, re-parseable JSON.
func Stringify(value Value, opts ...*StringifyOptions) (res Result[string]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[string](caught(r))
		}
	}()

	var o StringifyOptions
	if len(opts) > 0 && opts[0] != nil {
		o = *opts[0]
	}

	if o.Replacer != nil || o.Whitelist != nil {
		value = filterValue("", value, &o)
		if value == Omit {
			return Ok("null")
		}
	}

	out, err := marshal(value)
	if err != nil {
		return Err[string](err)
	}
	if indent := o.indent(); indent != "" {
		// The engine's own indenting only accepts space characters, so
		// re-indent the compact output instead; this keeps arbitrary
		// indent strings like tabs working.
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", indent); err != nil {
			return Err[string](err)
		}
		out = buf.Bytes()
	}
	return Ok(string(out))
}

// indent resolves the effective indentation string.
func (o *StringifyOptions) indent() string {
	if o.Indent != "" {
		return truncateIndent(o.Indent)
	}
	n := o.IndentCount
	if n <= 0 {
		return ""
	}
	if n > MaxIndent {
		n = MaxIndent
	}
	return strings.Repeat(" ", n)
}

// truncateIndent limits s to MaxIndent characters, cutting on rune
// boundaries so a multi-byte rune is never split.
func truncateIndent(s string) string {
	if len(s) <= MaxIndent {
		return s
	}
	count := 0
	for i := range s {
		if count == MaxIndent {
			return s[:i]
		}
		count++
	}
	return s
}

// filterValue applies the whitelist and replacer top-down, copying every
// container it keeps so the caller's tree is never mutated. Dropped
// array elements become null; an Array has no way to hold a gap.
func filterValue(key string, v Value, o *StringifyOptions) Value {
	if o.Replacer != nil {
		v = o.Replacer(key, v)
		if v == Omit {
			return Omit
		}
	}

	switch node := v.(type) {
	case Object:
		kept := make(Object, len(node))
		for k, member := range node {
			if !o.allows(k) {
				continue
			}
			if r := filterValue(k, member, o); r != Omit {
				kept[k] = r
			}
		}
		return kept
	case Array:
		kept := make(Array, len(node))
		for i, member := range node {
			if r := filterValue(strconv.Itoa(i), member, o); r != Omit {
				kept[i] = r
			}
		}
		return kept
	}
	return v
}

func (o *StringifyOptions) allows(key string) bool {
	if o.Whitelist == nil {
		return true
	}
	for _, k := range o.Whitelist {
		if k == key {
			return true
		}
	}
	return false
}
