package json

import "strconv"

// Reviver transforms each member during parsing. It runs bottom-up:
// deepest members first, containers after their members, and the
// synthetic root (key "") last. Returning Omit drops the member.
type Reviver func(key string, value Value) Value

type omitMarker struct{}

// Omit is the sentinel a Reviver or Replacer returns to drop a member
// from the result.
var Omit Value = omitMarker{}

// Parse decodes text with the host engine and wraps the outcome in a
// Result. Malformed input yields Err carrying the engine's own
// diagnostic; no failure escapes this boundary as a panic, including
// one raised by the reviver itself.
//
// A reviver that drops the root value yields Ok(nil): JSON cannot
// express "absent", so total omission collapses to null.
func Parse(text string, reviver ...Reviver) (res Result[Value]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[Value](caught(r))
		}
	}()

	var root Value
	if err := unmarshal([]byte(text), &root); err != nil {
		return Err[Value](err)
	}

	if len(reviver) > 0 && reviver[0] != nil {
		root = revive("", root, reviver[0])
		if root == Omit {
			return Ok[Value](nil)
		}
	}
	return Ok(root)
}

// revive walks the tree members-first, then hands the holder itself to
// fn. Object members revived to Omit are deleted; array elements revived
// to Omit become null, since an Array has no way to hold a gap.
func revive(key string, v Value, fn Reviver) Value {
	switch node := v.(type) {
	case Object:
		for k, member := range node {
			if r := revive(k, member, fn); r == Omit {
				delete(node, k)
			} else {
				node[k] = r
			}
		}
	case Array:
		for i, member := range node {
			if r := revive(strconv.Itoa(i), member, fn); r == Omit {
				node[i] = nil
			} else {
				node[i] = r
			}
		}
	}
	return fn(key, v)
}
