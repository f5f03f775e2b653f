// Package casing converts the key casing of decoded JSON values between the
// wire convention used by the Payloop API (lowercase words joined by
// underscores) and the public convention used by this module's types
// (lowerCamelCase).
//
// The conversion is purely syntactic. It walks keys only, never values, and
// it knows nothing about which keys exist in the API: any key that matches
// the wire convention is rewritten, everything else passes through untouched.
package casing

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CamelizeKeys returns v with every map key that matches the wire convention
// rewritten to lowerCamelCase. Maps and slices are walked recursively; every
// other value is returned as is. The input is not modified.
//
// The walk is total and idempotent: it cannot fail, it neither drops nor
// invents keys, and a rewritten key no longer matches the wire convention,
// so applying the conversion twice yields the same result as applying it
// once.
func CamelizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[camelKey(k)] = CamelizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CamelizeKeys(val)
		}
		return out
	default:
		return v
	}
}

// DecodeCamel unmarshals JSON whose keys may use the wire convention into v,
// whose field tags use the public convention. The payload is decoded into
// untyped values, camelized, re-encoded, and decoded again into v, so typing
// is applied after key conversion, at the boundary where the destination
// type is known.
func DecodeCamel(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	buf, err := json.Marshal(CamelizeKeys(raw))
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, v)
}

// camelKey rewrites a single wire-convention key to lowerCamelCase. Keys
// that do not match the convention exactly (uppercase anywhere, empty or
// doubled words, leading or trailing underscores) are returned unchanged, as
// are keys that contain no underscore at all.
func camelKey(k string) string {
	if !isWireKey(k) || !strings.Contains(k, "_") {
		return k
	}

	var b strings.Builder
	b.Grow(len(k))
	up := false
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c == '_':
			up = true
		case up && c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
			up = false
		default:
			b.WriteByte(c)
			up = false
		}
	}
	return b.String()
}

// isWireKey reports whether k consists of lowercase alphanumeric words
// joined by single underscores.
func isWireKey(k string) bool {
	if k == "" || k[0] == '_' || k[len(k)-1] == '_' {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_':
			if k[i-1] == '_' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
