// Package jsonutil holds small helpers for working with generic JSON values.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// Slim encodes v as JSON with every null object member removed, recursively.
// A nil v encodes to nil.
func Slim(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	generic, err := Generic(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(PruneNulls(generic))
}

// Generic round-trips v through JSON into maps, slices and json.Number values
func Generic(v any) (any, error) {
	raw, ok := v.([]byte)
	if !ok {
		if rm, isRaw := v.(json.RawMessage); isRaw {
			raw = rm
		} else {
			var err error
			raw, err = json.Marshal(v)
			if err != nil {
				return nil, err
			}
		}
	}
	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return generic, nil
}

// PruneNulls removes null members from objects, recursing into objects and arrays.
// Null array entries are kept so positions stay stable.
func PruneNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if val == nil {
				delete(t, k)
				continue
			}
			t[k] = PruneNulls(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = PruneNulls(val)
		}
		return t
	default:
		return v
	}
}

// CamelToSnake converts a camelCase property name to snake_case.
// Runs of capitals are treated as one word: "externalSourceGUID" becomes
// "external_source_guid".
func CamelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeToCamel converts a snake_case key to lowerCamelCase
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		runes := []rune(p)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
