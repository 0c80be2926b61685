package output

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Element is one metadata element exactly as the platform returned it. The raw
// bytes are never re-encoded, so JSON output is identical to the response.
type Element struct {
	raw json.RawMessage
}

// NewElement wraps raw JSON. raw must be a JSON object.
func NewElement(raw []byte) (Element, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return Element{}, errors.New("element must be a JSON object")
	}
	return Element{raw: bytes.Clone(raw)}, nil
}

// ElementsFrom converts a gjson array (or single object) into elements,
// skipping members that are not objects
func ElementsFrom(result gjson.Result) []Element {
	if result.IsObject() {
		return []Element{{raw: json.RawMessage(result.Raw)}}
	}
	if !result.IsArray() {
		return nil
	}
	var out []Element
	result.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			out = append(out, Element{raw: json.RawMessage(value.Raw)})
		}
		return true
	})
	return out
}

// Raw returns the element bytes
func (e Element) Raw() json.RawMessage {
	return e.raw
}

// MarshalJSON returns the raw bytes unchanged
func (e Element) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}
	return e.raw, nil
}

// UnmarshalJSON keeps a copy of data
func (e *Element) UnmarshalJSON(data []byte) error {
	e.raw = bytes.Clone(data)
	return nil
}

// Get looks up a gjson path on the element
func (e Element) Get(path string) gjson.Result {
	return gjson.GetBytes(e.raw, path)
}

// GUID returns elementHeader.guid
func (e Element) GUID() string {
	return e.Get("elementHeader.guid").String()
}

// TypeName returns elementHeader.type.typeName
func (e Element) TypeName() string {
	return e.Get("elementHeader.type.typeName").String()
}

// Status returns elementHeader.status
func (e Element) Status() string {
	return e.Get("elementHeader.status").String()
}

// QualifiedName returns properties.qualifiedName
func (e Element) QualifiedName() string {
	return e.Get("properties.qualifiedName").String()
}

// DisplayName returns the first of properties.displayName or properties.name
func (e Element) DisplayName() string {
	if v := e.Get("properties.displayName"); v.Exists() {
		return v.String()
	}
	return e.Get("properties.name").String()
}

// Mermaid returns the mermaidGraph the platform attached to the element, if any
func (e Element) Mermaid() string {
	return e.Get("mermaidGraph").String()
}

// Properties returns the properties object as a map. Missing properties give an empty map.
func (e Element) Properties() map[string]any {
	props := e.Get("properties")
	out := map[string]any{}
	if !props.IsObject() {
		return out
	}
	props.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value.Value()
		return true
	})
	return out
}

// propertyKeys returns the property names in document order
func (e Element) propertyKeys() []string {
	var keys []string
	e.Get("properties").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Classifications returns the names of the classifications on the element: the
// elementHeader.classifications list plus any summary classification objects
// carried directly on the header (for example elementHeader.anchor)
func (e Element) Classifications() []string {
	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	e.Get("elementHeader.classifications").ForEach(func(_, c gjson.Result) bool {
		add(c.Get("classificationName").String())
		return true
	})
	e.Get("elementHeader").ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			add(v.Get("classificationName").String())
		}
		return true
	})
	return names
}
