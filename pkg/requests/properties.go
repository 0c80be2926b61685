package requests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Properties is implemented by every property variant that can appear in the
// "properties" member of a request body. Class returns the discriminator sent as
// the "class" member on the wire.
type Properties interface {
	Class() string
}

var propertyKinds = map[string]func() Properties{}

func registerProperties(factories ...func() Properties) {
	for _, f := range factories {
		propertyKinds[f().Class()] = f
	}
}

// KnownClasses returns the sorted list of property discriminators this package can decode
func KnownClasses() []string {
	classes := make([]string, 0, len(propertyKinds))
	for class := range propertyKinds {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// ElementProperties holds exactly one property variant and carries its discriminator
// through JSON encoding.
type ElementProperties struct {
	Value Properties
}

// Props wraps a property variant for use in a request body
func Props(p Properties) *ElementProperties {
	if p == nil {
		return nil
	}
	return &ElementProperties{Value: p}
}

// Class returns the discriminator of the wrapped variant, or "" when empty
func (p *ElementProperties) Class() string {
	if p == nil || p.Value == nil {
		return ""
	}
	return p.Value.Class()
}

// MarshalJSON encodes the wrapped variant with its "class" member
func (p ElementProperties) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return []byte("null"), nil
	}
	raw, err := json.Marshal(p.Value)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("properties %s must encode as an object: %w", p.Value.Class(), err)
	}
	class, err := json.Marshal(p.Value.Class())
	if err != nil {
		return nil, err
	}
	fields["class"] = class
	return json.Marshal(fields)
}

// UnmarshalJSON decodes the variant named by the "class" member. Unknown classes and
// members that the variant does not define are rejected.
func (p *ElementProperties) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		p.Value = nil
		return nil
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return &ValidationError{Shape: "properties", Fields: []FieldError{{Path: "/", Message: err.Error()}}}
	}

	var class string
	if raw, ok := fields["class"]; ok {
		if err := json.Unmarshal(raw, &class); err != nil {
			return newValidationError("properties", "/class", "must be a string")
		}
	}
	if class == "" {
		return newValidationError("properties", "/class", "missing property class")
	}

	factory, ok := propertyKinds[class]
	if !ok {
		return newValidationError("properties", "/class", fmt.Sprintf("unknown property class %q", class))
	}
	delete(fields, "class")

	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	value := factory()
	dec := json.NewDecoder(bytes.NewReader(rest))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return newValidationError(class, decodeErrorPath(rest, err), err.Error())
	}
	p.Value = value
	return nil
}

// decodeErrorPath finds the member of the JSON object data that err is about. It
// understands unknown fields, type mismatches and malformed timestamps.
func decodeErrorPath(data []byte, err error) string {
	const marker = "unknown field "
	msg := err.Error()
	if idx := strings.Index(msg, marker); idx >= 0 {
		return "/" + strings.Trim(msg[idx+len(marker):], `"`)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return "/" + strings.ReplaceAll(typeErr.Field, ".", "/")
	}
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		fields := map[string]json.RawMessage{}
		if json.Unmarshal(data, &fields) == nil {
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				var s string
				if json.Unmarshal(fields[name], &s) == nil && s == parseErr.Value {
					return "/" + name
				}
			}
		}
	}
	return "/"
}

// checkClass verifies that the discriminator of props is one of allowed.
// An empty allowed list accepts any class.
func checkClass(props *ElementProperties, allowed []string) error {
	if len(allowed) == 0 || props == nil || props.Value == nil {
		return nil
	}
	class := props.Class()
	for _, a := range allowed {
		if a == class {
			return nil
		}
	}
	return NewInvalidParameterError("properties.class",
		fmt.Sprintf("unexpected property class %s, expected one of %s", class, strings.Join(allowed, ", ")))
}
