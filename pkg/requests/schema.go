package requests

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stacklok/egeria-client-go/internal/jsonutil"
)

const schemaBaseURL = "https://schemas.egeria-client-go.local/requests/"

// Schema file names, one per request shape
const (
	schemaNewElement         = "new-element.json"
	schemaUpdateElement      = "update-element.json"
	schemaDelete             = "delete.json"
	schemaNewRelationship    = "new-relationship.json"
	schemaUpdateRelationship = "update-relationship.json"
	schemaNewClassification  = "new-classification.json"
	schemaFilter             = "filter.json"
	schemaSearchString       = "search-string.json"
	schemaResults            = "results.json"
	schemaGet                = "get.json"
	schemaProperties         = "properties.json"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemasOnce sync.Once
	schemas     map[string]*jsonschema.Schema
	schemasErr  error
)

func compiledSchemas() (map[string]*jsonschema.Schema, error) {
	schemasOnce.Do(func() {
		schemas, schemasErr = compileSchemas()
	})
	return schemas, schemasErr
}

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schemas: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", entry.Name(), err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", entry.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), doc); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", entry.Name(), err)
		}
		names = append(names, entry.Name())
	}

	compiled := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		sch, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		compiled[name] = sch
	}
	return compiled, nil
}

// validateAgainst checks a raw JSON body against the named schema. Null members are
// removed first, matching what is eventually sent on the wire.
func validateAgainst(schemaName, shape string, data []byte) ([]byte, error) {
	all, err := compiledSchemas()
	if err != nil {
		return nil, err
	}
	sch, ok := all[schemaName]
	if !ok {
		return nil, fmt.Errorf("no schema registered for %s", schemaName)
	}

	slim, err := jsonutil.Slim(data)
	if err != nil {
		return nil, newValidationError(shape, "/", fmt.Sprintf("body is not valid JSON: %v", err))
	}
	if slim == nil {
		slim = []byte("null")
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(slim))
	if err != nil {
		return nil, newValidationError(shape, "/", fmt.Sprintf("body is not valid JSON: %v", err))
	}

	if err := sch.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, toValidationError(shape, ve)
		}
		return nil, fmt.Errorf("schema validation of %s failed: %w", shape, err)
	}
	return slim, nil
}

var printer = message.NewPrinter(language.English)

// toValidationError flattens the leaf causes of a schema failure into field errors
func toValidationError(shape string, ve *jsonschema.ValidationError) *ValidationError {
	var fields []FieldError
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			fields = append(fields, leafFieldErrors(e)...)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Path < fields[j].Path })
	return &ValidationError{Shape: shape, Fields: fields}
}

// leafFieldErrors reports missing and unexpected members against the member itself
// rather than the enclosing object.
func leafFieldErrors(e *jsonschema.ValidationError) []FieldError {
	base := "/" + strings.Join(e.InstanceLocation, "/")
	msg := e.ErrorKind.LocalizedString(printer)

	var names []string
	switch k := e.ErrorKind.(type) {
	case *kind.Required:
		names = k.Missing
	case *kind.AdditionalProperties:
		names = k.Properties
	}
	if len(names) == 0 {
		return []FieldError{{Path: base, Message: msg}}
	}

	out := make([]FieldError, 0, len(names))
	for _, name := range names {
		out = append(out, FieldError{Path: path.Join(base, name), Message: msg})
	}
	return out
}
