package output

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column is one output attribute. Key is matched against snake_cased property names,
// header fields and extractor output; Name is the label shown in rendered output.
type Column struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Key  string `yaml:"key" json:"key"`
	// Format marks free text that REPORT output sets in its own paragraph
	Format bool `yaml:"format,omitempty" json:"format,omitempty"`
	// Value is filled in during population and is never read from catalog files
	Value any `yaml:"-" json:"-"`
}

var titleCaser = cases.Title(language.English)

// Label returns Name, or a title-cased label derived from Key
func (c Column) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return titleCaser.String(strings.ReplaceAll(c.Key, "_", " "))
}

// FormatSpec lists the columns used for a group of output formats
type FormatSpec struct {
	Types   []Format `yaml:"types" json:"types"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// checkLabels rejects columns that share a label, since DICT rows are keyed by it
func (s FormatSpec) checkLabels() error {
	seen := make(map[string]string, len(s.Columns))
	for _, c := range s.Columns {
		label := c.Label()
		if other, ok := seen[label]; ok {
			return fmt.Errorf("columns %s and %s share the label %q", other, c.Key, label)
		}
		seen[label] = c.Key
	}
	return nil
}

// Handles reports whether the spec applies to f, either directly or through ALL
func (s FormatSpec) Handles(f Format) bool {
	return slices.Contains(s.Types, f) || slices.Contains(s.Types, ALL)
}

// FormatSet is a named collection of format specs
type FormatSet struct {
	Name        string            `yaml:"-" json:"-"`
	Heading     string            `yaml:"heading,omitempty" json:"heading,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Aliases     []string          `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Formats     []FormatSpec      `yaml:"formats" json:"formats"`
}

// Select returns the spec listing f explicitly, falling back to one listing ALL
func (fs *FormatSet) Select(f Format) (FormatSpec, bool) {
	if fs == nil {
		return FormatSpec{}, false
	}
	for _, spec := range fs.Formats {
		if slices.Contains(spec.Types, f) {
			return cloneSpec(spec), true
		}
	}
	for _, spec := range fs.Formats {
		if slices.Contains(spec.Types, ALL) {
			return cloneSpec(spec), true
		}
	}
	return FormatSpec{}, false
}

// cloneSpec copies the column slice so population never writes into catalog state
func cloneSpec(spec FormatSpec) FormatSpec {
	return FormatSpec{
		Types:   slices.Clone(spec.Types),
		Columns: slices.Clone(spec.Columns),
	}
}

// Keys returns the column keys in order
func (s FormatSpec) Keys() []string {
	keys := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		keys = append(keys, c.Key)
	}
	return keys
}
