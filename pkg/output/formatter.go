// Package output turns metadata elements returned by the Egeria platform into
// presentation shapes: the raw JSON, flat dictionaries, markdown tables, forms and
// reports, and Mermaid graphs. Which fields appear is driven by a catalog of named
// format sets.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Options selects the columns used for rendering. FormatSet wins over FormatSetName,
// which wins over the set named after the entity type.
type Options struct {
	Format        Format
	FormatSetName string
	FormatSet     *FormatSet
}

// Rendered is the output of one Generate call. Which field is set depends on Format:
// Elements for JSON, Rows for DICT, Text for everything else.
type Rendered struct {
	Format   Format
	Heading  string
	Elements []Element
	Rows     []map[string]any
	Text     string
}

// Value returns the field that carries the output for the format
func (r Rendered) Value() any {
	switch r.Format {
	case JSON:
		return r.Elements
	case DICT:
		return r.Rows
	default:
		return r.Text
	}
}

// String returns text output as-is and structured output as indented JSON
func (r Rendered) String() string {
	if r.Format.IsText() {
		return r.Text
	}
	data, err := json.MarshalIndent(r.Value(), "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", r.Value())
	}
	return string(data)
}

// Formatter renders elements using a format catalog and an extractor registry
type Formatter struct {
	catalog  func() *Catalog
	registry *Registry
	fetcher  Fetcher
	now      func() time.Time
}

// FormatterOption configures a Formatter
type FormatterOption func(*Formatter)

// WithCatalog renders with a fixed catalog
func WithCatalog(c *Catalog) FormatterOption {
	return func(f *Formatter) {
		f.catalog = func() *Catalog { return c }
	}
}

// WithCatalogManager renders with whatever catalog the manager currently holds
func WithCatalogManager(cm *CatalogManager) FormatterOption {
	return func(f *Formatter) {
		f.catalog = cm.Catalog
	}
}

// WithRegistry sets the extractor registry
func WithRegistry(r *Registry) FormatterOption {
	return func(f *Formatter) {
		f.registry = r
	}
}

// WithFetcher sets the fetcher handed to additional-property extractors
func WithFetcher(fetcher Fetcher) FormatterOption {
	return func(f *Formatter) {
		f.fetcher = fetcher
	}
}

// WithClock sets the clock used for REPORT timestamps
func WithClock(now func() time.Time) FormatterOption {
	return func(f *Formatter) {
		f.now = now
	}
}

// NewFormatter creates a Formatter. Without options it uses the embedded catalog, an
// empty registry, and a fetcher that fails every lookup with ErrNoFetcher.
func NewFormatter(opts ...FormatterOption) (*Formatter, error) {
	f := &Formatter{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	if f.catalog == nil {
		c, err := DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load default catalog: %w", err)
		}
		f.catalog = func() *Catalog { return c }
	}
	if f.registry == nil {
		f.registry = NewRegistry()
	}
	if f.fetcher == nil {
		f.fetcher = noFetcher{}
	}
	return f, nil
}

// Registry returns the extractor registry, so managers can register their extractors
func (f *Formatter) Registry() *Registry {
	return f.registry
}

// Generate renders elements of typeName. JSON output returns the elements unchanged;
// an empty Format means JSON.
func (f *Formatter) Generate(ctx context.Context, typeName string, elements []Element, opts Options) (Rendered, error) {
	format := opts.Format
	if format == "" {
		format = JSON
	}
	if format == ALL {
		return Rendered{}, fmt.Errorf("%s is not an output format", ALL)
	}
	if format == JSON {
		return Rendered{Format: JSON, Heading: typeName, Elements: elements}, nil
	}

	spec, set, err := f.catalog().Resolve(typeName, format, opts)
	if err != nil {
		return Rendered{}, err
	}

	var additional AdditionalFunc
	if e, ok := f.registry.Lookup(typeName); ok {
		additional = e.Additional
	}

	rows := make([]row, 0, len(elements))
	for _, el := range elements {
		columns, err := populateColumns(ctx, el, spec.Columns, additional, f.fetcher)
		if err != nil {
			return Rendered{}, err
		}
		rows = append(rows, row{element: el, columns: columns})
	}

	heading := set.Heading
	if heading == "" {
		heading = typeName
	}
	out := Rendered{Format: format, Heading: heading, Elements: elements}

	switch format {
	case DICT:
		out.Rows = renderDict(rows)
	case LIST:
		out.Text, err = renderList(rows, spec)
	case MD:
		out.Text = renderMarkdown(rows, typeName)
	case FORM:
		out.Text = renderForm(rows, typeName)
	case REPORT:
		out.Text = renderReport(rows, heading, f.now())
	case MERMAID:
		out.Text = renderMermaid(rows)
	default:
		return Rendered{}, fmt.Errorf("unsupported output format %s", format)
	}
	if err != nil {
		return Rendered{}, err
	}
	return out, nil
}
