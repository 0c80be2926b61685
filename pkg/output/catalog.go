package output

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// DefaultFormatSetName names the format set used when nothing more specific applies
const DefaultFormatSetName = "Default"

// ErrNoDefaultFormatSet means neither a type-specific set nor the Default set covers the
// requested format. It indicates a broken catalog, not a missing element.
var ErrNoDefaultFormatSet = errors.New("no Default format set for the requested output format")

//go:embed formats.yaml
var defaultFormats []byte

// Catalog holds named format sets. Names and aliases are matched case-insensitively.
// A Catalog is not modified after construction, so it can be shared between goroutines.
type Catalog struct {
	sets    map[string]*FormatSet
	aliases map[string]string
}

var loadDefaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(defaultFormats, ".yaml")
})

// DefaultCatalog returns the catalog built from the embedded format sets
func DefaultCatalog() (*Catalog, error) {
	return loadDefaultCatalog()
}

// NewCatalog builds a catalog from sets keyed by name
func NewCatalog(sets map[string]*FormatSet) (*Catalog, error) {
	c := &Catalog{
		sets:    make(map[string]*FormatSet, len(sets)),
		aliases: map[string]string{},
	}
	for _, name := range slices.Sorted(maps.Keys(sets)) {
		fs := sets[name]
		if fs == nil {
			return nil, fmt.Errorf("format set %q is empty", name)
		}
		set := *fs
		set.Name = name
		c.sets[strings.ToLower(name)] = &set
	}
	if err := c.indexAliases(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) indexAliases() error {
	c.aliases = map[string]string{}
	for _, key := range slices.Sorted(maps.Keys(c.sets)) {
		for _, alias := range c.sets[key].Aliases {
			lower := strings.ToLower(alias)
			if _, isName := c.sets[lower]; isName {
				continue
			}
			if owner, taken := c.aliases[lower]; taken && owner != key {
				return fmt.Errorf("alias %q is used by both %s and %s", alias, c.sets[owner].Name, c.sets[key].Name)
			}
			c.aliases[lower] = key
		}
	}
	return nil
}

// ParseCatalog parses catalog data. ext selects the syntax: ".yaml"/".yml" for YAML,
// ".json", ".jsonc" or ".hujson" for JSON with comments and trailing commas.
func ParseCatalog(data []byte, ext string) (*Catalog, error) {
	sets := map[string]*FormatSet{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sets); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
		}
	case ".json", ".jsonc", ".hujson":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HuJSON catalog: %w", err)
		}
		if err := json.Unmarshal(std, &sets); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q", ext)
	}
	return NewCatalog(sets)
}

// LoadCatalogFile reads a catalog file, choosing the syntax from its extension
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := ParseCatalog(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every set has at least one spec with types and keyed columns,
// and that no spec labels two columns alike
func (c *Catalog) Validate() error {
	for _, key := range slices.Sorted(maps.Keys(c.sets)) {
		fs := c.sets[key]
		if len(fs.Formats) == 0 {
			return fmt.Errorf("format set %s: no formats defined", fs.Name)
		}
		for i, spec := range fs.Formats {
			if len(spec.Types) == 0 {
				return fmt.Errorf("format set %s: formats[%d]: types is required", fs.Name, i)
			}
			if len(spec.Columns) == 0 {
				return fmt.Errorf("format set %s: formats[%d]: columns is required", fs.Name, i)
			}
			for j, col := range spec.Columns {
				if col.Key == "" {
					return fmt.Errorf("format set %s: formats[%d].columns[%d]: key is required", fs.Name, i, j)
				}
			}
			if err := spec.checkLabels(); err != nil {
				return fmt.Errorf("format set %s: formats[%d]: %w", fs.Name, i, err)
			}
		}
	}
	return nil
}

// Merge returns a new catalog with the sets of other layered over c. A set in other
// replaces the set of the same name in c.
func (c *Catalog) Merge(other *Catalog) (*Catalog, error) {
	sets := map[string]*FormatSet{}
	for _, fs := range c.sets {
		sets[fs.Name] = fs
	}
	if other != nil {
		for _, fs := range other.sets {
			for name := range sets {
				if strings.EqualFold(name, fs.Name) {
					delete(sets, name)
				}
			}
			sets[fs.Name] = fs
		}
	}
	return NewCatalog(sets)
}

// Lookup finds a set by name or alias
func (c *Catalog) Lookup(name string) (*FormatSet, bool) {
	if c == nil {
		return nil, false
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if fs, ok := c.sets[lower]; ok {
		return fs, true
	}
	if key, ok := c.aliases[lower]; ok {
		return c.sets[key], true
	}
	return nil, false
}

// Names returns the set names in sorted order
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.sets))
	for _, fs := range c.sets {
		names = append(names, fs.Name)
	}
	slices.Sort(names)
	return names
}

// Resolve picks the columns for rendering elements of typeName in format f. An explicit
// set in opts wins, then a set named by opts, then the set for typeName, then Default.
// It returns the chosen spec together with the set it came from.
func (c *Catalog) Resolve(typeName string, f Format, opts Options) (FormatSpec, *FormatSet, error) {
	if opts.FormatSet != nil {
		spec, ok := opts.FormatSet.Select(f)
		if !ok {
			return FormatSpec{}, nil, fmt.Errorf("format set %s has no columns for %s output", setLabel(opts.FormatSet), f)
		}
		if err := spec.checkLabels(); err != nil {
			return FormatSpec{}, nil, fmt.Errorf("format set %s: %w", setLabel(opts.FormatSet), err)
		}
		return spec, opts.FormatSet, nil
	}

	if opts.FormatSetName != "" {
		fs, ok := c.Lookup(opts.FormatSetName)
		if !ok {
			return FormatSpec{}, nil, fmt.Errorf("format set %q not found", opts.FormatSetName)
		}
		if spec, ok := fs.Select(f); ok {
			return spec, fs, nil
		}
		return c.resolveDefault(f)
	}

	if fs, ok := c.Lookup(typeName); ok {
		if spec, ok := fs.Select(f); ok {
			return spec, fs, nil
		}
	}
	return c.resolveDefault(f)
}

func (c *Catalog) resolveDefault(f Format) (FormatSpec, *FormatSet, error) {
	fs, ok := c.Lookup(DefaultFormatSetName)
	if !ok {
		return FormatSpec{}, nil, ErrNoDefaultFormatSet
	}
	spec, ok := fs.Select(f)
	if !ok {
		return FormatSpec{}, nil, ErrNoDefaultFormatSet
	}
	return spec, fs, nil
}

func setLabel(fs *FormatSet) string {
	if fs.Name != "" {
		return fs.Name
	}
	return "(literal)"
}
