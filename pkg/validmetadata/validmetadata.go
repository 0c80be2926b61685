// Package validmetadata maintains the lists of valid values for open metadata
// properties and queries the open metadata type system through the valid-metadata
// view service.
package validmetadata

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// Service is the view service behind every Manager call
const Service = "valid-metadata"

// TypeValidMetadataValue picks the format set for valid value lists
const TypeValidMetadataValue = "ValidMetadataValue"

// ValueRef identifies one valid value of a property. TypeName narrows the value to one
// open metadata type; MapName selects the key when the property is a map.
type ValueRef struct {
	TypeName       string
	PropertyName   string
	MapName        string
	PreferredValue string
}

// Manager issues valid-metadata requests
type Manager struct {
	client *egeria.Client
}

// NewManager returns a Manager using client
func NewManager(client *egeria.Client) *Manager {
	return &Manager{client: client}
}

// SetupValidMetadataValue adds or replaces a valid value for propertyName. An empty
// typeName makes the value valid for every type.
func (m *Manager) SetupValidMetadataValue(ctx context.Context, propertyName, typeName string, body any) error {
	if err := egeria.RequireName("propertyName", propertyName); err != nil {
		return err
	}
	props, err := requests.PropertiesOnly(body, requests.ClassValidMetadataValueProperties)
	if err != nil {
		return err
	}
	path := withQuery(egeria.Path("setup-value/%s", propertyName), "typeName", typeName)
	return m.client.Do(ctx, Service, path, props)
}

// SetupValidMetadataMapName adds a valid key name for a map-valued property
func (m *Manager) SetupValidMetadataMapName(ctx context.Context, propertyName, typeName string, body any) error {
	if err := egeria.RequireName("propertyName", propertyName); err != nil {
		return err
	}
	props, err := requests.PropertiesOnly(body, requests.ClassValidMetadataValueProperties)
	if err != nil {
		return err
	}
	path := withQuery(egeria.Path("setup-map-name/%s", propertyName), "typeName", typeName)
	return m.client.Do(ctx, Service, path, props)
}

// ClearValidMetadataValue removes a valid value
func (m *Manager) ClearValidMetadataValue(ctx context.Context, ref ValueRef) error {
	if err := requireRef(ref); err != nil {
		return err
	}
	path := withQuery(egeria.Path("clear-value/%s", ref.PropertyName),
		"typeName", ref.TypeName,
		"mapName", ref.MapName,
		"preferredValue", ref.PreferredValue)
	return m.client.Do(ctx, Service, path, nil)
}

// ValidateMetadataValue reports whether actualValue is one of the valid values of the
// property
func (m *Manager) ValidateMetadataValue(ctx context.Context, propertyName, typeName, actualValue string) (bool, error) {
	if err := egeria.RequireName("propertyName", propertyName); err != nil {
		return false, err
	}
	if err := egeria.RequireName("actualValue", actualValue); err != nil {
		return false, err
	}
	path := withQuery(egeria.Path("validate-value/%s", propertyName),
		"typeName", typeName,
		"actualValue", actualValue)
	flag, err := m.client.Field(ctx, http.MethodGet, Service, path, nil, "flag")
	if err != nil {
		return false, err
	}
	return flag.Bool(), nil
}

// GetValidMetadataValue returns the definition of one valid value
func (m *Manager) GetValidMetadataValue(ctx context.Context, ref ValueRef) (egeria.Result[output.Element], error) {
	if err := requireRef(ref); err != nil {
		return egeria.Empty[output.Element](), err
	}
	path := withQuery(egeria.Path("get-value/%s", ref.PropertyName),
		"typeName", ref.TypeName,
		"mapName", ref.MapName,
		"preferredValue", ref.PreferredValue)
	return m.client.GetElement(ctx, Service, path)
}

// GetValidMetadataValues lists the valid values of a property
func (m *Manager) GetValidMetadataValues(ctx context.Context, propertyName, typeName string, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireName("propertyName", propertyName); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	path := withQuery(egeria.Path("get-valid-metadata-values/%s", propertyName), "typeName", typeName)
	return m.client.ListElements(ctx, Service, path, TypeValidMetadataValue, opts)
}

// GetValidMetadataMapNames lists the valid key names of a map-valued property
func (m *Manager) GetValidMetadataMapNames(ctx context.Context, propertyName, typeName string, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireName("propertyName", propertyName); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	path := withQuery(egeria.Path("get-map-names/%s", propertyName), "typeName", typeName)
	return m.client.ListElements(ctx, Service, path, TypeValidMetadataValue, opts)
}

// SetConsistentMetadataValues records that two valid values are meant to be used
// together
func (m *Manager) SetConsistentMetadataValues(ctx context.Context, first, second ValueRef) error {
	if err := requireRef(first); err != nil {
		return err
	}
	if err := requireRef(second); err != nil {
		return err
	}
	path := withQuery(egeria.Path("setup-consistent-metadata-values/%s/%s", first.PropertyName, second.PropertyName),
		"typeName1", first.TypeName,
		"mapName1", first.MapName,
		"preferredValue1", first.PreferredValue,
		"typeName2", second.TypeName,
		"mapName2", second.MapName,
		"preferredValue2", second.PreferredValue)
	return m.client.Do(ctx, Service, path, nil)
}

// GetConsistentMetadataValues lists the valid values recorded as consistent with ref
func (m *Manager) GetConsistentMetadataValues(ctx context.Context, ref ValueRef, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := requireRef(ref); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	path := withQuery(egeria.Path("get-consistent-metadata-values/%s", ref.PropertyName),
		"typeName", ref.TypeName,
		"mapName", ref.MapName,
		"preferredValue", ref.PreferredValue)
	return m.client.ListElements(ctx, Service, path, TypeValidMetadataValue, opts)
}

func requireRef(ref ValueRef) error {
	if err := egeria.RequireName("propertyName", ref.PropertyName); err != nil {
		return err
	}
	return egeria.RequireName("preferredValue", ref.PreferredValue)
}

// withQuery appends the non-empty name, value pairs to path as a query string
func withQuery(path string, pairs ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
