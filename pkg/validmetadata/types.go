package validmetadata

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
)

// TypeDef summarises an open metadata type definition
type TypeDef struct {
	GUID        string `json:"guid"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	SuperType   string `json:"superType,omitempty"`
	Status      string `json:"status,omitempty"`
}

// GetAllEntityTypes lists every entity type the platform knows
func (m *Manager) GetAllEntityTypes(ctx context.Context) ([]TypeDef, error) {
	return m.typeDefs(ctx, "open-metadata-types/entity-defs")
}

// GetSubTypes lists the names of the types that inherit from typeName
func (m *Manager) GetSubTypes(ctx context.Context, typeName string) ([]string, error) {
	if err := egeria.RequireName("typeName", typeName); err != nil {
		return nil, err
	}
	list, err := m.client.Field(ctx, http.MethodGet, Service,
		withQuery("open-metadata-types/sub-types", "typeName", typeName), nil, "stringList")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, v := range list.Array() {
		names = append(names, v.String())
	}
	return names, nil
}

// GetValidRelationshipTypes lists the relationship types that may attach to entityType
func (m *Manager) GetValidRelationshipTypes(ctx context.Context, entityType string) ([]TypeDef, error) {
	if err := egeria.RequireName("entityType", entityType); err != nil {
		return nil, err
	}
	return m.typeDefs(ctx, egeria.Path("open-metadata-types/%s/attached-relationships", entityType))
}

// GetValidClassificationTypes lists the classifications that may attach to entityType
func (m *Manager) GetValidClassificationTypes(ctx context.Context, entityType string) ([]TypeDef, error) {
	if err := egeria.RequireName("entityType", entityType); err != nil {
		return nil, err
	}
	return m.typeDefs(ctx, egeria.Path("open-metadata-types/%s/attached-classifications", entityType))
}

func (m *Manager) typeDefs(ctx context.Context, path string) ([]TypeDef, error) {
	list, err := m.client.Field(ctx, http.MethodGet, Service, path, nil, "typeDefs")
	if err != nil {
		return nil, err
	}
	if list.Exists() && !list.IsArray() {
		return nil, fmt.Errorf("unexpected typeDefs value of type %s", list.Type)
	}
	var out []TypeDef
	list.ForEach(func(_, v gjson.Result) bool {
		out = append(out, TypeDef{
			GUID:        v.Get("guid").String(),
			Name:        v.Get("name").String(),
			Category:    v.Get("category").String(),
			Description: v.Get("description").String(),
			SuperType:   v.Get("superType.name").String(),
			Status:      v.Get("status").String(),
		})
		return true
	})
	return out, nil
}
