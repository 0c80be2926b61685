// Package referencedata manages valid value definitions, the reference data sets and
// their members, through the reference-data view service.
package referencedata

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// Service is the view service behind every Manager call
const Service = "reference-data"

// TypeValidValueDefinition picks the format set for query results
const TypeValidValueDefinition = "ValidValueDefinition"

// Manager issues reference-data requests
type Manager struct {
	client *egeria.Client
}

// NewManager returns a Manager using client
func NewManager(client *egeria.Client) *Manager {
	return &Manager{client: client}
}

// CreateValidValueDefinition creates a valid value definition and returns its guid
func (m *Manager) CreateValidValueDefinition(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "valid-value-definitions", body,
		requests.ClassValidValueDefinitionProperties)
}

// UpdateValidValueDefinition updates a valid value definition
func (m *Manager) UpdateValidValueDefinition(ctx context.Context, guid string, body any) error {
	if err := egeria.RequireGUID("validValueDefinitionGUID", guid); err != nil {
		return err
	}
	return m.client.Update(ctx, Service, egeria.Path("valid-value-definitions/%s/update", guid), body,
		requests.ClassValidValueDefinitionProperties)
}

// DeleteValidValueDefinition deletes a valid value definition
func (m *Manager) DeleteValidValueDefinition(ctx context.Context, guid string, body any, cascade bool) error {
	if err := egeria.RequireGUID("validValueDefinitionGUID", guid); err != nil {
		return err
	}
	return m.client.Delete(ctx, Service, egeria.Path("valid-value-definitions/%s/delete", guid), body, cascade)
}

// FindValidValueDefinitions returns the definitions matching searchString, "*" for all
func (m *Manager) FindValidValueDefinitions(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "valid-value-definitions/by-search-string", req, TypeValidValueDefinition, opts)
}

// GetValidValueDefinitionByGUID returns one valid value definition
func (m *Manager) GetValidValueDefinitionByGUID(ctx context.Context, guid string, body any) (egeria.Result[output.Element], error) {
	if err := egeria.RequireGUID("validValueDefinitionGUID", guid); err != nil {
		return egeria.Empty[output.Element](), err
	}
	return m.client.GetElementByGUID(ctx, Service, egeria.Path("valid-value-definitions/%s/retrieve", guid), body)
}

// GetValidValueDefinitionsByName returns the definitions whose name is exactly name
func (m *Manager) GetValidValueDefinitionsByName(ctx context.Context, name string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Filter(body, name)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "valid-value-definitions/by-name", req, TypeValidValueDefinition, opts)
}

// AddValidValueMember makes member one of the values of the set
func (m *Manager) AddValidValueMember(ctx context.Context, setGUID, memberGUID string, body any) error {
	if err := egeria.RequireGUIDs("validValueSetGUID", setGUID, "validValueMemberGUID", memberGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("valid-value-definitions/%s/members/%s/attach", setGUID, memberGUID),
		body, requests.ClassValidValueMemberProperties)
}

// RemoveValidValueMember removes member from the set
func (m *Manager) RemoveValidValueMember(ctx context.Context, setGUID, memberGUID string, body any) error {
	if err := egeria.RequireGUIDs("validValueSetGUID", setGUID, "validValueMemberGUID", memberGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service,
		egeria.Path("valid-value-definitions/%s/members/%s/detach", setGUID, memberGUID), body)
}

// GetValidValueMembers lists the members of a valid value set
func (m *Manager) GetValidValueMembers(ctx context.Context, setGUID string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("validValueSetGUID", setGUID); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetRelated(ctx, Service, egeria.Path("valid-value-definitions/%s/members", setGUID), body,
		TypeValidValueDefinition, opts)
}
