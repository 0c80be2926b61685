// Package glossary manages glossaries, their terms and categories through the
// glossary-manager view service.
package glossary

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// Service is the view service behind every Manager call
const Service = "glossary-manager"

// Type names used to pick format sets and extractors
const (
	TypeGlossaries = "Glossaries"
	TypeTerm       = "GlossaryTerm"
	TypeCategory   = "GlossaryCategory"
)

// Manager issues glossary-manager requests
type Manager struct {
	client *egeria.Client
}

// NewManager returns a Manager using client and registers the glossary term extractor
// with the client's registry, so term output can show the owning glossary and the
// categories a term belongs to
func NewManager(client *egeria.Client) *Manager {
	client.Registry().Register(TypeTerm, TermExtractor())
	return &Manager{client: client}
}

// CreateGlossary creates a glossary and returns its guid
func (m *Manager) CreateGlossary(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "glossaries", body, requests.ClassGlossaryProperties)
}

// UpdateGlossary updates the properties of a glossary
func (m *Manager) UpdateGlossary(ctx context.Context, guid string, body any) error {
	if err := egeria.RequireGUID("glossaryGUID", guid); err != nil {
		return err
	}
	return m.client.Update(ctx, Service, egeria.Path("glossaries/%s/update", guid), body, requests.ClassGlossaryProperties)
}

// DeleteGlossary deletes a glossary. With cascade set its terms and categories go too.
func (m *Manager) DeleteGlossary(ctx context.Context, guid string, body any, cascade bool) error {
	if err := egeria.RequireGUID("glossaryGUID", guid); err != nil {
		return err
	}
	return m.client.Delete(ctx, Service, egeria.Path("glossaries/%s/delete", guid), body, cascade)
}

// FindGlossaries returns the glossaries matching searchString, "*" for all
func (m *Manager) FindGlossaries(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "glossaries/by-search-string", req, TypeGlossaries, opts)
}

// GetGlossaryByGUID returns one glossary
func (m *Manager) GetGlossaryByGUID(ctx context.Context, guid string, body any) (egeria.Result[output.Element], error) {
	if err := egeria.RequireGUID("glossaryGUID", guid); err != nil {
		return egeria.Empty[output.Element](), err
	}
	return m.client.GetElementByGUID(ctx, Service, egeria.Path("glossaries/%s/retrieve", guid), body)
}

// GetGlossariesByName returns the glossaries whose name is exactly name
func (m *Manager) GetGlossariesByName(ctx context.Context, name string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Filter(body, name)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "glossaries/by-name", req, TypeGlossaries, opts)
}
