package glossary

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// CreateTerm creates a term anchored to a glossary and returns its guid
func (m *Manager) CreateTerm(ctx context.Context, glossaryGUID string, body any) (string, error) {
	if err := egeria.RequireGUID("glossaryGUID", glossaryGUID); err != nil {
		return "", err
	}
	req, err := requests.NewElement(body, requests.ClassGlossaryTermProperties)
	if err != nil {
		return "", err
	}
	if req.AnchorGUID == "" {
		req.AnchorGUID = glossaryGUID
		req.IsOwnAnchor = requests.Bool(false)
	}
	return m.client.Create(ctx, Service, egeria.Path("glossaries/%s/terms/new-details", glossaryGUID), req)
}

// UpdateTerm updates the properties of a term
func (m *Manager) UpdateTerm(ctx context.Context, termGUID string, body any) error {
	if err := egeria.RequireGUID("glossaryTermGUID", termGUID); err != nil {
		return err
	}
	return m.client.Update(ctx, Service, egeria.Path("glossaries/terms/%s/update", termGUID), body,
		requests.ClassGlossaryTermProperties)
}

// DeleteTerm deletes a term
func (m *Manager) DeleteTerm(ctx context.Context, termGUID string, body any) error {
	if err := egeria.RequireGUID("glossaryTermGUID", termGUID); err != nil {
		return err
	}
	return m.client.Delete(ctx, Service, egeria.Path("glossaries/terms/%s/delete", termGUID), body, false)
}

// FindTerms returns the terms matching searchString, "*" for all
func (m *Manager) FindTerms(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "glossaries/terms/by-search-string", req, TypeTerm, opts)
}

// GetTermByGUID returns one term
func (m *Manager) GetTermByGUID(ctx context.Context, termGUID string, body any) (egeria.Result[output.Element], error) {
	if err := egeria.RequireGUID("glossaryTermGUID", termGUID); err != nil {
		return egeria.Empty[output.Element](), err
	}
	return m.client.GetElementByGUID(ctx, Service, egeria.Path("glossaries/terms/%s/retrieve", termGUID), body)
}

// GetTermsByName returns the terms whose name is exactly name
func (m *Manager) GetTermsByName(ctx context.Context, name string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Filter(body, name)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "glossaries/terms/by-name", req, TypeTerm, opts)
}

// GetTermsForGlossary lists the terms anchored to a glossary
func (m *Manager) GetTermsForGlossary(ctx context.Context, glossaryGUID string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("glossaryGUID", glossaryGUID); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetRelated(ctx, Service, egeria.Path("glossaries/%s/terms/retrieve", glossaryGUID), body, TypeTerm, opts)
}

// RelateTerms links two terms with a semantic relationship such as Synonym,
// Antonym or RelatedTerm
func (m *Manager) RelateTerms(ctx context.Context, term1GUID, relationshipType, term2GUID string, body any) error {
	if err := egeria.RequireGUIDs("glossaryTermOneGUID", term1GUID, "glossaryTermTwoGUID", term2GUID); err != nil {
		return err
	}
	if err := egeria.RequireName("relationshipTypeName", relationshipType); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("glossaries/terms/%s/relationships/%s/terms/%s/attach", term1GUID, relationshipType, term2GUID),
		body, requests.ClassGlossaryTermRelationshipProps)
}

// UnrelateTerms removes a semantic relationship between two terms
func (m *Manager) UnrelateTerms(ctx context.Context, term1GUID, relationshipType, term2GUID string, body any) error {
	if err := egeria.RequireGUIDs("glossaryTermOneGUID", term1GUID, "glossaryTermTwoGUID", term2GUID); err != nil {
		return err
	}
	if err := egeria.RequireName("relationshipTypeName", relationshipType); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service,
		egeria.Path("glossaries/terms/%s/relationships/%s/terms/%s/detach", term1GUID, relationshipType, term2GUID), body)
}
