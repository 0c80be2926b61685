package glossary

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// CreateCategory creates a category in a glossary and returns its guid
func (m *Manager) CreateCategory(ctx context.Context, glossaryGUID string, body any) (string, error) {
	if err := egeria.RequireGUID("glossaryGUID", glossaryGUID); err != nil {
		return "", err
	}
	return m.client.CreateElement(ctx, Service, egeria.Path("glossaries/%s/categories", glossaryGUID), body,
		requests.ClassGlossaryCategoryProperties)
}

// DeleteCategory deletes a category. Terms in it are kept.
func (m *Manager) DeleteCategory(ctx context.Context, categoryGUID string, body any) error {
	if err := egeria.RequireGUID("glossaryCategoryGUID", categoryGUID); err != nil {
		return err
	}
	return m.client.Delete(ctx, Service, egeria.Path("glossaries/categories/%s/delete", categoryGUID), body, false)
}

// FindCategories returns the categories matching searchString, "*" for all
func (m *Manager) FindCategories(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "glossaries/categories/by-search-string", req, TypeCategory, opts)
}

// GetCategoriesForTerm lists the categories a term belongs to
func (m *Manager) GetCategoriesForTerm(ctx context.Context, termGUID string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("glossaryTermGUID", termGUID); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetRelated(ctx, Service, categoriesForTermPath(termGUID), body, TypeCategory, opts)
}

// AddTermToCategory places a term in a category
func (m *Manager) AddTermToCategory(ctx context.Context, categoryGUID, termGUID string, body any) error {
	if err := egeria.RequireGUIDs("glossaryCategoryGUID", categoryGUID, "glossaryTermGUID", termGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service, egeria.Path("glossaries/categories/%s/terms/%s/attach", categoryGUID, termGUID), body)
}

// RemoveTermFromCategory takes a term out of a category
func (m *Manager) RemoveTermFromCategory(ctx context.Context, categoryGUID, termGUID string, body any) error {
	if err := egeria.RequireGUIDs("glossaryCategoryGUID", categoryGUID, "glossaryTermGUID", termGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service, egeria.Path("glossaries/categories/%s/terms/%s/detach", categoryGUID, termGUID), body)
}

func categoriesForTermPath(termGUID string) string {
	return egeria.Path("glossaries/terms/%s/categories/retrieve", termGUID)
}
