package glossary

import (
	"context"
	"fmt"
	"strings"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
)

// TermExtractor fills the in_glossary and categories columns of glossary term output.
// The owning glossary is the term's anchor; categories come from the categories a term
// is linked to.
func TermExtractor() output.Extractor {
	return output.Extractor{Additional: termAdditional}
}

func termAdditional(ctx context.Context, f output.Fetcher, el output.Element) (map[string]any, error) {
	out := map[string]any{}

	glossaryGUID := el.Get("elementHeader.anchor.classificationProperties.anchorGUID").String()
	if glossaryGUID == "" {
		glossaryGUID = el.Get("elementHeader.anchor.classificationProperties.anchorScopeGUID").String()
	}
	if glossaryGUID != "" && glossaryGUID != el.GUID() {
		glossary, found, err := f.FetchElement(ctx, Service, egeria.Path("glossaries/%s/retrieve", glossaryGUID))
		if err != nil {
			return nil, fmt.Errorf("failed to get glossary %s: %w", glossaryGUID, err)
		}
		if found {
			out["in_glossary"] = glossary.DisplayName()
		}
	}

	if el.GUID() == "" {
		return out, nil
	}
	categories, err := f.FetchRelated(ctx, Service, categoriesForTermPath(el.GUID()))
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if name := c.DisplayName(); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		out["categories"] = strings.Join(names, ", ")
	}
	return out, nil
}
