// Package collections manages collections and the specialised collections built on
// them (digital products, agreements, subscriptions, data specs and data
// dictionaries) through the collection-manager view service.
package collections

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// Service is the view service behind every Manager call
const Service = "collection-manager"

// Type names used to pick format sets
const (
	TypeCollections     = "Collections"
	TypeDigitalProducts = "DigitalProducts"
	TypeAgreements      = "Agreements"
	TypeDataSpec        = "DataSpec"
)

// collectionClasses are the property classes an update of any collection may carry
var collectionClasses = []string{
	requests.ClassCollectionProperties,
	requests.ClassDigitalProductProperties,
	requests.ClassAgreementProperties,
	requests.ClassDigitalSubscriptionProperties,
	requests.ClassDataSpecProperties,
	requests.ClassDataDictionaryProperties,
}

// Manager issues collection-manager requests
type Manager struct {
	client *egeria.Client
}

// NewManager returns a Manager using client
func NewManager(client *egeria.Client) *Manager {
	return &Manager{client: client}
}

// CreateCollection creates a generic collection and returns its guid
func (m *Manager) CreateCollection(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "collections", body, requests.ClassCollectionProperties)
}

// CreateDigitalProduct creates a digital product
func (m *Manager) CreateDigitalProduct(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "collections", body, requests.ClassDigitalProductProperties)
}

// CreateAgreement creates an agreement
func (m *Manager) CreateAgreement(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "collections", body, requests.ClassAgreementProperties)
}

// CreateDigitalSubscription creates a digital subscription, a kind of agreement
func (m *Manager) CreateDigitalSubscription(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "collections", body, requests.ClassDigitalSubscriptionProperties)
}

// CreateDataSpec creates a data specification
func (m *Manager) CreateDataSpec(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "collections", body, requests.ClassDataSpecProperties)
}

// CreateDataDictionary creates a data dictionary
func (m *Manager) CreateDataDictionary(ctx context.Context, body any) (string, error) {
	return m.client.CreateElement(ctx, Service, "collections", body, requests.ClassDataDictionaryProperties)
}

// UpdateCollection updates any kind of collection
func (m *Manager) UpdateCollection(ctx context.Context, guid string, body any) error {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return err
	}
	return m.client.Update(ctx, Service, egeria.Path("collections/%s/update", guid), body, collectionClasses...)
}

// DeleteCollection deletes a collection. With cascade set its anchored members go too.
func (m *Manager) DeleteCollection(ctx context.Context, guid string, body any, cascade bool) error {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return err
	}
	return m.client.Delete(ctx, Service, egeria.Path("collections/%s/delete", guid), body, cascade)
}

// GetCollectionByGUID returns one collection
func (m *Manager) GetCollectionByGUID(ctx context.Context, guid string, body any) (egeria.Result[output.Element], error) {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return egeria.Empty[output.Element](), err
	}
	return m.client.GetElementByGUID(ctx, Service, egeria.Path("collections/%s/retrieve", guid), body)
}

// GetCollectionsByName returns the collections whose name is exactly name
func (m *Manager) GetCollectionsByName(ctx context.Context, name string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Filter(body, name)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "collections/by-name", req, TypeCollections, opts)
}

// FindCollections returns the collections matching searchString, "*" for all
func (m *Manager) FindCollections(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.FindElements(ctx, Service, "collections/by-search-string", req, TypeCollections, opts)
}

// FindDigitalProducts is FindCollections limited to digital products and formatted
// with the product columns
func (m *Manager) FindDigitalProducts(ctx context.Context, searchString string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	req, err := requests.Search(body, searchString)
	if err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	if req.MetadataElementTypeName == "" {
		req.MetadataElementTypeName = "DigitalProduct"
	}
	return m.client.FindElements(ctx, Service, "collections/by-search-string", req, TypeDigitalProducts, opts)
}

// GetCollectionMembers lists the members of a collection
func (m *Manager) GetCollectionMembers(ctx context.Context, guid string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetRelated(ctx, Service, egeria.Path("collections/%s/members", guid), body, TypeCollections, opts)
}

// GetCollectionGraph returns a collection with its mermaid graph, usually asked for
// as MERMAID output
func (m *Manager) GetCollectionGraph(ctx context.Context, guid string, body any, opts output.Options) (egeria.Result[output.Rendered], error) {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return egeria.Empty[output.Rendered](), err
	}
	return m.client.GetGraph(ctx, Service, egeria.Path("collections/%s/graph", guid), body, TypeCollections, opts)
}
