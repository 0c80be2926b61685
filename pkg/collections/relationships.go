package collections

import (
	"context"

	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

// AddToCollection makes an element a member of a collection
func (m *Manager) AddToCollection(ctx context.Context, collectionGUID, elementGUID string, body any) error {
	if err := egeria.RequireGUIDs("collectionGUID", collectionGUID, "elementGUID", elementGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service, egeria.Path("collections/%s/members/%s/attach", collectionGUID, elementGUID),
		body, requests.ClassCollectionMembershipProperties)
}

// RemoveFromCollection removes an element from a collection
func (m *Manager) RemoveFromCollection(ctx context.Context, collectionGUID, elementGUID string, body any) error {
	if err := egeria.RequireGUIDs("collectionGUID", collectionGUID, "elementGUID", elementGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service, egeria.Path("collections/%s/members/%s/detach", collectionGUID, elementGUID), body)
}

// LinkDigitalProductDependency records that the consumer product uses the consumed one
func (m *Manager) LinkDigitalProductDependency(ctx context.Context, consumerGUID, consumedGUID string, body any) error {
	if err := egeria.RequireGUIDs("consumerProductGUID", consumerGUID, "consumedProductGUID", consumedGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("collections/digital-products/%s/product-dependencies/%s/attach", consumerGUID, consumedGUID),
		body, requests.ClassDigitalProductDependencyProps)
}

// DetachDigitalProductDependency removes a product dependency
func (m *Manager) DetachDigitalProductDependency(ctx context.Context, consumerGUID, consumedGUID string, body any) error {
	if err := egeria.RequireGUIDs("consumerProductGUID", consumerGUID, "consumedProductGUID", consumedGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service,
		egeria.Path("collections/digital-products/%s/product-dependencies/%s/detach", consumerGUID, consumedGUID), body)
}

// LinkAgreementItem adds an item, such as a product, to an agreement
func (m *Manager) LinkAgreementItem(ctx context.Context, agreementGUID, itemGUID string, body any) error {
	if err := egeria.RequireGUIDs("agreementGUID", agreementGUID, "agreementItemGUID", itemGUID); err != nil {
		return err
	}
	return m.client.Attach(ctx, Service,
		egeria.Path("collections/agreements/%s/agreement-items/%s/attach", agreementGUID, itemGUID),
		body, requests.ClassAgreementItemProperties)
}

// DetachAgreementItem removes an item from an agreement
func (m *Manager) DetachAgreementItem(ctx context.Context, agreementGUID, itemGUID string, body any) error {
	if err := egeria.RequireGUIDs("agreementGUID", agreementGUID, "agreementItemGUID", itemGUID); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service,
		egeria.Path("collections/agreements/%s/agreement-items/%s/detach", agreementGUID, itemGUID), body)
}

// ClassifyAsRootCollection marks a collection as the root of a hierarchy. The
// classification has no properties, so body is normally nil.
func (m *Manager) ClassifyAsRootCollection(ctx context.Context, guid string, body any) error {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return err
	}
	return m.client.Classify(ctx, Service, egeria.Path("collections/%s/root-collection", guid), body)
}

// DeclassifyRootCollection removes the RootCollection classification
func (m *Manager) DeclassifyRootCollection(ctx context.Context, guid string, body any) error {
	if err := egeria.RequireGUID("collectionGUID", guid); err != nil {
		return err
	}
	return m.client.Detach(ctx, Service, egeria.Path("collections/%s/root-collection/remove", guid), body)
}
