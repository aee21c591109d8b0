package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// StorefrontClient implements aurora.StorefrontClient. In discovery mode
// every call is gated on the "store" capability.
type StorefrontClient struct {
	client *Client
}

// NewStorefrontClient creates a new storefront client.
func NewStorefrontClient(client *Client) *StorefrontClient {
	return &StorefrontClient{client: client}
}

// DeliverySlots implements aurora.StorefrontClient.DeliverySlots.
func (c *StorefrontClient) DeliverySlots(ctx context.Context) (*aurora.DeliverySlotList, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureStore, "Store")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, tenantPath(slug, "/store/delivery-slots"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing delivery slots: %w", err)
	}

	var list aurora.DeliverySlotList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing delivery slots list: %w", err)
	}

	return &list, nil
}

// CreateCheckoutSession implements aurora.StorefrontClient.CreateCheckoutSession.
func (c *StorefrontClient) CreateCheckoutSession(ctx context.Context, request *aurora.CheckoutSessionRequest) (*aurora.CheckoutSession, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureStore, "Store")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Post(ctx, tenantPath(slug, "/store/checkout/sessions"), request)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	var session aurora.CheckoutSession

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing checkout session: %w", err)
	}

	return &session, nil
}

// AcmeCheckout implements aurora.StorefrontClient.AcmeCheckout.
func (c *StorefrontClient) AcmeCheckout(ctx context.Context, request *aurora.AcmeCheckoutRequest) (*aurora.AcmeCheckout, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureStore, "Store")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Post(ctx, tenantPath(slug, "/store/checkout/acme"), request)
	if err != nil {
		return nil, fmt.Errorf("starting acme checkout: %w", err)
	}

	var checkout aurora.AcmeCheckout

	err = json.Unmarshal(resp.Body, &checkout)
	if err != nil {
		return nil, fmt.Errorf("parsing acme checkout: %w", err)
	}

	return &checkout, nil
}

// CompleteAcmeCheckout implements aurora.StorefrontClient.CompleteAcmeCheckout.
func (c *StorefrontClient) CompleteAcmeCheckout(ctx context.Context, request *aurora.AcmeCheckoutCompleteRequest) (*aurora.Order, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureStore, "Store")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Post(ctx, tenantPath(slug, "/store/checkout/acme/complete"), request)
	if err != nil {
		return nil, fmt.Errorf("completing acme checkout: %w", err)
	}

	var order aurora.Order

	err = json.Unmarshal(resp.Body, &order)
	if err != nil {
		return nil, fmt.Errorf("parsing order: %w", err)
	}

	return &order, nil
}
