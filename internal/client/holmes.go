package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// HolmesClient implements aurora.HolmesClient. In discovery mode every call
// is gated on the "holmes" capability.
type HolmesClient struct {
	client *Client
}

// NewHolmesClient creates a new Holmes inference client.
func NewHolmesClient(client *Client) *HolmesClient {
	return &HolmesClient{client: client}
}

// Infer implements aurora.HolmesClient.Infer.
func (c *HolmesClient) Infer(ctx context.Context, params *aurora.InferParams) (*aurora.Inference, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureHolmes, "Holmes")
	if err != nil {
		return nil, err
	}

	query := aurora.NewQuery()
	if params != nil {
		query.Set("q", params.Query)
		query.Set("mode", params.Mode)
	}

	resp, err := c.client.httpClient.Get(ctx, tenantPath(slug, "/holmes/infer"), query)
	if err != nil {
		return nil, fmt.Errorf("running inference: %w", err)
	}

	var inference aurora.Inference

	err = json.Unmarshal(resp.Body, &inference)
	if err != nil {
		return nil, fmt.Errorf("parsing inference: %w", err)
	}

	return &inference, nil
}
