package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/internal/http"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// EventsClient implements aurora.EventsClient against the spec-resolved base.
type EventsClient struct {
	client *Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(client *Client) *EventsClient {
	return &EventsClient{client: client}
}

// Track implements aurora.EventsClient.Track.
func (c *EventsClient) Track(ctx context.Context, event *aurora.Event) error {
	req := &http.Request{
		Method:  "POST",
		Path:    "/events",
		Body:    event,
		BaseURL: c.client.resolvedBaseURL(ctx),
	}

	_, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("tracking event: %w", err)
	}

	return nil
}

// WebhooksClient implements aurora.WebhooksClient against the spec-resolved
// base.
type WebhooksClient struct {
	client *Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(client *Client) *WebhooksClient {
	return &WebhooksClient{client: client}
}

// Inbound implements aurora.WebhooksClient.Inbound.
func (c *WebhooksClient) Inbound(ctx context.Context, payload *aurora.WebhookPayload) (*aurora.WebhookResult, error) {
	req := &http.Request{
		Method:  "POST",
		Path:    "/webhooks/inbound",
		Body:    payload,
		BaseURL: c.client.resolvedBaseURL(ctx),
	}

	resp, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("delivering webhook: %w", err)
	}

	var result aurora.WebhookResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook result: %w", err)
	}

	return &result, nil
}
