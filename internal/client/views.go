package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// ViewsClient implements aurora.ViewsClient.
type ViewsClient struct {
	client *Client
}

// NewViewsClient creates a new views client.
func NewViewsClient(client *Client) *ViewsClient {
	return &ViewsClient{client: client}
}

// List implements aurora.ViewsClient.List.
func (c *ViewsClient) List(ctx context.Context, query *aurora.Query) (*aurora.ViewList, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/views", query)
	if err != nil {
		return nil, fmt.Errorf("listing views: %w", err)
	}

	var list aurora.ViewList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing views list: %w", err)
	}

	return &list, nil
}

// Get implements aurora.ViewsClient.Get.
func (c *ViewsClient) Get(ctx context.Context, id string) (*aurora.View, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/views/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	var view aurora.View

	err = json.Unmarshal(resp.Body, &view)
	if err != nil {
		return nil, fmt.Errorf("parsing view: %w", err)
	}

	return &view, nil
}

// ReportsClient implements aurora.ReportsClient.
type ReportsClient struct {
	client *Client
}

// NewReportsClient creates a new reports client.
func NewReportsClient(client *Client) *ReportsClient {
	return &ReportsClient{client: client}
}

// List implements aurora.ReportsClient.List.
func (c *ReportsClient) List(ctx context.Context, query *aurora.Query) (*aurora.ReportList, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/reports", query)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var list aurora.ReportList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing reports list: %w", err)
	}

	return &list, nil
}

// Get implements aurora.ReportsClient.Get.
func (c *ReportsClient) Get(ctx context.Context, id string) (*aurora.Report, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/reports/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	var report aurora.Report

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}

	return &report, nil
}
