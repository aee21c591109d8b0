package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// TablesClient implements aurora.TablesClient.
type TablesClient struct {
	client *Client
}

// NewTablesClient creates a new tables client.
func NewTablesClient(client *Client) *TablesClient {
	return &TablesClient{client: client}
}

// List implements aurora.TablesClient.List.
func (c *TablesClient) List(ctx context.Context, query *aurora.Query) (*aurora.TableList, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/tables", query)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	var list aurora.TableList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing tables list: %w", err)
	}

	return &list, nil
}

// Get implements aurora.TablesClient.Get.
func (c *TablesClient) Get(ctx context.Context, slug string) (*aurora.Table, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/tables/"+slug, nil)
	if err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	var table aurora.Table

	err = json.Unmarshal(resp.Body, &table)
	if err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}

	return &table, nil
}

// ForTable implements aurora.TablesClient.ForTable.
func (c *TablesClient) ForTable(slug string) aurora.TableHandle {
	return &tableHandle{client: c.client, slug: slug}
}

// tableHandle scopes record and section-view operations to one table.
type tableHandle struct {
	client *Client
	slug   string
}

// Records implements aurora.TableHandle.Records.
func (h *tableHandle) Records() aurora.RecordsClient {
	return &RecordsClient{client: h.client, tableSlug: h.slug}
}

// SectionViews implements aurora.TableHandle.SectionViews.
func (h *tableHandle) SectionViews() aurora.SectionViewsClient {
	return &SectionViewsClient{client: h.client, tableSlug: h.slug}
}

// RecordsClient implements aurora.RecordsClient for one table.
type RecordsClient struct {
	client    *Client
	tableSlug string
}

func (c *RecordsClient) basePath() string {
	return "/v1/tables/" + c.tableSlug + "/records"
}

// List implements aurora.RecordsClient.List.
func (c *RecordsClient) List(ctx context.Context, query *aurora.Query) (*aurora.RecordList, error) {
	resp, err := c.client.httpClient.Get(ctx, c.basePath(), query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	var list aurora.RecordList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing records list: %w", err)
	}

	return &list, nil
}

// Get implements aurora.RecordsClient.Get.
func (c *RecordsClient) Get(ctx context.Context, id string) (*aurora.Record, error) {
	resp, err := c.client.httpClient.Get(ctx, c.basePath()+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	var record aurora.Record

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}

	return &record, nil
}

// Create implements aurora.RecordsClient.Create.
func (c *RecordsClient) Create(ctx context.Context, fields map[string]any) (*aurora.Record, error) {
	resp, err := c.client.httpClient.Post(ctx, c.basePath(), fields)
	if err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	var record aurora.Record

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}

	return &record, nil
}

// Update implements aurora.RecordsClient.Update.
func (c *RecordsClient) Update(ctx context.Context, id string, fields map[string]any) (*aurora.Record, error) {
	resp, err := c.client.httpClient.Patch(ctx, c.basePath()+"/"+id, fields)
	if err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	var record aurora.Record

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}

	return &record, nil
}

// Delete implements aurora.RecordsClient.Delete.
func (c *RecordsClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.httpClient.Delete(ctx, c.basePath()+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}

// SectionViewsClient implements aurora.SectionViewsClient for one table.
type SectionViewsClient struct {
	client    *Client
	tableSlug string
}

// List implements aurora.SectionViewsClient.List.
func (c *SectionViewsClient) List(ctx context.Context) (*aurora.SectionViewList, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/tables/"+c.tableSlug+"/section-views", nil)
	if err != nil {
		return nil, fmt.Errorf("listing section views: %w", err)
	}

	var list aurora.SectionViewList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing section views list: %w", err)
	}

	return &list, nil
}
