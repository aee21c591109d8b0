package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// StoreClient implements aurora.StoreClient, the always-available store
// content surface under /v1/store.
type StoreClient struct {
	client *Client
}

// NewStoreClient creates a new store content client.
func NewStoreClient(client *Client) *StoreClient {
	return &StoreClient{client: client}
}

// GetConfig implements aurora.StoreClient.GetConfig.
func (c *StoreClient) GetConfig(ctx context.Context) (*aurora.StoreConfig, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/store/config", nil)
	if err != nil {
		return nil, fmt.Errorf("getting store config: %w", err)
	}

	var config aurora.StoreConfig

	err = json.Unmarshal(resp.Body, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing store config: %w", err)
	}

	return &config, nil
}

// ListPages implements aurora.StoreClient.ListPages.
func (c *StoreClient) ListPages(ctx context.Context, query *aurora.Query) (*aurora.PageList, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/store/pages", query)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	var list aurora.PageList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing pages list: %w", err)
	}

	return &list, nil
}

// GetPage implements aurora.StoreClient.GetPage.
func (c *StoreClient) GetPage(ctx context.Context, slug string) (*aurora.Page, error) {
	resp, err := c.client.httpClient.Get(ctx, "/v1/store/pages/"+slug, nil)
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}

	var page aurora.Page

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	return &page, nil
}
