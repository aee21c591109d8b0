package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// SiteClient implements aurora.SiteClient. In discovery mode every call is
// gated on the "site" capability.
type SiteClient struct {
	client *Client
}

// NewSiteClient creates a new site client.
func NewSiteClient(client *Client) *SiteClient {
	return &SiteClient{client: client}
}

// Search implements aurora.SiteClient.Search.
func (c *SiteClient) Search(ctx context.Context, params *aurora.SiteSearchParams) (*aurora.SiteSearchResult, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureSite, "Site")
	if err != nil {
		return nil, err
	}

	query := aurora.NewQuery()
	if params != nil {
		query.Set("q", params.Q)

		if params.Limit > 0 {
			query.SetInt("limit", params.Limit)
		}
	}

	resp, err := c.client.httpClient.Get(ctx, tenantPath(slug, "/site/search"), query)
	if err != nil {
		return nil, fmt.Errorf("searching site: %w", err)
	}

	var result aurora.SiteSearchResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing site search result: %w", err)
	}

	return &result, nil
}

// ListStores implements aurora.SiteClient.ListStores.
func (c *SiteClient) ListStores(ctx context.Context) (*aurora.SiteStoreList, error) {
	slug, err := c.client.requireFeature(ctx, aurora.FeatureSite, "Site")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.httpClient.Get(ctx, tenantPath(slug, "/site/stores"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing site stores: %w", err)
	}

	var list aurora.SiteStoreList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing site stores list: %w", err)
	}

	return &list, nil
}
