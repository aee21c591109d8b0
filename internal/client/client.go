// Package client implements the aurora.Client interface on top of the
// internal HTTP transport. It owns the two discovery cache cells (capabilities
// and spec document), the capability gate for tenant-scoped operations, and
// the spec-resolved dispatch base.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/internal/http"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// Client implements the aurora.Client interface.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tenantSlug     string
	discoverTenant bool
	specURL        string
	logger         aurora.Logger

	// Discovery cache cells. Each is populated at most once and never
	// invalidated; the mutexes double as single-flight guards so concurrent
	// first callers share one fetch. Only a successful spec fetch populates
	// spec, so a failed fetch is retried by the next call.
	capMu        sync.Mutex
	capabilities *aurora.Capabilities
	specMu       sync.Mutex
	spec         *aurora.SpecDocument

	// Resource clients
	tables     aurora.TablesClient
	views      aurora.ViewsClient
	reports    aurora.ReportsClient
	store      aurora.StoreClient
	site       aurora.SiteClient
	storefront aurora.StorefrontClient
	holmes     aurora.HolmesClient
	auth       aurora.AuthClient
	events     aurora.EventsClient
	webhooks   aurora.WebhooksClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *aurora.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// New creates a new Aurora API client.
func New(config *aurora.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, aurora.ErrEndpointRequired
	}

	httpClient := http.NewClient(config.Endpoint, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:     httpClient,
		baseURL:        httpClient.BaseURL(),
		tenantSlug:     config.TenantSlug,
		discoverTenant: config.DiscoverTenant,
		specURL:        config.SpecURL,
		logger:         config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tables = NewTablesClient(c)
	c.views = NewViewsClient(c)
	c.reports = NewReportsClient(c)
	c.store = NewStoreClient(c)
	c.site = NewSiteClient(c)
	c.storefront = NewStorefrontClient(c)
	c.holmes = NewHolmesClient(c)
	c.auth = NewAuthClient(c)
	c.events = NewEventsClient(c)
	c.webhooks = NewWebhooksClient(c)
}

// Capabilities implements aurora.Client.Capabilities. The first successful
// fetch is cached for the lifetime of the client; subsequent calls return the
// same value without touching the network.
func (c *Client) Capabilities(ctx context.Context) (*aurora.Capabilities, error) {
	c.capMu.Lock()
	defer c.capMu.Unlock()

	if c.capabilities != nil {
		return c.capabilities, nil
	}

	resp, err := c.httpClient.Get(ctx, constants.CapabilitiesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching capabilities: %w", err)
	}

	var caps aurora.Capabilities

	err = json.Unmarshal(resp.Body, &caps)
	if err != nil {
		return nil, fmt.Errorf("parsing capabilities: %w", err)
	}

	c.capabilities = &caps

	return c.capabilities, nil
}

// Spec implements aurora.Client.Spec. Only a successful fetch populates the
// cache; a failure is surfaced and the next call retries.
func (c *Client) Spec(ctx context.Context) (*aurora.SpecDocument, error) {
	c.specMu.Lock()
	defer c.specMu.Unlock()

	if c.spec != nil {
		return c.spec, nil
	}

	req := &http.Request{Method: "GET", Path: constants.SpecPath}
	if c.specURL != "" {
		req.BaseURL = c.specURL
		req.Path = ""
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", aurora.ErrSpecUnavailable, err)
	}

	var doc aurora.SpecDocument

	err = json.Unmarshal(resp.Body, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing spec document: %w", aurora.ErrSpecUnavailable, err)
	}

	c.spec = &doc

	return c.spec, nil
}

// resolvedBaseURL returns the dispatch base for spec-resolved operations: the
// first server URL of the spec document with any trailing slash stripped. Any
// failure, including an unpublished spec or an empty server list, falls back
// silently to the configured endpoint plus "/v1".
func (c *Client) resolvedBaseURL(ctx context.Context) string {
	doc, err := c.Spec(ctx)
	if err == nil && len(doc.Servers) > 0 && doc.Servers[0].URL != "" {
		return strings.TrimSuffix(doc.Servers[0].URL, "/")
	}

	return c.baseURL + constants.DefaultDispatchSuffix
}

// requireFeature resolves the tenant slug for a feature-scoped operation.
//
// In slug-supplied mode the configured slug is returned with no gating and no
// network call. Without a slug and without discovery the operation fails
// synchronously. In discovery mode the (cached) capability document supplies
// the slug, and a false or absent feature flag blocks the operation before
// any request for it is issued. The gate runs on every call; only the
// capability fetch itself is cached.
func (c *Client) requireFeature(ctx context.Context, feature, displayName string) (string, error) {
	if c.tenantSlug != "" {
		return c.tenantSlug, nil
	}

	if !c.discoverTenant {
		return "", aurora.ErrTenantSlugRequired
	}

	caps, err := c.Capabilities(ctx)
	if err != nil {
		return "", err
	}

	if !caps.Has(feature) {
		return "", &aurora.CapabilityError{Feature: feature, DisplayName: displayName}
	}

	return caps.TenantSlug, nil
}

// tenantPath joins a tenant-scoped route suffix onto /api/tenants/{slug}.
func tenantPath(slug, suffix string) string {
	return constants.TenantPathPrefix + slug + suffix
}

// ProvisionSchema implements aurora.Client.ProvisionSchema.
func (c *Client) ProvisionSchema(ctx context.Context, request *aurora.ProvisionSchemaRequest) (*aurora.ProvisionSchemaResult, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/provision-schema", request)
	if err != nil {
		return nil, fmt.Errorf("provisioning schema: %w", err)
	}

	var result aurora.ProvisionSchemaResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing provision result: %w", err)
	}

	return &result, nil
}

// Search implements aurora.Client.Search against the spec-resolved base.
func (c *Client) Search(ctx context.Context, params *aurora.SearchParams) (*aurora.SearchResult, error) {
	query := aurora.NewQuery()
	if params != nil {
		query.Set("q", params.Q)

		if params.Limit > 0 {
			query.SetInt("limit", params.Limit)
		}
	}

	req := &http.Request{
		Method:  "GET",
		Path:    "/search",
		Query:   query,
		BaseURL: c.resolvedBaseURL(ctx),
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	var result aurora.SearchResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing search result: %w", err)
	}

	return &result, nil
}

// Me implements aurora.Client.Me against the spec-resolved base. A non-empty
// userID is forwarded in the X-User-Id header.
func (c *Client) Me(ctx context.Context, userID string) (*aurora.User, error) {
	req := &http.Request{
		Method:  "GET",
		Path:    "/me",
		BaseURL: c.resolvedBaseURL(ctx),
	}

	if userID != "" {
		req.Headers = map[string]string{constants.HeaderUserID: userID}
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}

	var user aurora.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Resource client accessors

// Tables implements aurora.Client.Tables.
func (c *Client) Tables() aurora.TablesClient {
	return c.tables
}

// Views implements aurora.Client.Views.
func (c *Client) Views() aurora.ViewsClient {
	return c.views
}

// Reports implements aurora.Client.Reports.
func (c *Client) Reports() aurora.ReportsClient {
	return c.reports
}

// Store implements aurora.Client.Store.
func (c *Client) Store() aurora.StoreClient {
	return c.store
}

// Site implements aurora.Client.Site.
func (c *Client) Site() aurora.SiteClient {
	return c.site
}

// Storefront implements aurora.Client.Storefront.
func (c *Client) Storefront() aurora.StorefrontClient {
	return c.storefront
}

// Holmes implements aurora.Client.Holmes.
func (c *Client) Holmes() aurora.HolmesClient {
	return c.holmes
}

// Auth implements aurora.Client.Auth.
func (c *Client) Auth() aurora.AuthClient {
	return c.auth
}

// Events implements aurora.Client.Events.
func (c *Client) Events() aurora.EventsClient {
	return c.events
}

// Webhooks implements aurora.Client.Webhooks.
func (c *Client) Webhooks() aurora.WebhooksClient {
	return c.webhooks
}

// loggerAdapter adapts aurora.Logger to http.Logger.
type loggerAdapter struct {
	logger aurora.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
