package aurora

import (
	"context"
)

// DiscoveryClient provides access to the tenant's capability and spec
// documents. Both values are fetched lazily, at most once per client instance,
// and cached for the instance's lifetime; there is no invalidation or refresh
// path. A failed Spec fetch is not cached, so a later call retries.
type DiscoveryClient interface {
	Capabilities(ctx context.Context) (*Capabilities, error)
	Spec(ctx context.Context) (*SpecDocument, error)
}

// DataClients provides access to the always-available data-plane clients.
type DataClients interface {
	Tables() TablesClient
	Views() ViewsClient
	Reports() ReportsClient
	Store() StoreClient
	ProvisionSchema(ctx context.Context, request *ProvisionSchemaRequest) (*ProvisionSchemaResult, error)
}

// TenantClients provides access to tenant-scoped, feature-gated clients.
type TenantClients interface {
	Site() SiteClient
	Storefront() StorefrontClient
	Holmes() HolmesClient
}

// DispatchClients provides access to operations whose base URL is resolved
// from the tenant's spec document (falling back to the configured endpoint
// plus "/v1" when no spec is published).
type DispatchClients interface {
	Search(ctx context.Context, params *SearchParams) (*SearchResult, error)
	Me(ctx context.Context, userID string) (*User, error)
	Events() EventsClient
	Webhooks() WebhooksClient
}

// Client is the full Aurora API client surface.
type Client interface {
	DiscoveryClient
	DataClients
	TenantClients
	DispatchClients
	Auth() AuthClient
}

// TablesClient manages tenant data tables.
type TablesClient interface {
	List(ctx context.Context, query *Query) (*TableList, error)
	Get(ctx context.Context, slug string) (*Table, error)
	ForTable(slug string) TableHandle
}

// TableHandle scopes record and section-view operations to one table.
type TableHandle interface {
	Records() RecordsClient
	SectionViews() SectionViewsClient
}

// RecordsClient manages the records of one table.
type RecordsClient interface {
	List(ctx context.Context, query *Query) (*RecordList, error)
	Get(ctx context.Context, id string) (*Record, error)
	Create(ctx context.Context, fields map[string]any) (*Record, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// SectionViewsClient lists the saved section views of one table.
type SectionViewsClient interface {
	List(ctx context.Context) (*SectionViewList, error)
}

// ViewsClient reads tenant-level saved views.
type ViewsClient interface {
	List(ctx context.Context, query *Query) (*ViewList, error)
	Get(ctx context.Context, id string) (*View, error)
}

// ReportsClient reads tenant-level saved reports.
type ReportsClient interface {
	List(ctx context.Context, query *Query) (*ReportList, error)
	Get(ctx context.Context, id string) (*Report, error)
}

// StoreClient reads the always-available store content surface.
type StoreClient interface {
	GetConfig(ctx context.Context) (*StoreConfig, error)
	ListPages(ctx context.Context, query *Query) (*PageList, error)
	GetPage(ctx context.Context, slug string) (*Page, error)
}

// SiteClient is the tenant site surface, gated by the "site" capability in
// discovery mode.
type SiteClient interface {
	Search(ctx context.Context, params *SiteSearchParams) (*SiteSearchResult, error)
	ListStores(ctx context.Context) (*SiteStoreList, error)
}

// StorefrontClient is the tenant commerce surface, gated by the "store"
// capability in discovery mode.
type StorefrontClient interface {
	DeliverySlots(ctx context.Context) (*DeliverySlotList, error)
	CreateCheckoutSession(ctx context.Context, request *CheckoutSessionRequest) (*CheckoutSession, error)
	AcmeCheckout(ctx context.Context, request *AcmeCheckoutRequest) (*AcmeCheckout, error)
	CompleteAcmeCheckout(ctx context.Context, request *AcmeCheckoutCompleteRequest) (*Order, error)
}

// HolmesClient is the tenant inference surface, gated by the "holmes"
// capability in discovery mode.
type HolmesClient interface {
	Infer(ctx context.Context, params *InferParams) (*Inference, error)
}

// AuthClient manages application users. SignIn, SignUp, and ListUsers operate
// with the tenant API key; Session and SignOut operate on a user bearer token
// and send no API key at all.
type AuthClient interface {
	SignIn(ctx context.Context, request *SignInRequest) (*Session, error)
	SignUp(ctx context.Context, request *SignUpRequest) (*Session, error)
	ListUsers(ctx context.Context, query *Query) (*UserList, error)
	Session(ctx context.Context, token string) (*Session, error)
	SignOut(ctx context.Context, token string) error
}

// EventsClient tracks analytics events through the spec-resolved base URL.
type EventsClient interface {
	Track(ctx context.Context, event *Event) error
}

// WebhooksClient forwards inbound webhook deliveries through the spec-resolved
// base URL.
type WebhooksClient interface {
	Inbound(ctx context.Context, payload *WebhookPayload) (*WebhookResult, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an aurora.Client.
//
// # Tenant addressing modes
//
// Exactly one mode is selected at construction:
//  1. TenantSlug set: tenant-scoped operations address
//     /api/tenants/{TenantSlug}/... directly, with no capability gating.
//  2. DiscoverTenant true (and TenantSlug empty): the slug is taken from the
//     cached capability document, and every tenant-scoped call is gated on the
//     corresponding feature flag.
//  3. Neither: tenant-scoped operations fail synchronously with
//     ErrTenantSlugRequired before any network call.
//
// # Timeouts and retries
//
// The client applies no timeout and never retries; a non-success response is a
// terminal failure. Use the context passed to each call for cancellation.
type Config struct {
	// Endpoint: base URL for the Aurora API (e.g., "https://api.example.com").
	// auroraclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	Endpoint string

	// APIKey: tenant API key sent as X-Api-Key on every request except the
	// bearer-token session operations.
	APIKey string

	// TenantSlug: tenant addressed by tenant-scoped operations. Leave empty to
	// use capability discovery instead (see DiscoverTenant).
	TenantSlug string

	// DiscoverTenant: resolve the tenant slug from /v1/capabilities and gate
	// tenant-scoped operations on feature flags. Ignored when TenantSlug is set.
	DiscoverTenant bool

	// SpecURL: full URL of the tenant's spec document. If empty, the document
	// is fetched from Endpoint + "/v1/openapi.json".
	SpecURL string

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
