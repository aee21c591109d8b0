package aurora

import (
	"time"
)

// Feature flag names known to the platform. Absent flags are disabled.
const (
	FeatureSite   = "site"
	FeatureStore  = "store"
	FeatureHolmes = "holmes"
)

// Capabilities describes what is provisioned for a tenant. It is fetched once
// per client instance from /v1/capabilities and cached for the instance's
// lifetime.
type Capabilities struct {
	TenantSlug string          `json:"tenantSlug" yaml:"tenantSlug"`
	Features   map[string]bool `json:"features"   yaml:"features"`
}

// Has reports whether the named feature flag is present and enabled.
func (c *Capabilities) Has(feature string) bool {
	if c == nil {
		return false
	}

	return c.Features[feature]
}

// SpecDocument is the tenant's published API spec. The first server entry is
// authoritative for spec-driven dispatch.
type SpecDocument struct {
	SchemaVersion string                  `json:"openapi" yaml:"openapi"`
	Servers       []SpecServer            `json:"servers" yaml:"servers"`
	Paths         map[string]SpecPathItem `json:"paths"   yaml:"paths"`
}

// SpecServer is a server entry in the spec document.
type SpecServer struct {
	URL         string `json:"url"                   yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SpecPathItem maps lowercase HTTP methods to operation metadata.
type SpecPathItem map[string]SpecOperation

// SpecOperation is the per-operation metadata carried by the spec document.
type SpecOperation struct {
	OperationID string   `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string   `json:"summary,omitempty"     yaml:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// Table describes a tenant data table.
type Table struct {
	ID          string       `json:"id"                    yaml:"id"`
	Slug        string       `json:"slug"                  yaml:"slug"`
	Name        string       `json:"name"                  yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []TableField `json:"fields,omitempty"      yaml:"fields,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"             yaml:"updatedAt"`
}

// TableField describes one column of a table.
type TableField struct {
	Key      string `json:"key"                yaml:"key"`
	Label    string `json:"label"              yaml:"label"`
	Type     string `json:"type"               yaml:"type"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// TableList is the response of the tables listing.
type TableList struct {
	Tables []Table `json:"tables" yaml:"tables"`
}

// Record is a single row in a table. Field values are keyed by the table's
// field keys and are not validated client-side.
type Record struct {
	ID        string         `json:"id"        yaml:"id"`
	Fields    map[string]any `json:"fields"    yaml:"fields"`
	CreatedAt time.Time      `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" yaml:"updatedAt"`
}

// RecordList is a page of records.
type RecordList struct {
	Records []Record `json:"records" yaml:"records"`
	Total   int      `json:"total"   yaml:"total"`
}

// SectionView is a saved, named slice of a table's records.
type SectionView struct {
	ID        string `json:"id"        yaml:"id"`
	Name      string `json:"name"      yaml:"name"`
	TableSlug string `json:"tableSlug" yaml:"tableSlug"`
	Filter    string `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// SectionViewList is the response of the section views listing.
type SectionViewList struct {
	Views []SectionView `json:"views" yaml:"views"`
}

// View is a tenant-level saved view.
type View struct {
	ID        string    `json:"id"        yaml:"id"`
	Name      string    `json:"name"      yaml:"name"`
	TableSlug string    `json:"tableSlug" yaml:"tableSlug"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// ViewList is the response of the views listing.
type ViewList struct {
	Views []View `json:"views" yaml:"views"`
}

// Report is a tenant-level saved report.
type Report struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"             yaml:"createdAt"`
}

// ReportList is the response of the reports listing.
type ReportList struct {
	Reports []Report `json:"reports" yaml:"reports"`
}

// StoreConfig is the always-available storefront content configuration.
type StoreConfig struct {
	Name       string            `json:"name"                 yaml:"name"`
	Currency   string            `json:"currency"             yaml:"currency"`
	Locale     string            `json:"locale,omitempty"     yaml:"locale,omitempty"`
	Theme      map[string]string `json:"theme,omitempty"      yaml:"theme,omitempty"`
	HomePage   string            `json:"homePage,omitempty"   yaml:"homePage,omitempty"`
	ContactURL string            `json:"contactUrl,omitempty" yaml:"contactUrl,omitempty"`
}

// Page is a published store content page.
type Page struct {
	Slug      string    `json:"slug"           yaml:"slug"`
	Title     string    `json:"title"          yaml:"title"`
	Body      string    `json:"body,omitempty" yaml:"body,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"      yaml:"updatedAt"`
}

// PageList is the response of the pages listing.
type PageList struct {
	Pages []Page `json:"pages" yaml:"pages"`
}

// ProvisionSchemaRequest asks the platform to provision a schema template for
// the tenant. The operation is idempotent server-side.
type ProvisionSchemaRequest struct {
	Template string `json:"template"         yaml:"template"`
	DryRun   bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
}

// ProvisionSchemaResult reports what the provisioning run created.
type ProvisionSchemaResult struct {
	TenantSlug string   `json:"tenantSlug"       yaml:"tenantSlug"`
	Tables     []string `json:"tables,omitempty" yaml:"tables,omitempty"`
	Created    bool     `json:"created"          yaml:"created"`
}

// SiteSearchParams are the parameters of a tenant site search.
type SiteSearchParams struct {
	Q     string
	Limit int
}

// SiteSearchHit is one result of a tenant site search.
type SiteSearchHit struct {
	ID      string  `json:"id"                yaml:"id"`
	Type    string  `json:"type"              yaml:"type"`
	Title   string  `json:"title"             yaml:"title"`
	Snippet string  `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Score   float64 `json:"score,omitempty"   yaml:"score,omitempty"`
}

// SiteSearchResult is the response of a tenant site search.
type SiteSearchResult struct {
	Hits  []SiteSearchHit `json:"hits"  yaml:"hits"`
	Total int             `json:"total" yaml:"total"`
}

// SiteStore describes one physical or virtual store location of the tenant.
type SiteStore struct {
	ID      string `json:"id"                yaml:"id"`
	Name    string `json:"name"              yaml:"name"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// SiteStoreList is the response of the site stores listing.
type SiteStoreList struct {
	Stores []SiteStore `json:"stores" yaml:"stores"`
}

// DeliverySlot is a bookable delivery window.
type DeliverySlot struct {
	ID        string    `json:"id"        yaml:"id"`
	StartsAt  time.Time `json:"startsAt"  yaml:"startsAt"`
	EndsAt    time.Time `json:"endsAt"    yaml:"endsAt"`
	Available bool      `json:"available" yaml:"available"`
}

// DeliverySlotList is the response of the delivery slots listing.
type DeliverySlotList struct {
	Slots []DeliverySlot `json:"slots" yaml:"slots"`
}

// CheckoutItem is one line of a checkout session.
type CheckoutItem struct {
	SKU      string `json:"sku"      yaml:"sku"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// CheckoutSessionRequest creates a checkout session.
type CheckoutSessionRequest struct {
	Items          []CheckoutItem `json:"items"                    yaml:"items"`
	DeliverySlotID string         `json:"deliverySlotId,omitempty" yaml:"deliverySlotId,omitempty"`
	CustomerEmail  string         `json:"customerEmail,omitempty"  yaml:"customerEmail,omitempty"`
}

// CheckoutSession is an open checkout session.
type CheckoutSession struct {
	ID        string    `json:"id"        yaml:"id"`
	Status    string    `json:"status"    yaml:"status"`
	Total     int64     `json:"total"     yaml:"total"`
	Currency  string    `json:"currency"  yaml:"currency"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
}

// AcmeCheckoutRequest starts an ACME-provider checkout for a session.
type AcmeCheckoutRequest struct {
	SessionID string `json:"sessionId"           yaml:"sessionId"`
	ReturnURL string `json:"returnUrl,omitempty" yaml:"returnUrl,omitempty"`
}

// AcmeCheckout is the provider-side handle of an ACME checkout.
type AcmeCheckout struct {
	CheckoutID  string `json:"checkoutId"  yaml:"checkoutId"`
	RedirectURL string `json:"redirectUrl" yaml:"redirectUrl"`
	Status      string `json:"status"      yaml:"status"`
}

// AcmeCheckoutCompleteRequest finalizes an ACME checkout.
type AcmeCheckoutCompleteRequest struct {
	CheckoutID string `json:"checkoutId" yaml:"checkoutId"`
	PaymentRef string `json:"paymentRef" yaml:"paymentRef"`
}

// Order is the confirmed result of a completed checkout.
type Order struct {
	ID        string    `json:"id"        yaml:"id"`
	Status    string    `json:"status"    yaml:"status"`
	Total     int64     `json:"total"     yaml:"total"`
	Currency  string    `json:"currency"  yaml:"currency"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// InferParams are the parameters of a Holmes inference call.
type InferParams struct {
	Query string
	Mode  string
}

// Inference is the response of a Holmes inference call.
type Inference struct {
	Answer     string   `json:"answer"               yaml:"answer"`
	Confidence float64  `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Sources    []string `json:"sources,omitempty"    yaml:"sources,omitempty"`
}

// SearchParams are the parameters of a spec-resolved search.
type SearchParams struct {
	Q     string
	Limit int
}

// SearchHit is one result of a spec-resolved search.
type SearchHit struct {
	ID    string  `json:"id"              yaml:"id"`
	Title string  `json:"title"           yaml:"title"`
	Score float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// SearchResult is the response of a spec-resolved search.
type SearchResult struct {
	Hits  []SearchHit `json:"hits"  yaml:"hits"`
	Total int         `json:"total" yaml:"total"`
}

// User is an application user of the tenant.
type User struct {
	ID        string    `json:"id"             yaml:"id"`
	Email     string    `json:"email"          yaml:"email"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"      yaml:"createdAt"`
}

// UserList is the response of the users listing.
type UserList struct {
	Users []User `json:"users" yaml:"users"`
	Total int    `json:"total" yaml:"total"`
}

// SignInRequest authenticates an application user.
type SignInRequest struct {
	Email    string `json:"email"    yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// SignUpRequest registers a new application user.
type SignUpRequest struct {
	Email    string `json:"email"          yaml:"email"`
	Password string `json:"password"       yaml:"password"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Session is an authenticated user session. Token is the bearer token used by
// Session() and SignOut().
type Session struct {
	Token     string    `json:"token"     yaml:"token"`
	User      User      `json:"user"      yaml:"user"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
}

// Event is an analytics event tracked through the spec-resolved /events route.
type Event struct {
	Name       string         `json:"name"                 yaml:"name"`
	UserID     string         `json:"userId,omitempty"     yaml:"userId,omitempty"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// WebhookPayload is an inbound webhook delivery forwarded to the platform.
type WebhookPayload struct {
	Source string         `json:"source"         yaml:"source"`
	Type   string         `json:"type,omitempty" yaml:"type,omitempty"`
	Data   map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// WebhookResult acknowledges an inbound webhook delivery.
type WebhookResult struct {
	Accepted bool   `json:"accepted"     yaml:"accepted"`
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
}
