package constants

// Default request headers.
const (
	// HeaderAPIKey carries the tenant API key.
	HeaderAPIKey = "X-Api-Key"

	// HeaderUserID optionally scopes spec-resolved reads to one app user.
	HeaderUserID = "X-User-Id"

	// ContentTypeJSON is sent on every request.
	ContentTypeJSON = "application/json"
)

// Well-known API paths.
const (
	// CapabilitiesPath returns the tenant capability document.
	CapabilitiesPath = "/v1/capabilities"

	// SpecPath returns the tenant's published spec document.
	SpecPath = "/v1/openapi.json"

	// TenantPathPrefix prefixes every tenant-scoped route.
	TenantPathPrefix = "/api/tenants/"

	// DefaultDispatchSuffix is appended to the configured endpoint when no
	// spec document is published.
	DefaultDispatchSuffix = "/v1"
)

// Pagination and display limits.
const (
	// StandardPageSize is the common page size for API responses.
	StandardPageSize = 50

	// JSONIndentSize is the indent used for JSON and YAML CLI output.
	JSONIndentSize = 2
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
