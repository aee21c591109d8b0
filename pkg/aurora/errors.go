package aurora

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrAPIKeyRequired   = errors.New("API key is required")

	// ErrTenantSlugRequired is returned by tenant-scoped operations when the
	// client was constructed without a tenant slug and without capability
	// discovery. The message is part of the API contract.
	ErrTenantSlugRequired = errors.New("tenantSlug is required for this API.")

	// ErrSpecUnavailable wraps any failure to fetch or parse the tenant's spec
	// document. It is only surfaced from explicit Spec() calls; internal
	// base-URL resolution falls back silently.
	ErrSpecUnavailable = errors.New("spec document unavailable")
)

// APIError represents a non-success response from the Aurora API. It carries
// the HTTP status and a best-effort message derived from the response body.
type APIError struct {
	Status  int    `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface. The format is stable and asserted on
// by callers.
func (e *APIError) Error() string {
	return fmt.Sprintf("Aurora API %d: %s", e.Status, e.Message)
}

// NewAPIError normalizes a non-success response into an APIError.
//
// The body is JSON-parsed; if it is an object with a non-empty "error" field,
// that field becomes the message. Otherwise the raw body text is used, and if
// the body is empty the standard HTTP status text stands in.
func NewAPIError(status int, body []byte) *APIError {
	message := strings.TrimSpace(string(body))

	var payload struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	if message == "" {
		message = http.StatusText(status)
	}

	return &APIError{Status: status, Message: message}
}

// CapabilityError indicates a feature-gated operation was invoked for a tenant
// that does not have the feature enabled. It is produced before any request
// for the guarded operation is issued.
type CapabilityError struct {
	Feature     string
	DisplayName string
}

// Error implements the error interface. The message is part of the API
// contract.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf(
		"%s is not available. This tenant may not have the relevant template installed. "+
			"Check client.capabilities() to see what features are enabled.",
		e.DisplayName,
	)
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// IsCapabilityUnavailable checks if the error came from the capability gate.
func IsCapabilityUnavailable(err error) bool {
	capErr := &CapabilityError{}

	return errors.As(err, &capErr)
}
