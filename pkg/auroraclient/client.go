package auroraclient

import (
	"fmt"
	"strings"

	"github.com/aurora-io/aurora-go/internal/client"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// New creates a new Aurora API client from config.
func New(config *aurora.Config) (aurora.Client, error) {
	if config == nil {
		return nil, aurora.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, aurora.ErrEndpointRequired
	}

	if config.APIKey == "" {
		return nil, aurora.ErrAPIKeyRequired
	}

	// Normalize the endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	aclient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return aclient, nil
}

// NewWithTenant creates a client in tenant-slug-supplied mode: tenant-scoped
// operations address /api/tenants/{tenantSlug} directly, with no capability
// gating.
func NewWithTenant(endpoint, apiKey, tenantSlug string) (aurora.Client, error) {
	return New(&aurora.Config{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		TenantSlug: tenantSlug,
	})
}

// NewWithDiscovery creates a client in capability-discovered mode: the tenant
// slug comes from the cached capability document and tenant-scoped operations
// are gated on feature flags.
func NewWithDiscovery(endpoint, apiKey string) (aurora.Client, error) {
	return New(&aurora.Config{
		Endpoint:       endpoint,
		APIKey:         apiKey,
		DiscoverTenant: true,
	})
}
