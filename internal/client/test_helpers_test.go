package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurora-io/aurora-go/internal/client"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

const testAPIKey = "test-key"

// newSlugClient builds a client in slug-supplied mode against endpoint.
func newSlugClient(t *testing.T, endpoint, slug string) *client.Client {
	t.Helper()

	c, err := client.New(&aurora.Config{
		Endpoint:   endpoint,
		APIKey:     testAPIKey,
		TenantSlug: slug,
	})
	require.NoError(t, err)

	return c
}

// newDiscoveryClient builds a client that resolves its tenant slug and
// feature flags from the capability document.
func newDiscoveryClient(t *testing.T, endpoint string) *client.Client {
	t.Helper()

	c, err := client.New(&aurora.Config{
		Endpoint:       endpoint,
		APIKey:         testAPIKey,
		DiscoverTenant: true,
	})
	require.NoError(t, err)

	return c
}

// newKeyOnlyClient builds a client with neither a tenant slug nor discovery.
func newKeyOnlyClient(t *testing.T, endpoint string) *client.Client {
	t.Helper()

	c, err := client.New(&aurora.Config{
		Endpoint: endpoint,
		APIKey:   testAPIKey,
	})
	require.NoError(t, err)

	return c
}
