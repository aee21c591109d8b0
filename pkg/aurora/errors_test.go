package aurora_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "json body with error field",
			status:   401,
			body:     `{"error": "Invalid API key"}`,
			expected: "Aurora API 401: Invalid API key",
		},
		{
			name:     "json body without error field",
			status:   422,
			body:     `{"detail": "missing field"}`,
			expected: `Aurora API 422: {"detail": "missing field"}`,
		},
		{
			name:     "non-json body",
			status:   500,
			body:     "upstream exploded",
			expected: "Aurora API 500: upstream exploded",
		},
		{
			name:     "empty body falls back to status text",
			status:   503,
			body:     "",
			expected: "Aurora API 503: Service Unavailable",
		},
		{
			name:     "json body with empty error field",
			status:   500,
			body:     `{"error": ""}`,
			expected: `Aurora API 500: {"error": ""}`,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := aurora.NewAPIError(testCase.status, []byte(testCase.body))
			assert.Equal(t, testCase.expected, err.Error())
			assert.Equal(t, testCase.status, err.Status)
		})
	}
}

func TestCapabilityError_Message(t *testing.T) {
	t.Parallel()

	err := &aurora.CapabilityError{Feature: aurora.FeatureHolmes, DisplayName: "Holmes"}

	assert.Contains(t, err.Error(), "Holmes is not available.")
	assert.Contains(t, err.Error(), "Check client.capabilities()")
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting table: %w", aurora.NewAPIError(404, nil))
	unauthorized := fmt.Errorf("listing: %w", aurora.NewAPIError(401, nil))
	forbidden := aurora.NewAPIError(403, nil)
	gated := fmt.Errorf("searching: %w", &aurora.CapabilityError{Feature: "site", DisplayName: "Site"})

	assert.True(t, aurora.IsNotFound(notFound))
	assert.False(t, aurora.IsNotFound(unauthorized))
	assert.True(t, aurora.IsUnauthorized(unauthorized))
	assert.True(t, aurora.IsForbidden(forbidden))
	assert.True(t, aurora.IsCapabilityUnavailable(gated))
	assert.False(t, aurora.IsCapabilityUnavailable(notFound))
	assert.False(t, aurora.IsNotFound(errors.New("some error")))
}

func TestCapabilities_Has(t *testing.T) {
	t.Parallel()

	caps := &aurora.Capabilities{
		TenantSlug: "acme",
		Features:   map[string]bool{"site": true, "store": false},
	}

	assert.True(t, caps.Has(aurora.FeatureSite))
	assert.False(t, caps.Has(aurora.FeatureStore))
	assert.False(t, caps.Has(aurora.FeatureHolmes))

	var nilCaps *aurora.Capabilities

	assert.False(t, nilCaps.Has(aurora.FeatureSite))
}
