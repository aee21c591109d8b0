package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-io/aurora-go/internal/client"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

func TestClient_Capabilities_FetchedOnceAndCached(t *testing.T) {
	t.Parallel()

	var fetches int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/capabilities", request.URL.Path)
		atomic.AddInt64(&fetches, 1)

		_ = json.NewEncoder(writer).Encode(aurora.Capabilities{
			TenantSlug: "acme",
			Features:   map[string]bool{"site": true, "store": false},
		})
	}))
	defer server.Close()

	c := newDiscoveryClient(t, server.URL)

	first, err := c.Capabilities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acme", first.TenantSlug)
	assert.True(t, first.Has("site"))
	assert.False(t, first.Has("store"))
	assert.False(t, first.Has("holmes"))

	second, err := c.Capabilities(context.Background())
	require.NoError(t, err)

	// Same cached value, one network fetch total.
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fetches))
}

func TestClient_Capabilities_ErrorIsNotCached(t *testing.T) {
	t.Parallel()

	var fetches int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if atomic.AddInt64(&fetches, 1) == 1 {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"error": "boom"}`))

			return
		}

		_ = json.NewEncoder(writer).Encode(aurora.Capabilities{TenantSlug: "acme"})
	}))
	defer server.Close()

	c := newDiscoveryClient(t, server.URL)

	_, err := c.Capabilities(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Aurora API 500: boom")

	caps, err := c.Capabilities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acme", caps.TenantSlug)
	assert.Equal(t, int64(2), atomic.LoadInt64(&fetches))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Spec(t *testing.T) {
	t.Parallel()
	t.Run("fetched once and cached on success", func(t *testing.T) {
		t.Parallel()

		var fetches int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/openapi.json", request.URL.Path)
			atomic.AddInt64(&fetches, 1)

			_ = json.NewEncoder(writer).Encode(aurora.SpecDocument{
				SchemaVersion: "3.1.0",
				Servers:       []aurora.SpecServer{{URL: "https://api.acme.example/v2/"}},
			})
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		first, err := c.Spec(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "3.1.0", first.SchemaVersion)

		second, err := c.Spec(context.Background())
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, int64(1), atomic.LoadInt64(&fetches))
	})

	t.Run("failure is retried by the next call", func(t *testing.T) {
		t.Parallel()

		var fetches int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt64(&fetches, 1) == 1 {
				writer.WriteHeader(http.StatusNotFound)
				_, _ = writer.Write([]byte(`{"error": "Not Found"}`))

				return
			}

			_ = json.NewEncoder(writer).Encode(aurora.SpecDocument{SchemaVersion: "3.1.0"})
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		_, err := c.Spec(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, aurora.ErrSpecUnavailable)

		doc, err := c.Spec(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "3.1.0", doc.SchemaVersion)

		_, err = c.Spec(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), atomic.LoadInt64(&fetches))
	})

	t.Run("dedicated spec URL overrides the endpoint", func(t *testing.T) {
		t.Parallel()

		specServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(aurora.SpecDocument{SchemaVersion: "3.0.3"})
		}))
		defer specServer.Close()

		c, err := client.New(&aurora.Config{
			Endpoint:   "https://unreachable.invalid",
			APIKey:     testAPIKey,
			TenantSlug: "acme",
			SpecURL:    specServer.URL,
		})
		require.NoError(t, err)

		doc, err := c.Spec(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", doc.SchemaVersion)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Search(t *testing.T) {
	t.Parallel()
	t.Run("dispatches to the first spec server", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)

		defer server.Close()

		mux.HandleFunc("/v1/openapi.json", func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(aurora.SpecDocument{
				SchemaVersion: "3.1.0",
				Servers:       []aurora.SpecServer{{URL: server.URL + "/edge/"}},
			})
		})
		mux.HandleFunc("/edge/search", func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "q=milk&limit=20", request.URL.RawQuery)

			_ = json.NewEncoder(writer).Encode(aurora.SearchResult{
				Hits:  []aurora.SearchHit{{ID: "r1", Title: "Oat milk"}},
				Total: 1,
			})
		})

		c := newSlugClient(t, server.URL, "acme")

		result, err := c.Search(context.Background(), &aurora.SearchParams{Q: "milk", Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		require.Len(t, result.Hits, 1)
		assert.Equal(t, "Oat milk", result.Hits[0].Title)
	})

	t.Run("falls back to endpoint plus v1 when the spec is unavailable", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)

		defer server.Close()

		mux.HandleFunc("/v1/openapi.json", func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		})
		mux.HandleFunc("/v1/search", func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "q=milk", request.URL.RawQuery)

			_ = json.NewEncoder(writer).Encode(aurora.SearchResult{Total: 0})
		})

		c := newSlugClient(t, server.URL, "acme")

		result, err := c.Search(context.Background(), &aurora.SearchParams{Q: "milk"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
	})

	t.Run("falls back when the spec has no servers", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)

		defer server.Close()

		mux.HandleFunc("/v1/openapi.json", func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(aurora.SpecDocument{SchemaVersion: "3.1.0"})
		})
		mux.HandleFunc("/v1/search", func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(aurora.SearchResult{Total: 3})
		})

		c := newSlugClient(t, server.URL, "acme")

		result, err := c.Search(context.Background(), &aurora.SearchParams{Q: "anything"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
	})
}

func TestClient_Me(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	defer server.Close()

	mux.HandleFunc("/v1/openapi.json", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/v1/me", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "user-123", request.Header.Get("X-User-Id"))

		_ = json.NewEncoder(writer).Encode(aurora.User{ID: "user-123", Email: "jo@example.com"})
	})

	c := newSlugClient(t, server.URL, "acme")

	user, err := c.Me(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", user.Email)
}

func TestClient_ProvisionSchema(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/v1/provision-schema", request.URL.Path)

		var body aurora.ProvisionSchemaRequest

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "grocery", body.Template)

		_ = json.NewEncoder(writer).Encode(aurora.ProvisionSchemaResult{
			TenantSlug: "acme",
			Tables:     []string{"products", "orders"},
			Created:    true,
		})
	}))
	defer server.Close()

	c := newSlugClient(t, server.URL, "acme")

	result, err := c.ProvisionSchema(context.Background(), &aurora.ProvisionSchemaRequest{Template: "grocery"})
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, []string{"products", "orders"}, result.Tables)
}

func TestClient_APIErrorShape(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusForbidden)
		_, _ = writer.Write([]byte(`{"error": "insufficient scope"}`))
	}))
	defer server.Close()

	c := newSlugClient(t, server.URL, "acme")

	_, err := c.Tables().List(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Aurora API 403: insufficient scope")
	assert.True(t, aurora.IsForbidden(err))

	apiErr := &aurora.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.Status)
}
