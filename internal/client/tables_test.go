package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-io/aurora-go/pkg/aurora"
)

func TestTablesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/tables", request.URL.Path)
		assert.Equal(t, testAPIKey, request.Header.Get("X-Api-Key"))

		_ = json.NewEncoder(writer).Encode(aurora.TableList{
			Tables: []aurora.Table{
				{ID: "t1", Slug: "products", Name: "Products"},
				{ID: "t2", Slug: "orders", Name: "Orders"},
			},
		})
	}))
	defer server.Close()

	c := newSlugClient(t, server.URL, "acme")

	list, err := c.Tables().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Tables, 2)
	assert.Equal(t, "products", list.Tables[0].Slug)
}

func TestTablesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/tables/products", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(aurora.Table{
			ID:   "t1",
			Slug: "products",
			Name: "Products",
			Fields: []aurora.TableField{
				{Key: "name", Label: "Name", Type: "text", Required: true},
				{Key: "price", Label: "Price", Type: "number"},
			},
		})
	}))
	defer server.Close()

	c := newSlugClient(t, server.URL, "acme")

	table, err := c.Tables().Get(context.Background(), "products")
	require.NoError(t, err)
	assert.Equal(t, "Products", table.Name)
	require.Len(t, table.Fields, 2)
	assert.True(t, table.Fields[0].Required)
}

func TestTablesClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": "table not found"}`))
	}))
	defer server.Close()

	c := newSlugClient(t, server.URL, "acme")

	_, err := c.Tables().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, aurora.IsNotFound(err))
	assert.Contains(t, err.Error(), "Aurora API 404: table not found")
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRecordsClient_CRUD(t *testing.T) {
	t.Parallel()
	t.Run("list with query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/tables/products/records", request.URL.Path)
			assert.Equal(t, "limit=50&cursor=abc", request.URL.RawQuery)

			_ = json.NewEncoder(writer).Encode(aurora.RecordList{
				Records: []aurora.Record{{ID: "r1", Fields: map[string]any{"name": "Oat milk"}}},
				Total:   1,
			})
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		query := aurora.NewQuery().SetInt("limit", 50).Set("cursor", "abc")

		list, err := c.Tables().ForTable("products").Records().List(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
		require.Len(t, list.Records, 1)
		assert.Equal(t, "Oat milk", list.Records[0].Fields["name"])
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/tables/products/records/r1", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(aurora.Record{ID: "r1"})
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		record, err := c.Tables().ForTable("products").Records().Get(context.Background(), "r1")
		require.NoError(t, err)
		assert.Equal(t, "r1", record.ID)
	})

	t.Run("create posts the fields as the body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/v1/tables/products/records", request.URL.Path)

			var body map[string]any

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Oat milk", body["name"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(aurora.Record{
				ID:     "r1",
				Fields: map[string]any{"name": "Oat milk"},
			})
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		record, err := c.Tables().ForTable("products").Records().Create(context.Background(), map[string]any{"name": "Oat milk"})
		require.NoError(t, err)
		assert.Equal(t, "r1", record.ID)
	})

	t.Run("update patches the record", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)
			assert.Equal(t, "/v1/tables/products/records/r1", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(aurora.Record{
				ID:     "r1",
				Fields: map[string]any{"price": float64(299)},
			})
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		record, err := c.Tables().ForTable("products").Records().Update(context.Background(), "r1", map[string]any{"price": 299})
		require.NoError(t, err)
		assert.Equal(t, float64(299), record.Fields["price"])
	})

	t.Run("delete accepts 204", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/v1/tables/products/records/r1", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c := newSlugClient(t, server.URL, "acme")

		err := c.Tables().ForTable("products").Records().Delete(context.Background(), "r1")
		require.NoError(t, err)
	})
}

func TestSectionViewsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/tables/products/section-views", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(aurora.SectionViewList{
			Views: []aurora.SectionView{{ID: "sv1", Name: "In stock", TableSlug: "products"}},
		})
	}))
	defer server.Close()

	c := newSlugClient(t, server.URL, "acme")

	list, err := c.Tables().ForTable("products").SectionViews().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Views, 1)
	assert.Equal(t, "In stock", list.Views[0].Name)
}
