// Package aurora provides types, interfaces, and helpers for working with the
// Aurora multi-tenant platform API.
//
// # Overview
//
// The aurora package defines the domain types (e.g., Table, Record, Page,
// CheckoutSession) and the interfaces for resource-oriented clients (e.g.,
// TablesClient, SiteClient, AuthClient). A concrete implementation of these
// clients is provided by the auroraclient package, which wires configuration,
// transport, capability discovery, and spec-driven dispatch. Most consumers
// should import auroraclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/aurora-io/aurora-go/pkg/aurora"
//	  "github.com/aurora-io/aurora-go/pkg/auroraclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := auroraclient.New(&aurora.Config{
//	    Endpoint: "https://api.example.com",
//	    APIKey:   "ak_live_...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  tables, err := cli.Tables().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = tables
//	}
//
// # Tenant addressing
//
// Tenant-scoped operations (site search, storefront, Holmes inference) address
// routes under /api/tenants/{slug}. The slug comes from one of two modes,
// selected at construction: supply Config.TenantSlug directly, or set
// Config.DiscoverTenant to resolve the slug from the tenant's capability
// document. In discovery mode each tenant-scoped call is additionally gated on
// the corresponding feature flag; a disabled feature fails before any request
// for the operation is issued.
//
// # Queries
//
// Query builds URL query strings. Unlike url.Values it preserves insertion
// order and drops empty values, matching the serialization the Aurora API
// expects:
//
//	q := aurora.NewQuery().Set("q", "milk").SetInt("limit", 20)
//	// q.Encode() == "?q=milk&limit=20"
//
// # Errors
//
// API errors are represented by APIError; capability gating failures by
// CapabilityError. Helpers such as IsNotFound, IsUnauthorized, and
// IsCapabilityUnavailable make it easy to branch on common cases. No call is
// retried and no deadline is applied by the client; cancellation is controlled
// solely by the caller's context.
package aurora
