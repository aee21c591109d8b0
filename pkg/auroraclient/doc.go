// Package auroraclient provides the primary entry point for constructing an
// Aurora API client that implements the aurora.Client interface.
//
// It layers configuration normalization and the HTTP transport on top of the
// resource interfaces and types defined in the aurora package. Most
// applications should import auroraclient to build a client, then use the
// returned aurora.Client to access resource-specific clients, for example
// Tables(), Site(), Auth().
//
// Quick start
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
//
//	  // Tenant slug supplied directly: tenant-scoped routes are addressed
//	  // immediately, with no capability gating.
//	  cli, err := auroraclient.NewWithTenant("https://api.example.com", "ak_live_...", "acme")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or let the client discover the tenant from its capability document;
//	  // tenant-scoped calls are then gated on feature flags.
//	  cli, err = auroraclient.NewWithDiscovery("https://api.example.com", "ak_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  hits, err := cli.Site().Search(ctx, &aurora.SiteSearchParams{Q: "milk", Limit: 20})
//	  if err != nil { log.Fatal(err) }
//	  _ = hits
//	}
//
// The endpoint is normalized by trimming a trailing slash and defaulting the
// scheme to https. The convenience constructors NewWithTenant and
// NewWithDiscovery wrap New with the appropriate configuration.
package auroraclient
