// Package treasuryclient provides the primary entry point for constructing a
// treasury API client that implements the treasury.Client interface.
//
// It layers configuration, the retrying HTTP transport, basic authentication
// and optional response caching on top of the resource interfaces and types
// defined in the treasury package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/treasury-client/pkg/treasury"
//	  "github.com/fivetwenty-io/treasury-client/pkg/treasuryclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := treasuryclient.New(ctx, &treasury.Config{
//	    OrganizationID: "org-id",
//	    APIKey:         "api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.PaymentOrders().List(ctx, &treasury.PaymentOrderListParams{PerPage: 50})
//	  if err != nil { log.Fatal(err) }
//
//	  for order, err := range page.AutoPager().All(ctx) {
//	    if err != nil { log.Fatal(err) }
//	    log.Println(order.ID, order.Amount)
//	  }
//	}
//
// # Environment
//
// Empty Config fields fall back to TREASURY_ORGANIZATION_ID, TREASURY_API_KEY
// and TREASURY_BASE_URL. The base URL defaults to https://app.moderntreasury.com.
//
// # Helpers
//
// The package also provides the convenience constructors NewWithCredentials
// and NewFromEnv.
package treasuryclient
