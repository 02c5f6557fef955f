// Package terminalclient provides the primary entry point for constructing a
// Terminal hardware ordering client that implements the terminal.Client
// interface.
//
// It layers configuration defaults and the HTTP transport on top of the
// resource interfaces and types defined in the terminal package. Most
// applications import terminalclient to build a client, then use the returned
// terminal.Client to reach the resource clients: HardwareSKUs(),
// HardwareProducts(), ShippingMethods(), HardwareOrders() and TestHelpers().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
//	  "github.com/fivetwenty-io/terminal-hardware/pkg/terminalclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a secret key against the public API.
//	  cli, err := terminalclient.NewWithKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or against a mock server with a pinned API version:
//	  cli, err = terminalclient.New(&terminal.Config{
//	    APIKey:     "sk_test_...",
//	    BaseURL:    "localhost:12111",
//	    APIVersion: "2024-06-20",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  methods, err := cli.ShippingMethods().List(ctx, &terminal.ShippingMethodListParams{Country: "US"})
//	  if err != nil { log.Fatal(err) }
//	  _ = methods
//	}
//
// # Base URL
//
// An empty BaseURL selects terminal.DefaultBaseURL. Trailing slashes are
// trimmed and a host without a scheme gets "https://".
//
// # Sandbox
//
// TestHelpers() only succeeds with test mode keys (prefix "sk_test_"); use
// terminal.Config.IsTestMode to check before calling it.
package terminalclient
