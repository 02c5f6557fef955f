// Package terminal provides types, interfaces, and helpers for ordering
// Terminal card-reader hardware.
//
// # Overview
//
// The terminal package defines the resource types (HardwareSKU,
// HardwareProduct, ShippingMethod, HardwareOrder) and the interfaces of the
// resource clients. A concrete implementation is provided by the
// terminalclient package, which wires configuration, transport and
// authentication. Most consumers import terminalclient to construct a client
// and then use the interfaces declared here.
//
// Getting a client
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
//	  cli, err := terminalclient.New(&terminal.Config{APIKey: "sk_test_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  skus, err := cli.HardwareSKUs().List(ctx, &terminal.HardwareSKUListParams{Country: "US"})
//	  if err != nil { log.Fatal(err) }
//	  _ = skus
//	}
//
// # Ordering
//
// NewHardwareOrderCreateParams validates an order before any request is made:
//
//	params, err := terminal.NewHardwareOrderCreateParams(
//	  "thsm_123",
//	  &terminal.ShippingDetails{Name: "Jenny Rosen", Email: "jenny@example.com", Phone: "+15555550123",
//	    Address: &terminal.Address{Line1: "1 Main St", PostalCode: "94107", Country: "US"}},
//	  []terminal.HardwareOrderItem{terminal.NewHardwareOrderItem("thsku_123", 2)},
//	  terminal.WithPONumber("PO-1"),
//	)
//	order, err := cli.HardwareOrders().Create(ctx, params)
//
// Fields such as HardwareOrderItem.TerminalHardwareSKU are Expandable: the API
// may return an id or the full object, and ID returns the identifier either way.
//
// # Errors
//
// Failed calls return a *APIError, reachable with errors.As or AsAPIError.
// A StatusCode of 0 means no response was received (IsTransportError). Other
// helpers: IsNotFound, IsUnauthorized, IsCardError, IsInvalidRequest.
package terminal
