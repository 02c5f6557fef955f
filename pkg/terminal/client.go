package terminal

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

// Defaults applied by terminalclient.New when the corresponding Config field is empty.
const (
	DefaultBaseURL    = constants.DefaultBaseURL
	DefaultAPIVersion = constants.DefaultAPIVersion
)

// HardwareSKUsClient reads the SKU catalog.
type HardwareSKUsClient interface {
	List(ctx context.Context, params *HardwareSKUListParams) (*ListResponse[HardwareSKU], error)
	Get(ctx context.Context, id string) (*HardwareSKU, error)
}

// HardwareProductsClient reads hardware products.
type HardwareProductsClient interface {
	List(ctx context.Context, params *HardwareProductListParams) (*ListResponse[HardwareProduct], error)
	Get(ctx context.Context, id string) (*HardwareProduct, error)
}

// ShippingMethodsClient reads shipping methods.
type ShippingMethodsClient interface {
	List(ctx context.Context, params *ShippingMethodListParams) (*ListResponse[ShippingMethod], error)
	Get(ctx context.Context, id string) (*ShippingMethod, error)
}

// HardwareOrdersClient creates and reads hardware orders.
type HardwareOrdersClient interface {
	Create(ctx context.Context, params *HardwareOrderCreateParams) (*HardwareOrder, error)
	// Preview computes totals for params without creating an order.
	Preview(ctx context.Context, params *HardwareOrderCreateParams) (*HardwareOrder, error)
	Get(ctx context.Context, id string) (*HardwareOrder, error)
	List(ctx context.Context, params *HardwareOrderListParams) (*ListResponse[HardwareOrder], error)
	Cancel(ctx context.Context, id string) (*HardwareOrder, error)
}

// TestHelpersClient advances sandbox orders through their lifecycle. It only
// works with test mode keys.
type TestHelpersClient interface {
	MarkReadyToShip(ctx context.Context, id string) (*HardwareOrder, error)
	Ship(ctx context.Context, id string, params *ShipParams) (*HardwareOrder, error)
	Deliver(ctx context.Context, id string) (*HardwareOrder, error)
	MarkUndeliverable(ctx context.Context, id string) (*HardwareOrder, error)
}

// Client provides access to all resource clients. Implementations are safe
// for concurrent use.
type Client interface {
	HardwareSKUs() HardwareSKUsClient
	HardwareProducts() HardwareProductsClient
	ShippingMethods() ShippingMethodsClient
	HardwareOrders() HardwareOrdersClient
	TestHelpers() TestHelpersClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Paths holds the base path of each resource.
type Paths struct {
	HardwareSKUs              string `json:"hardware_skus"                yaml:"hardware_skus"`
	HardwareProducts          string `json:"hardware_products"            yaml:"hardware_products"`
	ShippingMethods           string `json:"shipping_methods"             yaml:"shipping_methods"`
	HardwareOrders            string `json:"hardware_orders"              yaml:"hardware_orders"`
	TestHelpersHardwareOrders string `json:"test_helpers_hardware_orders" yaml:"test_helpers_hardware_orders"`
}

// DefaultPaths returns the paths of the public API.
func DefaultPaths() Paths {
	return Paths{
		HardwareSKUs:              constants.HardwareSKUsPath,
		HardwareProducts:          constants.HardwareProductsPath,
		ShippingMethods:           constants.HardwareShippingMethodsPath,
		HardwareOrders:            constants.HardwareOrdersPath,
		TestHelpersHardwareOrders: constants.TestHelpersHardwareOrdersPath,
	}
}

// WithDefaults fills empty paths from DefaultPaths.
func (p Paths) WithDefaults() Paths {
	defaults := DefaultPaths()

	if p.HardwareSKUs == "" {
		p.HardwareSKUs = defaults.HardwareSKUs
	}

	if p.HardwareProducts == "" {
		p.HardwareProducts = defaults.HardwareProducts
	}

	if p.ShippingMethods == "" {
		p.ShippingMethods = defaults.ShippingMethods
	}

	if p.HardwareOrders == "" {
		p.HardwareOrders = defaults.HardwareOrders
	}

	if p.TestHelpersHardwareOrders == "" {
		p.TestHelpersHardwareOrders = defaults.TestHelpersHardwareOrders
	}

	return p
}

// Config represents client configuration for building a terminal.Client.
//
// All values are read once by terminalclient.New; changing a Config after the
// client is built has no effect on it.
type Config struct {
	// APIKey: secret key sent as the basic auth user name. Required.
	APIKey string
	// APIVersion: value of the version header. Defaults to DefaultAPIVersion.
	APIVersion string
	// BaseURL: API host. Defaults to DefaultBaseURL. A trailing slash is
	// trimmed and "https://" is added when no scheme is present.
	BaseURL string
	// Paths: resource base paths. Empty entries use DefaultPaths.
	Paths Paths
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Tracing: wraps the transport with OpenTelemetry client spans using the
	// global tracer provider.
	Tracing bool
}

// IsTestMode reports whether the configured key is a test mode secret key.
func (c *Config) IsTestMode() bool {
	return c != nil && strings.HasPrefix(c.APIKey, constants.TestKeyPrefix)
}
