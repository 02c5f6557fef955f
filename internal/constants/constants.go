package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultBaseURL is the API host used when none is configured.
	DefaultBaseURL = "https://api.stripe.com"

	// DefaultAPIVersion pins the API version including the hardware orders beta.
	DefaultAPIVersion = "2025-09-30.clover;terminal_hardware_orders_beta=v5"

	// DefaultUserAgent is sent when the caller does not set one.
	DefaultUserAgent = "terminal-hardware-go/1.0"

	// TestKeyPrefix marks secret keys that can call sandbox endpoints.
	TestKeyPrefix = "sk_test_"
)

// Resource base paths.
const (
	HardwareSKUsPath              = "/v1/terminal/hardware_skus"
	HardwareProductsPath          = "/v1/terminal/hardware_products"
	HardwareShippingMethodsPath   = "/v1/terminal/hardware_shipping_methods"
	HardwareOrdersPath            = "/v1/terminal/hardware_orders"
	TestHelpersHardwareOrdersPath = "/v1/test_helpers/terminal/hardware_orders"
)

// HTTP headers and content types.
const (
	HeaderAuthorization = "Authorization"
	HeaderAPIVersion    = "Stripe-Version"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"

	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)

// HTTP and network timeouts.
const (
	// ConnectTimeout bounds establishing a connection.
	ConnectTimeout = 30 * time.Second

	// ResponseHeaderTimeout bounds waiting for the response headers.
	ResponseHeaderTimeout = 60 * time.Second

	// RequestTimeout bounds a whole call, including writing the request body
	// and reading the response body.
	RequestTimeout = 120 * time.Second

	// ShortHTTPTimeout is used for quick operations such as broker connects.
	ShortHTTPTimeout = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent catalog fetches.
	DefaultConcurrencyLimit = 3
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Notifications.
const (
	// DefaultNotifySubject prefixes order status subjects.
	DefaultNotifySubject = "terminal.hardware_orders"
)
