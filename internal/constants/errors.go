package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'terminal config set-key' or set STRIPE_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidFilePath    = errors.New("invalid file path")
)

// Validation errors.
var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
	ErrInvalidItemFormat       = errors.New("hardware order items must be given as <sku>:<quantity>")
	ErrTestKeyRequired         = errors.New("test helpers require a test mode secret key (sk_test_...)")
	ErrUnknownTransition       = errors.New("unknown test helper transition")
)

// Filter errors.
var (
	ErrFilterNotBoolean = errors.New("filter expression must evaluate to a boolean")
)

// Notification errors.
var (
	ErrNATSURLRequired = errors.New("NATS URL is required")
	ErrNilOrder        = errors.New("order is required")
)
