// Package terminalclient provides the main entry point for creating Terminal hardware clients
package terminalclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/terminal-hardware/internal/client"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// New creates a new Terminal hardware client. The config is copied after
// defaults are applied, so the caller's value is left untouched.
func New(config *terminal.Config) (terminal.Client, error) {
	if config == nil {
		return nil, terminal.ErrConfigRequired
	}

	normalized := *config

	normalized.APIKey = strings.TrimSpace(normalized.APIKey)
	if normalized.APIKey == "" {
		return nil, terminal.ErrAPIKeyRequired
	}

	normalized.BaseURL = normalizeBaseURL(normalized.BaseURL)

	if normalized.APIVersion == "" {
		normalized.APIVersion = terminal.DefaultAPIVersion
	}

	normalized.Paths = normalized.Paths.WithDefaults()

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeBaseURL applies the default host, trims trailing slashes and adds
// an https scheme when none is given.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return terminal.DefaultBaseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithKey creates a client for the public API with only a secret key.
func NewWithKey(apiKey string) (terminal.Client, error) {
	return New(&terminal.Config{
		APIKey: apiKey,
	})
}

// NewWithLogger creates a client that logs every request and response to logger.
func NewWithLogger(apiKey string, logger terminal.Logger) (terminal.Client, error) {
	return New(&terminal.Config{
		APIKey: apiKey,
		Debug:  logger != nil,
		Logger: logger,
	})
}
