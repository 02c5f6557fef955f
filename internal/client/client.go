package client

import (
	"github.com/fivetwenty-io/terminal-hardware/internal/http"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// Client implements the terminal.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	paths      terminal.Paths

	// Resource clients
	hardwareSKUs     *HardwareSKUsClient
	hardwareProducts *HardwareProductsClient
	shippingMethods  *ShippingMethodsClient
	hardwareOrders   *HardwareOrdersClient
	testHelpers      *TestHelpersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *terminal.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithDebug(config.Debug),
		http.WithTracing(config.Tracing),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// New creates a new client from a normalized config.
func New(config *terminal.Config) (*Client, error) {
	if config == nil {
		return nil, terminal.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, terminal.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		paths:      config.Paths.WithDefaults(),
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.hardwareSKUs = NewHardwareSKUsClient(c.httpClient, c.paths.HardwareSKUs)
	c.hardwareProducts = NewHardwareProductsClient(c.httpClient, c.paths.HardwareProducts)
	c.shippingMethods = NewShippingMethodsClient(c.httpClient, c.paths.ShippingMethods)
	c.hardwareOrders = NewHardwareOrdersClient(c.httpClient, c.paths.HardwareOrders)
	c.testHelpers = NewTestHelpersClient(c.httpClient, c.paths.TestHelpersHardwareOrders)
}

// BaseURL returns the API host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HardwareSKUs implements terminal.Client.HardwareSKUs.
func (c *Client) HardwareSKUs() terminal.HardwareSKUsClient {
	return c.hardwareSKUs
}

// HardwareProducts implements terminal.Client.HardwareProducts.
func (c *Client) HardwareProducts() terminal.HardwareProductsClient {
	return c.hardwareProducts
}

// ShippingMethods implements terminal.Client.ShippingMethods.
func (c *Client) ShippingMethods() terminal.ShippingMethodsClient {
	return c.shippingMethods
}

// HardwareOrders implements terminal.Client.HardwareOrders.
func (c *Client) HardwareOrders() terminal.HardwareOrdersClient {
	return c.hardwareOrders
}

// TestHelpers implements terminal.Client.TestHelpers.
func (c *Client) TestHelpers() terminal.TestHelpersClient {
	return c.testHelpers
}
