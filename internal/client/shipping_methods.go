package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/terminal-hardware/internal/http"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// ShippingMethodsClient implements terminal.ShippingMethodsClient.
type ShippingMethodsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewShippingMethodsClient creates a new shipping methods client.
func NewShippingMethodsClient(httpClient *http.Client, basePath string) *ShippingMethodsClient {
	return &ShippingMethodsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements terminal.ShippingMethodsClient.List.
func (c *ShippingMethodsClient) List(ctx context.Context, params *terminal.ShippingMethodListParams) (*terminal.ListResponse[terminal.ShippingMethod], error) {
	if params == nil || strings.TrimSpace(params.Country) == "" {
		return nil, fmt.Errorf("listing shipping methods: %w", terminal.ErrCountryRequired)
	}

	resp, err := c.httpClient.Get(ctx, c.basePath, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing shipping methods: %w", err)
	}

	return decode[terminal.ListResponse[terminal.ShippingMethod]](resp, "shipping methods list")
}

// Get implements terminal.ShippingMethodsClient.Get.
func (c *ShippingMethodsClient) Get(ctx context.Context, id string) (*terminal.ShippingMethod, error) {
	if id == "" {
		return nil, fmt.Errorf("getting shipping method: %w", terminal.ErrIDRequired)
	}

	resp, err := c.httpClient.Get(ctx, resourcePath(c.basePath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting shipping method: %w", err)
	}

	return decode[terminal.ShippingMethod](resp, "shipping method")
}
