package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/terminal-hardware/internal/http"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// HardwareProductsClient implements terminal.HardwareProductsClient.
type HardwareProductsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewHardwareProductsClient creates a new hardware products client.
func NewHardwareProductsClient(httpClient *http.Client, basePath string) *HardwareProductsClient {
	return &HardwareProductsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements terminal.HardwareProductsClient.List.
func (c *HardwareProductsClient) List(ctx context.Context, params *terminal.HardwareProductListParams) (*terminal.ListResponse[terminal.HardwareProduct], error) {
	resp, err := c.httpClient.Get(ctx, c.basePath, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing hardware products: %w", err)
	}

	return decode[terminal.ListResponse[terminal.HardwareProduct]](resp, "hardware products list")
}

// Get implements terminal.HardwareProductsClient.Get.
func (c *HardwareProductsClient) Get(ctx context.Context, id string) (*terminal.HardwareProduct, error) {
	if id == "" {
		return nil, fmt.Errorf("getting hardware product: %w", terminal.ErrIDRequired)
	}

	resp, err := c.httpClient.Get(ctx, resourcePath(c.basePath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting hardware product: %w", err)
	}

	return decode[terminal.HardwareProduct](resp, "hardware product")
}
