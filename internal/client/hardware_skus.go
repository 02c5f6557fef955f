package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/terminal-hardware/internal/http"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// HardwareSKUsClient implements terminal.HardwareSKUsClient.
type HardwareSKUsClient struct {
	httpClient *http.Client
	basePath   string
}

// NewHardwareSKUsClient creates a new hardware SKUs client.
func NewHardwareSKUsClient(httpClient *http.Client, basePath string) *HardwareSKUsClient {
	return &HardwareSKUsClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// List implements terminal.HardwareSKUsClient.List.
func (c *HardwareSKUsClient) List(ctx context.Context, params *terminal.HardwareSKUListParams) (*terminal.ListResponse[terminal.HardwareSKU], error) {
	if params == nil || strings.TrimSpace(params.Country) == "" {
		return nil, fmt.Errorf("listing hardware SKUs: %w", terminal.ErrCountryRequired)
	}

	resp, err := c.httpClient.Get(ctx, c.basePath, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing hardware SKUs: %w", err)
	}

	return decode[terminal.ListResponse[terminal.HardwareSKU]](resp, "hardware SKUs list")
}

// Get implements terminal.HardwareSKUsClient.Get.
func (c *HardwareSKUsClient) Get(ctx context.Context, id string) (*terminal.HardwareSKU, error) {
	if id == "" {
		return nil, fmt.Errorf("getting hardware SKU: %w", terminal.ErrIDRequired)
	}

	resp, err := c.httpClient.Get(ctx, resourcePath(c.basePath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting hardware SKU: %w", err)
	}

	return decode[terminal.HardwareSKU](resp, "hardware SKU")
}
