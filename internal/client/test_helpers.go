package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/terminal-hardware/internal/form"
	"github.com/fivetwenty-io/terminal-hardware/internal/http"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// Sandbox transitions.
const (
	ActionMarkReadyToShip   = "mark_ready_to_ship"
	ActionShip              = "ship"
	ActionDeliver           = "deliver"
	ActionMarkUndeliverable = "mark_undeliverable"
)

// TestHelpersClient implements terminal.TestHelpersClient.
type TestHelpersClient struct {
	httpClient *http.Client
	basePath   string
}

// NewTestHelpersClient creates a new sandbox test helpers client.
func NewTestHelpersClient(httpClient *http.Client, basePath string) *TestHelpersClient {
	return &TestHelpersClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// MarkReadyToShip implements terminal.TestHelpersClient.MarkReadyToShip.
func (c *TestHelpersClient) MarkReadyToShip(ctx context.Context, id string) (*terminal.HardwareOrder, error) {
	return c.transition(ctx, id, ActionMarkReadyToShip, form.NewParams())
}

// Ship implements terminal.TestHelpersClient.Ship.
func (c *TestHelpersClient) Ship(ctx context.Context, id string, params *terminal.ShipParams) (*terminal.HardwareOrder, error) {
	tree := form.NewParams()
	if params != nil {
		tree.SetIfNotEmpty("carrier", params.Carrier).
			SetIfNotEmpty("tracking_number", params.TrackingNumber)
	}

	return c.transition(ctx, id, ActionShip, tree)
}

// Deliver implements terminal.TestHelpersClient.Deliver.
func (c *TestHelpersClient) Deliver(ctx context.Context, id string) (*terminal.HardwareOrder, error) {
	return c.transition(ctx, id, ActionDeliver, form.NewParams())
}

// MarkUndeliverable implements terminal.TestHelpersClient.MarkUndeliverable.
func (c *TestHelpersClient) MarkUndeliverable(ctx context.Context, id string) (*terminal.HardwareOrder, error) {
	return c.transition(ctx, id, ActionMarkUndeliverable, form.NewParams())
}

func (c *TestHelpersClient) transition(ctx context.Context, id, action string, params *form.Params) (*terminal.HardwareOrder, error) {
	if id == "" {
		return nil, fmt.Errorf("applying %s: %w", action, terminal.ErrIDRequired)
	}

	resp, err := c.httpClient.Post(ctx, resourcePath(c.basePath, id, action), params)
	if err != nil {
		return nil, fmt.Errorf("applying %s: %w", action, err)
	}

	return decode[terminal.HardwareOrder](resp, "hardware order")
}
