package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/terminal-hardware/internal/form"
	"github.com/fivetwenty-io/terminal-hardware/internal/http"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// HardwareOrdersClient implements terminal.HardwareOrdersClient.
type HardwareOrdersClient struct {
	httpClient *http.Client
	basePath   string
}

// NewHardwareOrdersClient creates a new hardware orders client.
func NewHardwareOrdersClient(httpClient *http.Client, basePath string) *HardwareOrdersClient {
	return &HardwareOrdersClient{
		httpClient: httpClient,
		basePath:   basePath,
	}
}

// Create implements terminal.HardwareOrdersClient.Create.
func (c *HardwareOrdersClient) Create(ctx context.Context, params *terminal.HardwareOrderCreateParams) (*terminal.HardwareOrder, error) {
	tree, err := buildCreateParams(params)
	if err != nil {
		return nil, fmt.Errorf("creating hardware order: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, c.basePath, tree)
	if err != nil {
		return nil, fmt.Errorf("creating hardware order: %w", err)
	}

	return decode[terminal.HardwareOrder](resp, "hardware order")
}

// Preview implements terminal.HardwareOrdersClient.Preview.
func (c *HardwareOrdersClient) Preview(ctx context.Context, params *terminal.HardwareOrderCreateParams) (*terminal.HardwareOrder, error) {
	tree, err := buildCreateParams(params)
	if err != nil {
		return nil, fmt.Errorf("previewing hardware order: %w", err)
	}

	resp, err := c.httpClient.GetWithParams(ctx, c.basePath+"/preview", tree)
	if err != nil {
		return nil, fmt.Errorf("previewing hardware order: %w", err)
	}

	return decode[terminal.HardwareOrder](resp, "hardware order preview")
}

// Get implements terminal.HardwareOrdersClient.Get.
func (c *HardwareOrdersClient) Get(ctx context.Context, id string) (*terminal.HardwareOrder, error) {
	if id == "" {
		return nil, fmt.Errorf("getting hardware order: %w", terminal.ErrIDRequired)
	}

	resp, err := c.httpClient.Get(ctx, resourcePath(c.basePath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting hardware order: %w", err)
	}

	return decode[terminal.HardwareOrder](resp, "hardware order")
}

// List implements terminal.HardwareOrdersClient.List.
func (c *HardwareOrdersClient) List(ctx context.Context, params *terminal.HardwareOrderListParams) (*terminal.ListResponse[terminal.HardwareOrder], error) {
	resp, err := c.httpClient.Get(ctx, c.basePath, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing hardware orders: %w", err)
	}

	return decode[terminal.ListResponse[terminal.HardwareOrder]](resp, "hardware orders list")
}

// Cancel implements terminal.HardwareOrdersClient.Cancel.
func (c *HardwareOrdersClient) Cancel(ctx context.Context, id string) (*terminal.HardwareOrder, error) {
	if id == "" {
		return nil, fmt.Errorf("canceling hardware order: %w", terminal.ErrIDRequired)
	}

	resp, err := c.httpClient.Post(ctx, resourcePath(c.basePath, id, "cancel"), form.NewParams())
	if err != nil {
		return nil, fmt.Errorf("canceling hardware order: %w", err)
	}

	return decode[terminal.HardwareOrder](resp, "hardware order")
}

// buildCreateParams converts validated order parameters into the request tree.
func buildCreateParams(params *terminal.HardwareOrderCreateParams) (*form.Params, error) {
	if params == nil {
		return nil, terminal.ErrParamsRequired
	}

	err := params.Validate()
	if err != nil {
		return nil, err
	}

	items := make([]*form.Params, 0, len(params.HardwareOrderItems))
	for _, item := range params.HardwareOrderItems {
		items = append(items, form.NewParams().
			Set("terminal_hardware_sku", item.TerminalHardwareSKU.ID()).
			Set("quantity", item.Quantity))
	}

	tree := form.NewParams().
		Set("hardware_order_items", items).
		Set("payment_type", params.PaymentType).
		Set("shipping_method", params.ShippingMethod).
		Set("shipping", shippingParams(params.Shipping)).
		SetIfNotEmpty("po_number", params.PONumber)

	if len(params.Metadata) > 0 {
		tree.Set("metadata", map[string]string(params.Metadata))
	}

	return tree, nil
}

func shippingParams(shipping *terminal.ShippingDetails) *form.Params {
	params := form.NewParams().
		Set("name", shipping.Name).
		Set("email", shipping.Email).
		Set("phone", shipping.Phone).
		SetIfNotEmpty("company", shipping.Company)

	if shipping.Address != nil {
		params.Set("address", form.NewParams().
			Set("line1", shipping.Address.Line1).
			SetIfNotEmpty("line2", shipping.Address.Line2).
			SetIfNotEmpty("city", shipping.Address.City).
			SetIfNotEmpty("state", shipping.Address.State).
			Set("postal_code", shipping.Address.PostalCode).
			Set("country", shipping.Address.Country))
	}

	return params
}
