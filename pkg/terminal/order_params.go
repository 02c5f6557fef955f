package terminal

import (
	"fmt"
	"strings"
)

// HardwareOrderCreateParams describes an order to create or preview. Build it
// with NewHardwareOrderCreateParams.
type HardwareOrderCreateParams struct {
	HardwareOrderItems []HardwareOrderItem
	PaymentType        string
	ShippingMethod     string
	Shipping           *ShippingDetails
	PONumber           string
	Metadata           Metadata
}

// HardwareOrderOption customizes HardwareOrderCreateParams.
type HardwareOrderOption func(*HardwareOrderCreateParams)

// WithPaymentType overrides the default monthly_invoice payment type.
func WithPaymentType(paymentType string) HardwareOrderOption {
	return func(p *HardwareOrderCreateParams) {
		p.PaymentType = paymentType
	}
}

// WithPONumber sets the purchase order number.
func WithPONumber(poNumber string) HardwareOrderOption {
	return func(p *HardwareOrderCreateParams) {
		p.PONumber = poNumber
	}
}

// WithMetadata adds a metadata entry.
func WithMetadata(key, value string) HardwareOrderOption {
	return func(p *HardwareOrderCreateParams) {
		if p.Metadata == nil {
			p.Metadata = Metadata{}
		}

		p.Metadata[key] = value
	}
}

// NewHardwareOrderCreateParams validates and assembles order parameters. The
// payment type defaults to monthly_invoice.
func NewHardwareOrderCreateParams(
	shippingMethod string,
	shipping *ShippingDetails,
	items []HardwareOrderItem,
	opts ...HardwareOrderOption,
) (*HardwareOrderCreateParams, error) {
	params := &HardwareOrderCreateParams{
		HardwareOrderItems: append([]HardwareOrderItem(nil), items...),
		PaymentType:        PaymentTypeMonthlyInvoice,
		ShippingMethod:     shippingMethod,
		Shipping:           shipping,
	}

	for _, opt := range opts {
		opt(params)
	}

	err := params.Validate()
	if err != nil {
		return nil, err
	}

	return params, nil
}

// Validate checks that the order has items, a shipping method and shipping details.
func (p *HardwareOrderCreateParams) Validate() error {
	if len(p.HardwareOrderItems) == 0 {
		return ErrHardwareOrderItemsRequired
	}

	for i, item := range p.HardwareOrderItems {
		if strings.TrimSpace(item.TerminalHardwareSKU.ID()) == "" || item.Quantity < 1 {
			return fmt.Errorf("%w: item %d", ErrInvalidHardwareOrderItem, i)
		}
	}

	if strings.TrimSpace(p.ShippingMethod) == "" {
		return ErrShippingMethodRequired
	}

	if p.Shipping == nil {
		return ErrShippingDetailsRequired
	}

	return nil
}
