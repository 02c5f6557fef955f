package terminal

import (
	"net/url"
	"strconv"
)

// AvailabilityStatus tells whether a SKU, product or shipping method can be ordered.
type AvailabilityStatus string

// Availability values.
const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// HardwareOrderStatus is the server-owned lifecycle state of an order.
type HardwareOrderStatus string

// Hardware order lifecycle states. Orders normally move
// pending → ready_to_ship → shipped → delivered; canceled and undeliverable
// are alternate end states.
const (
	HardwareOrderStatusPending       HardwareOrderStatus = "pending"
	HardwareOrderStatusReadyToShip   HardwareOrderStatus = "ready_to_ship"
	HardwareOrderStatusShipped       HardwareOrderStatus = "shipped"
	HardwareOrderStatusDelivered     HardwareOrderStatus = "delivered"
	HardwareOrderStatusCanceled      HardwareOrderStatus = "canceled"
	HardwareOrderStatusUndeliverable HardwareOrderStatus = "undeliverable"
)

// IsTerminal reports whether no further transition is expected.
func (s HardwareOrderStatus) IsTerminal() bool {
	switch s {
	case HardwareOrderStatusDelivered, HardwareOrderStatusCanceled, HardwareOrderStatusUndeliverable:
		return true
	default:
		return false
	}
}

// PaymentTypeMonthlyInvoice is the default payment type for new orders.
const PaymentTypeMonthlyInvoice = "monthly_invoice"

// HardwareSKU is a purchasable hardware unit offered at a price in a country.
type HardwareSKU struct {
	ID               string             `json:"id"                          yaml:"id"`
	Object           string             `json:"object"                      yaml:"object"`
	Amount           int64              `json:"amount"                      yaml:"amount"`
	Country          string             `json:"country"                     yaml:"country"`
	Currency         string             `json:"currency"                    yaml:"currency"`
	Product          string             `json:"product"                     yaml:"product"`
	Orderable        int                `json:"orderable"                   yaml:"orderable"`
	Status           AvailabilityStatus `json:"status"                      yaml:"status"`
	UnavailableAfter int64              `json:"unavailable_after,omitempty" yaml:"unavailable_after,omitempty"`
	Provider         string             `json:"provider,omitempty"          yaml:"provider,omitempty"`
}

// HardwareProduct groups the SKUs of one device model.
type HardwareProduct struct {
	ID               string             `json:"id"                          yaml:"id"`
	Object           string             `json:"object"                      yaml:"object"`
	Name             string             `json:"name"                        yaml:"name"`
	Description      string             `json:"description,omitempty"       yaml:"description,omitempty"`
	Status           AvailabilityStatus `json:"status"                      yaml:"status"`
	UnavailableAfter int64              `json:"unavailable_after,omitempty" yaml:"unavailable_after,omitempty"`
}

// ShippingMethod is a delivery option for a country.
type ShippingMethod struct {
	ID                    string             `json:"id"                              yaml:"id"`
	Object                string             `json:"object"                          yaml:"object"`
	Name                  string             `json:"name"                            yaml:"name"`
	Country               string             `json:"country"                         yaml:"country"`
	Status                AvailabilityStatus `json:"status"                          yaml:"status"`
	UnavailableAfter      int64              `json:"unavailable_after,omitempty"     yaml:"unavailable_after,omitempty"`
	Provider              string             `json:"provider,omitempty"              yaml:"provider,omitempty"`
	EstimatedDeliveryDays int                `json:"estimated_delivery_days,omitempty" yaml:"estimated_delivery_days,omitempty"`
}

// HardwareOrder is a purchase of one or more SKUs.
type HardwareOrder struct {
	ID                 string                     `json:"id"                         yaml:"id"`
	Object             string                     `json:"object"                     yaml:"object"`
	Amount             int64                      `json:"amount"                     yaml:"amount"`
	Created            int64                      `json:"created"                    yaml:"created"`
	Currency           string                     `json:"currency"                   yaml:"currency"`
	HardwareOrderItems []HardwareOrderItem        `json:"hardware_order_items"       yaml:"hardware_order_items"`
	Livemode           bool                       `json:"livemode"                   yaml:"livemode"`
	Metadata           Metadata                   `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
	PaymentType        string                     `json:"payment_type"               yaml:"payment_type"`
	PONumber           string                     `json:"po_number,omitempty"        yaml:"po_number,omitempty"`
	ShipmentTracking   []ShipmentTracking         `json:"shipment_tracking,omitempty" yaml:"shipment_tracking,omitempty"`
	Shipping           *ShippingDetails           `json:"shipping,omitempty"         yaml:"shipping,omitempty"`
	ShippingMethod     Expandable[ShippingMethod] `json:"shipping_method"            yaml:"shipping_method"`
	Status             HardwareOrderStatus        `json:"status"                     yaml:"status"`
	Tax                int64                      `json:"tax"                        yaml:"tax"`
	TotalTaxAmounts    []TaxAmount                `json:"total_tax_amounts,omitempty" yaml:"total_tax_amounts,omitempty"`
	Updated            int64                      `json:"updated,omitempty"          yaml:"updated,omitempty"`
}

// Total returns the order amount including tax, in minor units.
func (o *HardwareOrder) Total() int64 {
	return o.Amount + o.Tax
}

// HardwareOrderItem is one line of an order. On requests only the SKU id and
// quantity are sent; responses may expand the SKU and add pricing.
type HardwareOrderItem struct {
	TerminalHardwareSKU Expandable[HardwareSKU] `json:"terminal_hardware_sku" yaml:"terminal_hardware_sku"`
	Quantity            int                     `json:"quantity"              yaml:"quantity"`
	Amount              int64                   `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Currency            string                  `json:"currency,omitempty"    yaml:"currency,omitempty"`
}

// NewHardwareOrderItem creates a request line for quantity units of a SKU.
func NewHardwareOrderItem(skuID string, quantity int) HardwareOrderItem {
	return HardwareOrderItem{
		TerminalHardwareSKU: ExpandableID[HardwareSKU](skuID),
		Quantity:            quantity,
	}
}

// ShippingDetails is the recipient of an order.
type ShippingDetails struct {
	Name     string   `json:"name"               yaml:"name"`
	Address  *Address `json:"address"            yaml:"address"`
	Email    string   `json:"email"              yaml:"email"`
	Phone    string   `json:"phone"              yaml:"phone"`
	Company  string   `json:"company,omitempty"  yaml:"company,omitempty"`
	Amount   int64    `json:"amount,omitempty"   yaml:"amount,omitempty"`
	Currency string   `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// Address is a postal address. Country is an ISO 3166-1 alpha-2 code.
type Address struct {
	Line1      string `json:"line1"           yaml:"line1"`
	Line2      string `json:"line2,omitempty" yaml:"line2,omitempty"`
	City       string `json:"city,omitempty"  yaml:"city,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode string `json:"postal_code"     yaml:"postal_code"`
	Country    string `json:"country"         yaml:"country"`
}

// ShipmentTracking identifies a parcel with its carrier.
type ShipmentTracking struct {
	Carrier        string `json:"carrier"                yaml:"carrier"`
	TrackingNumber string `json:"tracking_number"        yaml:"tracking_number"`
	TrackingURL    string `json:"tracking_url,omitempty" yaml:"tracking_url,omitempty"`
}

// TaxAmount is the tax charged at one rate.
type TaxAmount struct {
	Amount    int64    `json:"amount"    yaml:"amount"`
	Inclusive bool     `json:"inclusive" yaml:"inclusive"`
	Rate      *TaxRate `json:"rate"      yaml:"rate"`
}

// TaxRate describes a jurisdiction's tax rate.
type TaxRate struct {
	DisplayName  string  `json:"display_name" yaml:"display_name"`
	Jurisdiction string  `json:"jurisdiction" yaml:"jurisdiction"`
	Percentage   float64 `json:"percentage"   yaml:"percentage"`
}

// HardwareSKUListParams filters SKU listings. Country is required.
type HardwareSKUListParams struct {
	Country  string
	Product  string
	Provider string
	Limit    int
}

// ToValues converts the filters to query parameters.
func (p *HardwareSKUListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	setIfNotEmpty(values, "country", p.Country)
	setIfNotEmpty(values, "product", p.Product)
	setIfNotEmpty(values, "provider", p.Provider)
	setLimit(values, p.Limit)

	return values
}

// HardwareProductListParams filters product listings.
type HardwareProductListParams struct {
	Limit int
}

// ToValues converts the filters to query parameters.
func (p *HardwareProductListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	setLimit(values, p.Limit)

	return values
}

// ShippingMethodListParams filters shipping method listings. Country is required.
type ShippingMethodListParams struct {
	Country  string
	Name     string
	Provider string
	Limit    int
}

// ToValues converts the filters to query parameters.
func (p *ShippingMethodListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	setIfNotEmpty(values, "country", p.Country)
	setIfNotEmpty(values, "name", p.Name)
	setIfNotEmpty(values, "provider", p.Provider)
	setLimit(values, p.Limit)

	return values
}

// HardwareOrderListParams filters order listings.
type HardwareOrderListParams struct {
	Limit int
}

// ToValues converts the filters to query parameters.
func (p *HardwareOrderListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	setLimit(values, p.Limit)

	return values
}

// ShipParams carries optional tracking details for the sandbox ship transition.
type ShipParams struct {
	Carrier        string
	TrackingNumber string
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setLimit(values url.Values, limit int) {
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
}
