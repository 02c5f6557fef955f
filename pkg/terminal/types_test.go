package terminal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

func TestExpandable_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("id", func(t *testing.T) {
		t.Parallel()

		var item terminal.HardwareOrderItem

		err := json.Unmarshal([]byte(`{"terminal_hardware_sku":"thsku_1","quantity":2}`), &item)
		require.NoError(t, err)

		assert.Equal(t, "thsku_1", item.TerminalHardwareSKU.ID())
		assert.False(t, item.TerminalHardwareSKU.IsExpanded())

		sku, ok := item.TerminalHardwareSKU.Object()
		assert.False(t, ok)
		assert.Nil(t, sku)
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		var item terminal.HardwareOrderItem

		err := json.Unmarshal([]byte(`{
			"terminal_hardware_sku": {"id":"thsku_1","object":"terminal.hardware_sku","amount":24900,"currency":"usd","country":"US"},
			"quantity": 1,
			"amount": 24900,
			"currency": "usd"
		}`), &item)
		require.NoError(t, err)

		assert.Equal(t, "thsku_1", item.TerminalHardwareSKU.ID())

		sku, ok := item.TerminalHardwareSKU.Object()
		require.True(t, ok)
		assert.Equal(t, int64(24900), sku.Amount)
		assert.Equal(t, "US", sku.Country)
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()

		var order terminal.HardwareOrder

		err := json.Unmarshal([]byte(`{"id":"thor_1","shipping_method":null}`), &order)
		require.NoError(t, err)
		assert.True(t, order.ShippingMethod.IsZero())
		assert.Empty(t, order.ShippingMethod.ID())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		var order terminal.HardwareOrder

		err := json.Unmarshal([]byte(`{"shipping_method":[1,2]}`), &order)
		require.Error(t, err)
	})
}

func TestExpandable_Marshal(t *testing.T) {
	t.Parallel()

	idOnly := terminal.ExpandableID[terminal.ShippingMethod]("thsm_1")
	data, err := json.Marshal(idOnly)
	require.NoError(t, err)
	assert.JSONEq(t, `"thsm_1"`, string(data))

	expanded := terminal.ExpandableObject("thsm_1", &terminal.ShippingMethod{ID: "thsm_1", Name: "standard"})
	data, err = json.Marshal(expanded)
	require.NoError(t, err)

	var decoded terminal.Expandable[terminal.ShippingMethod]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "thsm_1", decoded.ID())

	method, ok := decoded.Object()
	require.True(t, ok)
	assert.Equal(t, "standard", method.Name)

	data, err = json.Marshal(terminal.Expandable[terminal.ShippingMethod]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	out, err := yaml.Marshal(map[string]interface{}{"shipping_method": idOnly})
	require.NoError(t, err)
	assert.Equal(t, "shipping_method: thsm_1\n", string(out))
}

func TestHardwareOrder_Decode(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": "thor_1",
		"object": "terminal.hardware_order",
		"amount": 45000,
		"tax": 3600,
		"currency": "usd",
		"status": "pending",
		"payment_type": "monthly_invoice",
		"shipping_method": "thsm_1",
		"hardware_order_items": [{"terminal_hardware_sku": "thsku_1", "quantity": 2, "amount": 45000, "currency": "usd"}],
		"shipping": {"name": "Jenny Rosen", "email": "jenny@example.com", "phone": "+15555550123",
			"address": {"line1": "1 Main St", "postal_code": "94107", "country": "US"}},
		"total_tax_amounts": [{"amount": 3600, "inclusive": false,
			"rate": {"display_name": "Sales tax", "jurisdiction": "CA", "percentage": 8}}],
		"metadata": {"site": "sf"},
		"livemode": false,
		"created": 1727740800
	}`)

	var order terminal.HardwareOrder
	require.NoError(t, json.Unmarshal(body, &order))

	assert.Equal(t, terminal.HardwareOrderStatusPending, order.Status)
	assert.False(t, order.Status.IsTerminal())
	assert.Equal(t, int64(48600), order.Total())
	assert.Equal(t, "thsm_1", order.ShippingMethod.ID())
	require.Len(t, order.HardwareOrderItems, 1)
	assert.Equal(t, "thsku_1", order.HardwareOrderItems[0].TerminalHardwareSKU.ID())
	assert.Equal(t, "US", order.Shipping.Address.Country)
	require.Len(t, order.TotalTaxAmounts, 1)
	assert.InDelta(t, 8.0, order.TotalTaxAmounts[0].Rate.Percentage, 0.001)
	assert.Equal(t, "sf", order.Metadata["site"])
}

func TestHardwareOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	terminalStates := map[terminal.HardwareOrderStatus]bool{
		terminal.HardwareOrderStatusPending:       false,
		terminal.HardwareOrderStatusReadyToShip:   false,
		terminal.HardwareOrderStatusShipped:       false,
		terminal.HardwareOrderStatusDelivered:     true,
		terminal.HardwareOrderStatusCanceled:      true,
		terminal.HardwareOrderStatusUndeliverable: true,
	}

	for status, expected := range terminalStates {
		assert.Equal(t, expected, status.IsTerminal(), string(status))
	}
}

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	skus := &terminal.HardwareSKUListParams{Country: "GB", Product: "thpr_1", Limit: 10}
	assert.Equal(t, "country=GB&limit=10&product=thpr_1", skus.ToValues().Encode())

	methods := &terminal.ShippingMethodListParams{Country: "US", Name: "express"}
	assert.Equal(t, "country=US&name=express", methods.ToValues().Encode())

	var orders *terminal.HardwareOrderListParams
	assert.Empty(t, orders.ToValues())

	products := &terminal.HardwareProductListParams{}
	assert.Empty(t, products.ToValues())
}
