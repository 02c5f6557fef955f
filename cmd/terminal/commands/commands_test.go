package commands_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

func orderServer(t *testing.T, status string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"id":       "thor_1",
			"object":   "terminal.hardware_order",
			"status":   status,
			"amount":   45000,
			"tax":      9000,
			"currency": "usd",
			"path":     request.URL.Path,
		})
	}))
	t.Cleanup(server.Close)

	return server
}

//nolint:paralleltest // commands share global viper state
func TestVersionCommand_JSON(t *testing.T) {
	out, err := executeRoot(t, "-o", "json", "version")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","built":"2026-01-01"}`, out)
}

//nolint:paralleltest // commands share global viper state
func TestOrdersGetCommand(t *testing.T) {
	server := orderServer(t, "pending")

	out, err := executeRoot(t, "--api-key", "sk_test_123", "--base-url", server.URL, "orders", "get", "thor_1")
	require.NoError(t, err)
	assert.Contains(t, out, "thor_1")
	assert.Contains(t, out, "540.00 USD")
}

//nolint:paralleltest // commands share global viper state
func TestOrdersCreateCommand(t *testing.T) {
	var form map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/terminal/hardware_orders", request.URL.Path)
		assert.NoError(t, request.ParseForm())
		form = request.PostForm

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id":"thor_9","status":"pending","currency":"usd"}`))
	}))
	defer server.Close()

	out, err := executeRoot(t,
		"--api-key", "sk_test_123", "--base-url", server.URL, "-o", "yaml",
		"orders", "create",
		"--item", "thsku_1:2", "--item", "thsku_2",
		"--shipping-method", "thsm_1",
		"--name", "Jenny Rosen", "--email", "jenny@example.com", "--phone", "+15555550123",
		"--line1", "1 Main St", "--postal-code", "94107", "--country", "US",
		"--metadata", "site=sf",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "id: thor_9")

	assert.Equal(t, []string{"monthly_invoice"}, form["payment_type"])
	assert.Equal(t, []string{"thsku_1"}, form["hardware_order_items[0][terminal_hardware_sku]"])
	assert.Equal(t, []string{"2"}, form["hardware_order_items[0][quantity]"])
	assert.Equal(t, []string{"thsku_2"}, form["hardware_order_items[1][terminal_hardware_sku]"])
	assert.Equal(t, []string{"1"}, form["hardware_order_items[1][quantity]"])
	assert.Equal(t, []string{"94107"}, form["shipping[address][postal_code]"])
	assert.Equal(t, []string{"sf"}, form["metadata[site]"])
}

//nolint:paralleltest // commands share global viper state
func TestOrdersCreateCommand_InvalidItem(t *testing.T) {
	_, err := executeRoot(t, "--api-key", "sk_test_123", "orders", "create", "--item", "thsku_1:0", "--shipping-method", "thsm_1")
	require.ErrorIs(t, err, constants.ErrInvalidItemFormat)
}

//nolint:paralleltest // commands share global viper state
func TestCommands_RequireAPIKey(t *testing.T) {
	t.Setenv("STRIPE_API_KEY", "")
	t.Setenv("TERMINAL_API_KEY", "")

	_, err := executeRoot(t, "orders", "get", "thor_1")
	require.ErrorIs(t, err, constants.ErrNoAPIKeyConfigured)
}

//nolint:paralleltest // commands share global viper state
func TestCommands_APIKeyFromEnvironment(t *testing.T) {
	server := orderServer(t, "pending")

	t.Setenv("TERMINAL_API_KEY", "")
	t.Setenv("STRIPE_API_KEY", "sk_test_env")

	out, err := executeRoot(t, "--base-url", server.URL, "-o", "json", "orders", "get", "thor_1")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "thor_1"`)
}

//nolint:paralleltest // commands share global viper state
func TestTestHelpersCommand_RequiresTestKey(t *testing.T) {
	server := orderServer(t, "shipped")

	_, err := executeRoot(t, "--api-key", "sk_live_123", "--base-url", server.URL, "test-helpers", "ship", "thor_1")
	require.ErrorIs(t, err, constants.ErrTestKeyRequired)

	out, err := executeRoot(t, "--api-key", "sk_test_123", "--base-url", server.URL, "-o", "json",
		"test-helpers", "ship", "thor_1", "--carrier", "ups")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "shipped"`)
}

//nolint:paralleltest // commands share global viper state
func TestSKUsListCommand_Filter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "US", request.URL.Query().Get("country"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"object":"list","data":[` +
			`{"id":"thsku_1","amount":24900,"currency":"usd","status":"available"},` +
			`{"id":"thsku_2","amount":9900,"currency":"usd","status":"unavailable"}]}`))
	}))
	defer server.Close()

	out, err := executeRoot(t, "--api-key", "sk_test_123", "--base-url", server.URL, "-o", "json",
		"skus", "list", "--country", "US", "--filter", `status == "available"`)
	require.NoError(t, err)
	assert.Contains(t, out, "thsku_1")
	assert.NotContains(t, out, "thsku_2")
}
