package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

const testAPIKey = "sk_test_123"

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&terminal.Config{APIKey: testAPIKey, BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// writeJSON writes a JSON response with the given status.
func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(writer).Encode(body)
	}
}

// notFoundBody is the error body returned for unknown ids.
func notFoundBody(message string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    terminal.ErrorTypeInvalidRequest,
			"code":    "resource_missing",
		},
	}
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrIs        error
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)

				if testCase.StatusCode >= http.StatusBadRequest {
					writeJSON(writer, testCase.StatusCode, notFoundBody("No such object: '"+testCase.ID+"'"))

					return
				}

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			result, err := getFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrIs != nil {
					require.ErrorIs(t, err, testCase.ErrIs)
				}

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestActionOperation represents a POST transition on an order.
type TestActionOperation struct {
	Name         string
	ExpectedPath string
	ExpectedBody string
	Status       terminal.HardwareOrderStatus
	ActionFunc   func(*Client) func(context.Context, string) (*terminal.HardwareOrder, error)
}

// RunActionTests runs a series of order transition tests.
func RunActionTests(t *testing.T, tests []TestActionOperation) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

				assert.NoError(t, request.ParseForm())
				assert.Equal(t, testCase.ExpectedBody, request.PostForm.Encode())

				writeJSON(writer, http.StatusOK, terminal.HardwareOrder{
					ID:     "thor_123",
					Object: "terminal.hardware_order",
					Status: testCase.Status,
				})
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			order, err := testCase.ActionFunc(client)(context.Background(), "thor_123")
			require.NoError(t, err)
			assert.Equal(t, testCase.Status, order.Status)
		})
	}
}
