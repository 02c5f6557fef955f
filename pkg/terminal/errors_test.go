package terminal_test

import (
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &terminal.APIError{
		Message:    "card declined",
		StatusCode: 402,
		Type:       "card_error",
		Code:       "card_declined",
	}

	assert.Equal(t, "card declined (status: 402, type: card_error, code: card_declined)", err.Error())

	err.RequestID = "req_123"
	assert.Equal(t, "card declined (status: 402, type: card_error, code: card_declined, request_id: req_123)", err.Error())
}

//nolint:funlen // Table covers every body shape the mapper must tolerate
func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		headers    http.Header
		body       []byte
		expected   *terminal.APIError
	}{
		{
			name:       "well-formed error",
			statusCode: http.StatusPaymentRequired,
			body:       []byte(`{"error":{"message":"card declined","type":"card_error","code":"card_declined"}}`),
			expected: &terminal.APIError{
				Message:    "card declined",
				StatusCode: 402,
				Type:       "card_error",
				Code:       "card_declined",
			},
		},
		{
			name:       "request id header",
			statusCode: http.StatusNotFound,
			headers:    http.Header{"Request-Id": []string{"req_abc"}},
			body:       []byte(`{"error":{"message":"No such hardware order","type":"invalid_request_error"}}`),
			expected: &terminal.APIError{
				Message:    "No such hardware order",
				StatusCode: 404,
				RequestID:  "req_abc",
				Type:       "invalid_request_error",
			},
		},
		{
			name:       "missing message",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error":{"type":"invalid_request_error"}}`),
			expected: &terminal.APIError{
				Message:    "Unknown error",
				StatusCode: 400,
				Type:       "invalid_request_error",
			},
		},
		{
			name:       "empty message is kept",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error":{"message":"","type":"invalid_request_error"}}`),
			expected: &terminal.APIError{
				Message:    "",
				StatusCode: 400,
				Type:       "invalid_request_error",
			},
		},
		{
			name:       "null fields are absent",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error":{"message":null,"type":null,"code":null}}`),
			expected: &terminal.APIError{
				Message:    "Unknown error",
				StatusCode: 400,
			},
		},
		{
			name:       "numeric code keeps its text",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error":{"message":"bad","code":42}}`),
			expected: &terminal.APIError{
				Message:    "bad",
				StatusCode: 400,
				Code:       "42",
			},
		},
		{
			name:       "missing error key",
			statusCode: http.StatusInternalServerError,
			headers:    http.Header{"Request-Id": []string{"req_500"}},
			body:       []byte(`{"message":"oops"}`),
			expected: &terminal.APIError{
				Message:    `HTTP 500: {"message":"oops"}`,
				StatusCode: 500,
				RequestID:  "req_500",
			},
		},
		{
			name:       "null error",
			statusCode: http.StatusBadGateway,
			body:       []byte(`{"error":null}`),
			expected: &terminal.APIError{
				Message:    `HTTP 502: {"error":null}`,
				StatusCode: 502,
			},
		},
		{
			name:       "string error",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error":"invalid_grant"}`),
			expected: &terminal.APIError{
				Message:    `HTTP 400: {"error":"invalid_grant"}`,
				StatusCode: 400,
			},
		},
		{
			name:       "object valued message",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error":{"message":{"text":"nested"}}}`),
			expected: &terminal.APIError{
				Message:    `HTTP 400: {"error":{"message":{"text":"nested"}}}`,
				StatusCode: 400,
			},
		},
		{
			name:       "empty body",
			statusCode: http.StatusServiceUnavailable,
			body:       nil,
			expected: &terminal.APIError{
				Message:    "HTTP 503: ",
				StatusCode: 503,
			},
		},
		{
			name:       "non-JSON body",
			statusCode: http.StatusBadGateway,
			body:       []byte("<html>Bad Gateway</html>"),
			expected: &terminal.APIError{
				Message:    "HTTP 502: <html>Bad Gateway</html>",
				StatusCode: 502,
			},
		},
		{
			name:       "non-UTF8 body",
			statusCode: http.StatusInternalServerError,
			body:       []byte{0xff, 0xfe, 0xfd},
			expected: &terminal.APIError{
				Message:    "HTTP 500: \xff\xfe\xfd",
				StatusCode: 500,
			},
		},
		{
			name:       "truncated JSON",
			statusCode: http.StatusInternalServerError,
			body:       []byte(`{"error":{"message":"card decl`),
			expected: &terminal.APIError{
				Message:    `HTTP 500: {"error":{"message":"card decl`,
				StatusCode: 500,
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := terminal.ParseErrorResponse(testCase.statusCode, testCase.headers, testCase.body)
			require.NotNil(t, result)
			assert.Equal(t, testCase.expected.Message, result.Message)
			assert.Equal(t, testCase.expected.StatusCode, result.StatusCode)
			assert.Equal(t, testCase.expected.RequestID, result.RequestID)
			assert.Equal(t, testCase.expected.Type, result.Type)
			assert.Equal(t, testCase.expected.Code, result.Code)
		})
	}
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("dial tcp 127.0.0.1:1: %w", syscall.ECONNREFUSED)
	err := terminal.NewTransportError(cause)

	assert.Equal(t, 0, err.StatusCode)
	assert.Empty(t, err.RequestID)
	assert.Equal(t, "network error: "+cause.Error(), err.Message)
	require.ErrorIs(t, err, syscall.ECONNREFUSED)
	assert.True(t, terminal.IsTransportError(err))
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting hardware order: %w", &terminal.APIError{StatusCode: 404, Type: terminal.ErrorTypeInvalidRequest})
	unauthorized := &terminal.APIError{StatusCode: 401}
	declined := fmt.Errorf("creating hardware order: %w", &terminal.APIError{StatusCode: 402, Type: terminal.ErrorTypeCard})
	plain := errors.New("plain")

	assert.True(t, terminal.IsNotFound(notFound))
	assert.True(t, terminal.IsInvalidRequest(notFound))
	assert.False(t, terminal.IsTransportError(notFound))
	assert.True(t, terminal.IsUnauthorized(unauthorized))
	assert.True(t, terminal.IsCardError(declined))
	assert.False(t, terminal.IsCardError(notFound))

	assert.False(t, terminal.IsNotFound(plain))
	assert.False(t, terminal.IsTransportError(plain))
	assert.False(t, terminal.IsNotFound(nil))

	apiErr, ok := terminal.AsAPIError(declined)
	require.True(t, ok)
	assert.Equal(t, 402, apiErr.StatusCode)

	_, ok = terminal.AsAPIError(plain)
	assert.False(t, ok)
}
