package terminal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error types reported by the API.
const (
	ErrorTypeAPI            = "api_error"
	ErrorTypeCard           = "card_error"
	ErrorTypeIdempotency    = "idempotency_error"
	ErrorTypeInvalidRequest = "invalid_request_error"
)

// RequestIDHeader carries the server-side request identifier.
const RequestIDHeader = "Request-Id"

const unknownErrorMessage = "Unknown error"

// Static errors for err113 compliance.
var (
	ErrConfigRequired             = errors.New("config is required")
	ErrAPIKeyRequired             = errors.New("API key is required")
	ErrIDRequired                 = errors.New("resource id is required")
	ErrParamsRequired             = errors.New("params are required")
	ErrCountryRequired            = errors.New("country is required")
	ErrHardwareOrderItemsRequired = errors.New("at least one hardware order item is required")
	ErrShippingMethodRequired     = errors.New("shipping method is required")
	ErrShippingDetailsRequired    = errors.New("shipping details are required")
	ErrInvalidHardwareOrderItem   = errors.New("hardware order item requires a SKU and a positive quantity")
)

// APIError is the single error kind surfaced for failed calls. StatusCode is
// 0 when no response was received.
type APIError struct {
	Message    string `json:"message"              yaml:"message"`
	StatusCode int    `json:"status_code"          yaml:"status_code"`
	RequestID  string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Type       string `json:"type,omitempty"       yaml:"type,omitempty"`
	Code       string `json:"code,omitempty"       yaml:"code,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	details := []string{fmt.Sprintf("status: %d", e.StatusCode)}

	if e.Type != "" {
		details = append(details, "type: "+e.Type)
	}

	if e.Code != "" {
		details = append(details, "code: "+e.Code)
	}

	if e.RequestID != "" {
		details = append(details, "request_id: "+e.RequestID)
	}

	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(details, ", "))
}

// Unwrap returns the transport failure behind a status 0 error.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewTransportError wraps a failure that produced no response.
func NewTransportError(err error) *APIError {
	message := "network error"
	if err != nil {
		message += ": " + err.Error()
	}

	return &APIError{
		Message: message,
		cause:   err,
	}
}

// ParseErrorResponse maps a non-success response to an APIError. A body of the
// form {"error": {"message", "type", "code"}} yields a structured error; any
// other body is embedded in the message as "HTTP <status>: <body>". It never
// returns nil.
func ParseErrorResponse(statusCode int, headers http.Header, body []byte) *APIError {
	requestID := headers.Get(RequestIDHeader)

	apiErr, ok := parseErrorEnvelope(body)
	if !ok {
		return &APIError{
			Message:    fmt.Sprintf("HTTP %d: %s", statusCode, body),
			StatusCode: statusCode,
			RequestID:  requestID,
		}
	}

	apiErr.StatusCode = statusCode
	apiErr.RequestID = requestID

	return apiErr
}

func parseErrorEnvelope(body []byte) (*APIError, bool) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope == nil {
		return nil, false
	}

	raw, ok := envelope["error"]
	if !ok {
		return nil, false
	}

	var fields map[string]json.RawMessage

	err = json.Unmarshal(raw, &fields)
	if err != nil || fields == nil {
		return nil, false
	}

	message, ok := errorField(fields, "message")
	if !ok {
		return nil, false
	}

	errorType, ok := errorField(fields, "type")
	if !ok {
		return nil, false
	}

	code, ok := errorField(fields, "code")
	if !ok {
		return nil, false
	}

	if isAbsent(fields["message"]) {
		message = unknownErrorMessage
	}

	return &APIError{
		Message: message,
		Type:    errorType,
		Code:    code,
	}, true
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// errorField reads a scalar field. Absent and null fields are empty; numbers
// and booleans keep their JSON text. Objects and arrays are rejected.
func errorField(fields map[string]json.RawMessage, name string) (string, bool) {
	if isAbsent(fields[name]) {
		return "", true
	}

	raw := bytes.TrimSpace(fields[name])

	switch raw[0] {
	case '"':
		var value string

		err := json.Unmarshal(raw, &value)
		if err != nil {
			return "", false
		}

		return value, true
	case '{', '[':
		return "", false
	default:
		return string(raw), true
	}
}

// AsAPIError extracts the APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsTransportError checks if the call failed without receiving a response.
func IsTransportError(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsCardError checks if the error was reported as a card_error.
func IsCardError(err error) bool {
	return hasType(err, ErrorTypeCard)
}

// IsInvalidRequest checks if the error was reported as an invalid_request_error.
func IsInvalidRequest(err error) bool {
	return hasType(err, ErrorTypeInvalidRequest)
}

func hasStatus(err error, statusCode int) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == statusCode
}

func hasType(err error, errorType string) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Type == errorType
}
