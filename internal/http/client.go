// Package http dispatches authenticated requests to the API and normalizes
// failures into *terminal.APIError values.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
	"github.com/fivetwenty-io/terminal-hardware/internal/form"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

const maskedValue = "***"

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is an HTTP client bound to one API key, version and base URL. It is
// safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	userAgent  string
	tracing    bool
	debug      bool
	timeout    time.Duration
	logger     Logger
	httpClient *retryablehttp.Client
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion sets the version header.
func WithAPIVersion(apiVersion string) Option {
	return func(c *Client) {
		c.apiVersion = apiVersion
	}
}

// WithTimeout overrides the overall per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithTracing wraps the transport with OpenTelemetry client spans.
func WithTracing(tracing bool) Option {
	return func(c *Client) {
		c.tracing = tracing
	}
}

// Request represents an HTTP request. Params are encoded as the form body for
// POST and appended to the query string otherwise.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Params *form.Params
}

// Response represents a successful HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewClient creates a new HTTP client. Requests are never retried.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		apiVersion: constants.DefaultAPIVersion,
		userAgent:  constants.DefaultUserAgent,
		timeout:    constants.RequestTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: newTransport(client.tracing),
		Timeout:   client.timeout,
	}
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
		retryClient.RequestLogHook = client.logRequest
		retryClient.ResponseLogHook = client.logResponse
	}

	client.httpClient = retryClient

	return client
}

func newTransport(tracing bool) http.RoundTripper {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   constants.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.ResponseHeaderTimeout = constants.ResponseHeaderTimeout

	if tracing {
		return otelhttp.NewTransport(transport)
	}

	return transport
}

// neverRetry stops after the first attempt. A done context is reported so
// cancellation surfaces as the call's error.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// Do executes a request. On success it returns the response and a nil error;
// on failure it returns a nil response and a *terminal.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path

	var body []byte

	query := req.Query.Encode()

	if req.Method == http.MethodPost {
		body = []byte(form.Encode(req.Params, "").Encode())
	} else if encoded := form.Encode(req.Params, "").Encode(); encoded != "" {
		query = joinQuery(query, encoded)
	}

	if query != "" {
		fullURL += "?" + query
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, terminal.NewTransportError(fmt.Errorf("creating request: %w", err))
	}

	c.setHeaders(httpReq.Request)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, terminal.NewTransportError(err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, terminal.NewTransportError(fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, terminal.ParseErrorResponse(resp.StatusCode, resp.Header, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}

// Get performs a GET request with flat query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// GetWithParams performs a GET request with nested parameters encoded into
// the query string.
func (c *Client) GetWithParams(ctx context.Context, path string, params *form.Params) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// Post performs a POST request with params as a form body.
func (c *Client) Post(ctx context.Context, path string, params *form.Params) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Params: params,
	})
}

func (c *Client) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set(constants.HeaderAPIVersion, c.apiVersion)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeForm)
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderUserAgent, c.userAgent)
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"headers": maskHeaders(req.Header),
		"attempt": attempt,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":     resp.StatusCode,
		"request_id": resp.Header.Get(terminal.RequestIDHeader),
	})
}

func maskHeaders(headers http.Header) map[string]string {
	masked := make(map[string]string, len(headers))

	for name := range headers {
		if strings.EqualFold(name, constants.HeaderAuthorization) {
			masked[name] = maskedValue

			continue
		}

		masked[name] = headers.Get(name)
	}

	return masked
}

func joinQuery(left, right string) string {
	if left == "" {
		return right
	}

	return left + "&" + right
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
