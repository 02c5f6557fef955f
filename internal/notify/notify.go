// Package notify publishes hardware order status changes to NATS.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// Event types.
const (
	EventCreated    = "created"
	EventCanceled   = "canceled"
	EventTransition = "transition"
)

// Publisher announces order changes.
type Publisher interface {
	PublishOrder(ctx context.Context, event string, order *terminal.HardwareOrder) error
	Close() error
}

// OrderEvent is the JSON message sent for an order change.
type OrderEvent struct {
	Event     string                       `json:"event"`
	OrderID   string                       `json:"order_id"`
	Status    terminal.HardwareOrderStatus `json:"status"`
	Livemode  bool                         `json:"livemode"`
	Amount    int64                        `json:"amount"`
	Currency  string                       `json:"currency,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

// Config configures the NATS publisher.
type Config struct {
	// URL of the NATS server, e.g. nats://localhost:4222.
	URL string
	// Subject prefix. Defaults to constants.DefaultNotifySubject.
	Subject string
	// Name reported to the server for this connection.
	Name string
	// Timeout for connecting and flushing. Defaults to constants.ShortHTTPTimeout.
	Timeout time.Duration
}

// conn is the subset of *nats.Conn used by NATSPublisher.
type conn interface {
	Publish(subject string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Drain() error
}

// NATSPublisher publishes order events on core NATS subjects
// "<prefix>.<order status>".
type NATSPublisher struct {
	conn    conn
	subject string
	timeout time.Duration
	now     func() time.Time
}

// NewNATSPublisher connects to the configured server.
func NewNATSPublisher(config *Config) (*NATSPublisher, error) {
	if config == nil || strings.TrimSpace(config.URL) == "" {
		return nil, constants.ErrNATSURLRequired
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = constants.ShortHTTPTimeout
	}

	opts := []nats.Option{nats.Timeout(timeout)}
	if config.Name != "" {
		opts = append(opts, nats.Name(config.Name))
	}

	natsConn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return newPublisher(natsConn, config.Subject, timeout), nil
}

func newPublisher(c conn, subject string, timeout time.Duration) *NATSPublisher {
	subject = strings.TrimSuffix(subject, ".")
	if subject == "" {
		subject = constants.DefaultNotifySubject
	}

	return &NATSPublisher{
		conn:    c,
		subject: subject,
		timeout: timeout,
		now:     time.Now,
	}
}

// Subject returns the subject an order with status is published on.
func (p *NATSPublisher) Subject(status terminal.HardwareOrderStatus) string {
	if status == "" {
		return p.subject + ".unknown"
	}

	return p.subject + "." + string(status)
}

// PublishOrder publishes order and waits for the server to acknowledge the flush.
func (p *NATSPublisher) PublishOrder(ctx context.Context, event string, order *terminal.HardwareOrder) error {
	if order == nil {
		return constants.ErrNilOrder
	}

	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("publishing order %s: %w", order.ID, err)
	}

	data, err := json.Marshal(OrderEvent{
		Event:     event,
		OrderID:   order.ID,
		Status:    order.Status,
		Livemode:  order.Livemode,
		Amount:    order.Total(),
		Currency:  order.Currency,
		Timestamp: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding order event: %w", err)
	}

	err = p.conn.Publish(p.Subject(order.Status), data)
	if err != nil {
		return fmt.Errorf("publishing order %s: %w", order.ID, err)
	}

	err = p.conn.FlushTimeout(p.flushTimeout(ctx))
	if err != nil {
		return fmt.Errorf("flushing order %s: %w", order.ID, err)
	}

	return nil
}

func (p *NATSPublisher) flushTimeout(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return p.timeout
	}

	if remaining := time.Until(deadline); remaining > 0 && remaining < p.timeout {
		return remaining
	}

	return p.timeout
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// NoOpPublisher discards every event.
type NoOpPublisher struct{}

// NewNoOpPublisher creates a publisher that does nothing.
func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

// PublishOrder does nothing.
func (p *NoOpPublisher) PublishOrder(ctx context.Context, event string, order *terminal.HardwareOrder) error {
	return nil
}

// Close does nothing.
func (p *NoOpPublisher) Close() error {
	return nil
}

// NewPublisherFromConfig returns a NATS publisher when a URL is configured and
// a NoOpPublisher otherwise.
func NewPublisherFromConfig(config *Config) (Publisher, error) {
	if config == nil || strings.TrimSpace(config.URL) == "" {
		return NewNoOpPublisher(), nil
	}

	return NewNATSPublisher(config)
}
