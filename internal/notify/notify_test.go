package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

var errPublish = errors.New("connection closed")

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	messages   []published
	publishErr error
	flushed    []time.Duration
	drained    bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}

	f.messages = append(f.messages, published{subject: subject, data: data})

	return nil
}

func (f *fakeConn) FlushTimeout(timeout time.Duration) error {
	f.flushed = append(f.flushed, timeout)

	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true

	return nil
}

func TestNATSPublisher_PublishOrder(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	publisher := newPublisher(conn, "", time.Second)
	publisher.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	order := &terminal.HardwareOrder{
		ID:       "thor_1",
		Status:   terminal.HardwareOrderStatusShipped,
		Amount:   45000,
		Tax:      9000,
		Currency: "gbp",
	}

	err := publisher.PublishOrder(context.Background(), EventTransition, order)
	require.NoError(t, err)

	require.Len(t, conn.messages, 1)
	assert.Equal(t, "terminal.hardware_orders.shipped", conn.messages[0].subject)
	assert.Equal(t, []time.Duration{time.Second}, conn.flushed)

	var event OrderEvent
	require.NoError(t, json.Unmarshal(conn.messages[0].data, &event))
	assert.Equal(t, OrderEvent{
		Event:     EventTransition,
		OrderID:   "thor_1",
		Status:    terminal.HardwareOrderStatusShipped,
		Amount:    54000,
		Currency:  "gbp",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, event)
}

func TestNATSPublisher_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil order", func(t *testing.T) {
		t.Parallel()

		publisher := newPublisher(&fakeConn{}, "orders", time.Second)
		require.ErrorIs(t, publisher.PublishOrder(context.Background(), EventCreated, nil), constants.ErrNilOrder)
	})

	t.Run("publish failure", func(t *testing.T) {
		t.Parallel()

		publisher := newPublisher(&fakeConn{publishErr: errPublish}, "orders", time.Second)

		err := publisher.PublishOrder(context.Background(), EventCreated, &terminal.HardwareOrder{ID: "thor_1"})
		require.ErrorIs(t, err, errPublish)
		assert.Contains(t, err.Error(), "publishing order thor_1")
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		conn := &fakeConn{}
		publisher := newPublisher(conn, "orders", time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := publisher.PublishOrder(ctx, EventCreated, &terminal.HardwareOrder{ID: "thor_1"})
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, conn.messages)
	})
}

func TestNATSPublisher_Subject(t *testing.T) {
	t.Parallel()

	publisher := newPublisher(&fakeConn{}, "acme.orders.", time.Second)

	assert.Equal(t, "acme.orders.pending", publisher.Subject(terminal.HardwareOrderStatusPending))
	assert.Equal(t, "acme.orders.unknown", publisher.Subject(""))
}

func TestNATSPublisher_Close(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	publisher := newPublisher(conn, "", time.Second)

	require.NoError(t, publisher.Close())
	assert.True(t, conn.drained)
}

func TestNewPublisherFromConfig(t *testing.T) {
	t.Parallel()

	publisher, err := NewPublisherFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &NoOpPublisher{}, publisher)
	require.NoError(t, publisher.PublishOrder(context.Background(), EventCreated, nil))
	require.NoError(t, publisher.Close())

	_, err = NewNATSPublisher(&Config{URL: "  "})
	require.ErrorIs(t, err, constants.ErrNATSURLRequired)
}
