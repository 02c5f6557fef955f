package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/terminal-hardware/internal/notify"
	"github.com/fivetwenty-io/terminal-hardware/pkg/terminal"
)

// newPublisherFunc is replaced in tests.
var newPublisherFunc = func(config *notify.Config) (notify.Publisher, error) {
	return notify.NewPublisherFromConfig(config)
}

// announceOrder publishes order when --notify-nats is configured. Failures are
// logged and do not fail the command.
func announceOrder(ctx context.Context, event string, order *terminal.HardwareOrder) {
	config := loadConfig()
	if config.NotifyNATS == "" {
		return
	}

	logger := NewLogger(config.LogFormat, viper.GetBool("verbose"), os.Stderr)

	publisher, err := newPublisherFunc(&notify.Config{
		URL:     config.NotifyNATS,
		Subject: config.NotifySubject,
		Name:    "terminal-cli",
	})
	if err != nil {
		logNotifyError(logger, err, order)

		return
	}

	defer func() { _ = publisher.Close() }()

	err = publisher.PublishOrder(ctx, event, order)
	if err != nil {
		logNotifyError(logger, err, order)

		return
	}

	logger.Debug().Str("order", order.ID).Str("event", event).Msg("order change published")
}

func logNotifyError(logger zerolog.Logger, err error, order *terminal.HardwareOrder) {
	logger.Warn().Err(err).Str("order", order.ID).Msg("failed to publish order change")
}
