package terminal

import "github.com/rs/zerolog"

type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to Logger.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger}
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
