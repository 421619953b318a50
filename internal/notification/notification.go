package notification

import (
	"context"
	"log/slog"
)

// Message describes a notification payload.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers notifications to downstream systems. Whether a delivery
// failure aborts the calling operation is the caller's policy, not the
// notifier's.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger. Used in
// development and tests where no mail transport is configured.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "to", message.To, "subject", message.Subject, "body", message.Body)
	return nil
}
