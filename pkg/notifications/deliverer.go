package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Deliverer renders notifications and takes them down again.
type Deliverer interface {
	Display(ctx context.Context, n Notification) error
	Remove(ctx context.Context, n Notification) error
}

// NoOpDeliverer is a deliverer that does nothing.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Display(ctx context.Context, n Notification) error { return nil }

func (NoOpDeliverer) Remove(ctx context.Context, n Notification) error { return nil }

// LogDeliverer writes notifications to a logger, for headless runs.
type LogDeliverer struct {
	logger *slog.Logger
}

// NewLogDeliverer creates a LogDeliverer. A nil logger means slog.Default().
func NewLogDeliverer(l *slog.Logger) *LogDeliverer {
	if l == nil {
		l = slog.Default()
	}
	return &LogDeliverer{logger: l}
}

func (d *LogDeliverer) Display(ctx context.Context, n Notification) error {
	level := slog.LevelInfo
	switch n.Type {
	case TypeError:
		level = slog.LevelError
	case TypeWarning:
		level = slog.LevelWarn
	}
	d.logger.LogAttrs(ctx, level, n.Message,
		logger.Component("notifications"),
		logger.NotificationID(n.ID),
		slog.String("type", string(n.Type)),
		slog.String("icon", n.Type.Icon()),
	)
	return nil
}

func (d *LogDeliverer) Remove(ctx context.Context, n Notification) error {
	d.logger.LogAttrs(ctx, slog.LevelDebug, "notification dismissed",
		logger.Component("notifications"),
		logger.NotificationID(n.ID),
	)
	return nil
}
