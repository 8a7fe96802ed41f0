package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Notifier shows notifications and dismisses each one after its TTL.
type Notifier struct {
	storage   Storage
	deliverer Deliverer
	logger    *slog.Logger
	ttl       time.Duration
	now       func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithTTL sets the auto-dismiss delay. Non-positive values disable auto-dismiss.
func WithTTL(d time.Duration) Option {
	return func(n *Notifier) {
		n.ttl = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

// NewNotifier creates a notifier. Nil storage and deliverer fall back to
// MemoryStorage and NoOpDeliverer.
func NewNotifier(storage Storage, deliverer Deliverer, opts ...Option) *Notifier {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	if deliverer == nil {
		deliverer = NoOpDeliverer{}
	}

	n := &Notifier{
		storage:   storage,
		deliverer: deliverer,
		logger:    slog.Default(),
		ttl:       DefaultTTL,
		now:       time.Now,
		timers:    make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewFromConfig creates a notifier using cfg.TTL.
func NewFromConfig(cfg Config, storage Storage, deliverer Deliverer, opts ...Option) *Notifier {
	return NewNotifier(storage, deliverer, append([]Option{WithTTL(cfg.TTL)}, opts...)...)
}

// Show stores and displays a message, scheduling its dismissal.
// Unknown types are shown as TypeInfo.
func (n *Notifier) Show(ctx context.Context, message string, typ Type) (Notification, error) {
	now := n.now()
	notif := Notification{
		ID:        uuid.New().String(),
		Type:      typ.Normalize(),
		Message:   message,
		CreatedAt: now,
	}
	if n.ttl > 0 {
		notif.ExpiresAt = now.Add(n.ttl)
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return Notification{}, ErrNotifierClosed
	}
	n.mu.Unlock()

	if err := n.storage.Create(ctx, notif); err != nil {
		return Notification{}, fmt.Errorf("failed to store notification: %w", err)
	}

	// Display is best effort; the notification stays listed even if rendering fails.
	if err := n.deliverer.Display(ctx, notif); err != nil {
		n.logger.LogAttrs(ctx, slog.LevelWarn, "failed to display notification",
			logger.NotificationID(notif.ID),
			logger.Error(err),
		)
	}

	if n.ttl > 0 {
		detached := context.WithoutCancel(ctx)
		n.mu.Lock()
		defer n.mu.Unlock()
		// Close may have run while the notification was being displayed.
		if n.closed {
			return notif, nil
		}
		n.timers[notif.ID] = time.AfterFunc(n.ttl, func() {
			if err := n.dismiss(detached, notif.ID, false); err != nil {
				n.logger.LogAttrs(detached, slog.LevelDebug, "auto-dismiss skipped",
					logger.NotificationID(notif.ID),
					logger.Error(err),
				)
			}
		})
	}

	return notif, nil
}

// Success, Error, Warning and Info are shorthands for Show.
func (n *Notifier) Success(ctx context.Context, message string) (Notification, error) {
	return n.Show(ctx, message, TypeSuccess)
}

func (n *Notifier) Error(ctx context.Context, message string) (Notification, error) {
	return n.Show(ctx, message, TypeError)
}

func (n *Notifier) Warning(ctx context.Context, message string) (Notification, error) {
	return n.Show(ctx, message, TypeWarning)
}

func (n *Notifier) Info(ctx context.Context, message string) (Notification, error) {
	return n.Show(ctx, message, TypeInfo)
}

// Dismiss removes a notification before its TTL elapses.
func (n *Notifier) Dismiss(ctx context.Context, id string) error {
	return n.dismiss(ctx, id, true)
}

func (n *Notifier) dismiss(ctx context.Context, id string, stopTimer bool) error {
	n.mu.Lock()
	if t, ok := n.timers[id]; ok {
		if stopTimer {
			t.Stop()
		}
		delete(n.timers, id)
	}
	n.mu.Unlock()

	notif, err := n.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := n.storage.Delete(ctx, id); err != nil {
		return err
	}
	if err := n.deliverer.Remove(ctx, notif); err != nil {
		n.logger.LogAttrs(ctx, slog.LevelWarn, "failed to remove notification",
			logger.NotificationID(id),
			logger.Error(err),
		)
	}
	return nil
}

// Active returns the notifications currently shown, oldest first, skipping
// any whose TTL has elapsed but whose timer has not fired yet.
func (n *Notifier) Active(ctx context.Context) ([]Notification, error) {
	all, err := n.storage.List(ctx)
	if err != nil {
		return nil, err
	}

	now := n.now()
	active := all[:0]
	for _, notif := range all {
		if !notif.IsExpired(now) {
			active = append(active, notif)
		}
	}
	return active, nil
}

// Close stops pending dismissal timers. Notifications already shown stay in
// storage; Show fails afterwards.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.closed = true
}
