package notifications

import (
	"time"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

var icons = map[Type]string{
	TypeSuccess: "fa-check-circle",
	TypeError:   "fa-exclamation-circle",
	TypeWarning: "fa-exclamation-triangle",
	TypeInfo:    "fa-info-circle",
}

// Normalize maps unknown types to TypeInfo.
func (t Type) Normalize() Type {
	if _, ok := icons[t]; ok {
		return t
	}
	return TypeInfo
}

// Icon returns the icon class shown next to the message.
func (t Type) Icon() string {
	return icons[t.Normalize()]
}

// Notification is a transient message shown to the user.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the notification should no longer be shown at now.
// A zero ExpiresAt never expires.
func (n Notification) IsExpired(now time.Time) bool {
	if n.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(n.ExpiresAt)
}
