package notifications

import "time"

// DefaultTTL is how long a notification stays on screen.
const DefaultTTL = 4 * time.Second

type Config struct {
	TTL time.Duration `env:"NOTIFICATION_TTL" envDefault:"4s"` // TTL is how long a notification is displayed before it is dismissed automatically.
}
