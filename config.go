package formkit

import (
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/notifications"
	"github.com/dmitrymomot/formkit/pkg/userdata"
)

// Store drivers accepted by Config.Store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the full application configuration, loaded from the environment.
type Config struct {
	Logger        logger.Config
	Form          form.Config
	Notifications notifications.Config
	Redis         userdata.RedisConfig

	Store             string        `env:"USERDATA_STORE" envDefault:"memory"`   // Store selects where user data is kept: memory or redis.
	RulesFile         string        `env:"RULES_FILE"`                           // RulesFile replaces the built-in validation rules with a YAML document.
	SubmitLatency     time.Duration `env:"SUBMIT_LATENCY" envDefault:"1500ms"`   // SubmitLatency is the simulated round trip of a form submission.
	SubmitFailureRate float64       `env:"SUBMIT_FAILURE_RATE" envDefault:"0.1"` // SubmitFailureRate is the share of simulated submissions that fail.
	RedirectDelay     time.Duration `env:"REDIRECT_DELAY" envDefault:"1500ms"`   // RedirectDelay is the pause before showing the profile after registering.
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"10"`          // BcryptCost is the cost used to hash stored passwords.
	StartHash         string        `env:"START_HASH"`                           // StartHash is the location hash of the first page shown.
}
