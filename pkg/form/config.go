package form

import "time"

// DefaultDebounce is the quiet period after the last keystroke before a field
// is re-validated.
const DefaultDebounce = 300 * time.Millisecond

type Config struct {
	Debounce time.Duration `env:"FORM_DEBOUNCE" envDefault:"300ms"` // Debounce delays validation of typed input until typing pauses.
}
