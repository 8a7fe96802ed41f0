package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type demoConfig struct {
	Debounce time.Duration `env:"DEBOUNCE" envDefault:"300ms"`
	Driver   string        `env:"STORE_DRIVER" envDefault:"memory"`
}

type requiredConfig struct {
	URL string `env:"FORMKIT_TEST_REQUIRED_URL,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg demoConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("FORMKIT_TEST_DEFAULTS_")))
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "memory", cfg.Driver)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FORMKIT_TEST_ENV_DEBOUNCE", "50ms")
	t.Setenv("FORMKIT_TEST_ENV_STORE_DRIVER", "redis")

	var cfg demoConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("FORMKIT_TEST_ENV_")))
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "redis", cfg.Driver)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FORMKIT_TEST_FILE_STORE_DRIVER=file-driver\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FORMKIT_TEST_FILE_STORE_DRIVER") })

	var cfg demoConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("FORMKIT_TEST_FILE_"), config.WithEnvFile(path)))
	assert.Equal(t, "file-driver", cfg.Driver)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *demoConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg demoConfig
		err := config.Load(&cfg, config.WithEnvFile(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("must load panics", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
