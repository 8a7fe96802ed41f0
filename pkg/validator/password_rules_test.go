package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestScorePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		want     validator.StrengthLevel
	}{
		{"123", validator.Weak},
		{"password", validator.Weak},
		{"PASSWORD", validator.Weak},
		{"", validator.Weak},
		{"abcdefgh", validator.Fair},
		{"abcdefgh1", validator.Good},
		{"Password123", validator.Good},
		{"MyStr0ng!Pass", validator.Strong},
		{"Abcdefgh1!", validator.Strong},
		{"TestPassword123!", validator.Strong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ScorePassword(tt.password))
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	t.Parallel()

	t.Run("common password loses a point", func(t *testing.T) {
		s := validator.PasswordStrength("Password123")
		assert.Equal(t, 4, s.Score)
		assert.False(t, s.Checks.NotCommon)
		assert.False(t, s.Checks.Symbol)
		assert.True(t, s.Checks.Length)
		assert.True(t, s.Checks.Uppercase)
		assert.True(t, s.Checks.Lowercase)
		assert.True(t, s.Checks.Digit)
	})

	t.Run("all checks pass", func(t *testing.T) {
		s := validator.PasswordStrength("MyStr0ng!Pass")
		assert.Equal(t, 6, s.Score)
		assert.Equal(t, validator.Strong, s.Level)
	})

	t.Run("symbol set is fixed", func(t *testing.T) {
		assert.True(t, validator.CheckPassword("a!").Symbol)
		assert.True(t, validator.CheckPassword(`a"`).Symbol)
		assert.False(t, validator.CheckPassword("a-").Symbol)
		assert.False(t, validator.CheckPassword("a_").Symbol)
	})
}

func TestIsCommonPassword(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsCommonPassword("password"))
	assert.True(t, validator.IsCommonPassword("LetMeIn"))
	assert.True(t, validator.IsCommonPassword("QWERTY"))
	assert.False(t, validator.IsCommonPassword("dragon"))
	assert.False(t, validator.IsCommonPassword("MyStr0ng!Pass"))
}

func TestStrengthLevel_Display(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level validator.StrengthLevel
		key   string
		label string
		color string
	}{
		{validator.Weak, "weak", "Weak", "#e74c3c"},
		{validator.Fair, "fair", "Fair", "#f39c12"},
		{validator.Good, "good", "Good", "#f1c40f"},
		{validator.Strong, "strong", "Strong", "#27ae60"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.level.Key())
		assert.Equal(t, tt.label, tt.level.Label())
		assert.Equal(t, tt.color, tt.level.Color())
		assert.Equal(t, tt.label, tt.level.String())
	}

	assert.Equal(t, "Unknown", validator.StrengthLevel(0).String())
	assert.True(t, validator.Weak < validator.Fair && validator.Good < validator.Strong)
}

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	assert.Error(t, validator.Apply(validator.NotCommonPassword("password", "admin")))
	assert.NoError(t, validator.Apply(validator.NotCommonPassword("password", "Tr1cky!pw")))

	assert.Error(t, validator.Apply(validator.MinPasswordStrength("password", "Password123", validator.Strong)))
	assert.NoError(t, validator.Apply(validator.MinPasswordStrength("password", "Password123", validator.Good)))
}
