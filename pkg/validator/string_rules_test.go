package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Required("name", "John")))
	assert.Error(t, validator.Apply(validator.Required("name", "")))
	assert.Error(t, validator.Apply(validator.Required("name", " \n\t ")))
}

func TestMinMaxLen(t *testing.T) {
	t.Parallel()

	t.Run("min length", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MinLen("name", "Jo", 2)))
		assert.Error(t, validator.Apply(validator.MinLen("name", "J", 2)))
	})

	t.Run("max length", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MaxLen("name", "John", 4)))
		assert.Error(t, validator.Apply(validator.MaxLen("name", "Johnny", 4)))
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.MaxLen("name", "Ünïcø", 5)))
		assert.NoError(t, validator.Apply(validator.MinLen("name", "日本", 2)))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Equal("confirm", "abc", "abc", "mismatch")))

	errs := validator.ExtractValidationErrors(validator.Apply(validator.Equal("confirm", "abc", "abd", "mismatch")))
	assert.Equal(t, "mismatch", errs.Get("confirm"))
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	r := validator.WithMessage(validator.MinLen("name", "J", 2), "Name is too short")
	assert.Equal(t, "Name is too short", r.Error.Message)

	kept := validator.WithMessage(validator.MinLen("name", "J", 2), "")
	assert.Equal(t, "must be at least 2 characters long", kept.Error.Message)
}
