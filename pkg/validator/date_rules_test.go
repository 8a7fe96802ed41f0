package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, ok := validator.ParseDate("2000-02-29")
	assert.True(t, ok)
	assert.Equal(t, time.February, d.Month())

	_, ok = validator.ParseDate("2000-02-29T10:00:00Z")
	assert.True(t, ok)

	_, ok = validator.ParseDate("29/02/2000")
	assert.False(t, ok)
}

func TestAgeAt(t *testing.T) {
	t.Parallel()

	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2020, time.June, 14, 0, 0, 0, 0, time.UTC), 19},
		{"on birthday", time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC), 20},
		{"month before birthday", time.Date(2020, time.May, 30, 0, 0, 0, 0, time.UTC), 19},
		{"after birthday", time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.AgeAt(birth, tt.now))
		})
	}
}

func TestAgeAtLeast(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validator.Apply(validator.AgeAtLeast("birthDate", "2013-10-18", 13, now)))
	assert.Error(t, validator.Apply(validator.AgeAtLeast("birthDate", "2013-10-19", 13, now)))
	assert.Error(t, validator.Apply(validator.AgeAtLeast("birthDate", "2030-01-01", 13, now)))
	assert.Error(t, validator.Apply(validator.AgeAtLeast("birthDate", "not a date", 13, now)))
}
