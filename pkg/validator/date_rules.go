package validator

import (
	"fmt"
	"time"
)

// DateLayout is the layout date inputs submit their value in.
const DateLayout = "2006-01-02"

// ParseDate accepts a date-input value or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// AgeAt returns the number of whole years between birthdate and now.
func AgeAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()

	// Adjust if birthday hasn't occurred this year
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}

	return age
}

// AgeAtLeast validates that the date in value is at least minAge years before now.
// Unparseable dates fail.
func AgeAtLeast(field, value string, minAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			birthdate, ok := ParseDate(value)
			if !ok {
				return false
			}
			return AgeAt(birthdate, now) >= minAge
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("minimum age of %d years required", minAge),
		},
	}
}
