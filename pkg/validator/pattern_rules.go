package validator

import "regexp"

// Matches validates value against a precompiled pattern.
// A nil pattern always passes.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			if pattern == nil {
				return true
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid format",
		},
	}
}
