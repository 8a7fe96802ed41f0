package validator

import "regexp"

// space is the whitespace class of browser regexes: RE2's \s plus \v,
// Unicode space separators, line/paragraph separators and the BOM.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z` + space + `]+$`)
	emailRegex = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phoneRegex = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
)

// MinimumAge is the youngest age accepted by the birthDate field.
const MinimumAge = 13

// DefaultRules returns a fresh copy of the built-in rule set covering the
// registration and settings forms.
func DefaultRules() map[string]FieldRule {
	return map[string]FieldRule{
		"firstName": {
			Required:  true,
			MinLength: 2,
			MaxLength: 50,
			Pattern:   nameRegex,
			Message:   "First name must be 2-50 characters and contain only letters",
		},
		"lastName": {
			Required:  true,
			MinLength: 2,
			MaxLength: 50,
			Pattern:   nameRegex,
			Message:   "Last name must be 2-50 characters and contain only letters",
		},
		"email": {
			Required: true,
			Pattern:  emailRegex,
			Message:  "Please enter a valid email address",
		},
		"phone": {
			Required: true,
			Pattern:  phoneRegex,
			Message:  "Please enter a valid phone number",
		},
		"password": {
			Required:  true,
			MinLength: 8,
			MaxLength: 128,
			Message:   "Password must be at least 8 characters long",
		},
		"confirmPassword": {
			Required: true,
			Message:  "Passwords must match",
		},
		"birthDate": {
			Required: true,
			Custom:   AgeAtLeastPredicate(MinimumAge),
			Message:  "You must be at least 13 years old",
		},
		"country": {
			Required: true,
			Message:  "Please select a country",
		},
		"terms": {
			Required: true,
			Message:  "You must agree to the terms and conditions",
		},
		"currentPassword": {
			Required: true,
			Message:  "Current password is required",
		},
		"newPassword": {
			Required:  true,
			MinLength: 8,
			MaxLength: 128,
			Message:   "New password must be at least 8 characters long",
		},
		"confirmNewPassword": {
			Required: true,
			Message:  "New passwords must match",
		},
		"notificationEmail": {
			Pattern: emailRegex,
			Message: "Please enter a valid email address",
		},
	}
}
