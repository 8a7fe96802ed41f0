package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`\d`)
	symbolRegex    = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	// Matched case-insensitively.
	commonPasswords = map[string]bool{
		"password":    true,
		"123456":      true,
		"123456789":   true,
		"qwerty":      true,
		"abc123":      true,
		"password123": true,
		"admin":       true,
		"letmein":     true,
		"welcome":     true,
		"monkey":      true,
	}
)

// MinStrongPasswordLength is the length a password must reach to earn the length point.
const MinStrongPasswordLength = 8

// StrengthLevel is a categorical password quality rating.
type StrengthLevel int

const (
	Weak StrengthLevel = iota + 1
	Fair
	Good
	Strong
)

type strengthMeta struct {
	key   string
	label string
	color string
}

var strengthLevels = map[StrengthLevel]strengthMeta{
	Weak:   {key: "weak", label: "Weak", color: "#e74c3c"},
	Fair:   {key: "fair", label: "Fair", color: "#f39c12"},
	Good:   {key: "good", label: "Good", color: "#f1c40f"},
	Strong: {key: "strong", label: "Strong", color: "#27ae60"},
}

// Key is the lowercase identifier renderers use as a CSS class.
func (l StrengthLevel) Key() string {
	return strengthLevels[l].key
}

// Label is the human-readable level name.
func (l StrengthLevel) Label() string {
	return strengthLevels[l].label
}

// Color is the display color as a hex triplet.
func (l StrengthLevel) Color() string {
	return strengthLevels[l].color
}

func (l StrengthLevel) String() string {
	if m, ok := strengthLevels[l]; ok {
		return m.label
	}
	return "Unknown"
}

// PasswordChecks lists the individual heuristics behind a strength score.
type PasswordChecks struct {
	Length    bool
	Lowercase bool
	Uppercase bool
	Digit     bool
	Symbol    bool
	NotCommon bool
}

// Score is the number of passed checks, 0 through 6.
func (c PasswordChecks) Score() int {
	score := 0
	for _, ok := range []bool{c.Length, c.Lowercase, c.Uppercase, c.Digit, c.Symbol, c.NotCommon} {
		if ok {
			score++
		}
	}
	return score
}

// Strength describes how a password was rated.
type Strength struct {
	Level  StrengthLevel
	Score  int
	Checks PasswordChecks
}

// CheckPassword runs every strength heuristic against value.
func CheckPassword(value string) PasswordChecks {
	return PasswordChecks{
		Length:    utf8.RuneCountInString(value) >= MinStrongPasswordLength,
		Lowercase: lowercaseRegex.MatchString(value),
		Uppercase: uppercaseRegex.MatchString(value),
		Digit:     digitRegex.MatchString(value),
		Symbol:    symbolRegex.MatchString(value),
		NotCommon: !IsCommonPassword(value),
	}
}

// PasswordStrength rates value and exposes the checks behind the rating.
func PasswordStrength(value string) Strength {
	checks := CheckPassword(value)
	score := checks.Score()
	return Strength{
		Level:  levelForScore(score),
		Score:  score,
		Checks: checks,
	}
}

// ScorePassword maps a password to its StrengthLevel. It is pure and deterministic.
func ScorePassword(value string) StrengthLevel {
	return PasswordStrength(value).Level
}

func levelForScore(score int) StrengthLevel {
	switch {
	case score <= 2:
		return Weak
	case score <= 3:
		return Fair
	case score <= 4:
		return Good
	default:
		return Strong
	}
}

// IsCommonPassword reports whether value is on the known-weak list, ignoring case.
func IsCommonPassword(value string) bool {
	return commonPasswords[strings.ToLower(value)]
}

// NotCommonPassword rejects passwords from the known-weak list.
func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsCommonPassword(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password is too common, please choose a different one",
		},
	}
}

// MinPasswordStrength rejects passwords rated below min.
func MinPasswordStrength(field, value string, min StrengthLevel) Rule {
	return Rule{
		Check: func() bool {
			return ScorePassword(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must be at least " + min.Label() + " strength",
		},
	}
}
