package validator

import (
	"fmt"
	"regexp"
	"time"
)

// PredicateKind names a known custom validator.
type PredicateKind string

const (
	// PredicateAgeAtLeast passes when the value is a date at least MinAge years in the past.
	PredicateAgeAtLeast PredicateKind = "age_at_least"
	// PredicateMinStrength passes when the value scores at least MinStrength.
	PredicateMinStrength PredicateKind = "min_strength"
	// PredicateNotCommonPassword rejects values on the known-weak password list.
	PredicateNotCommonPassword PredicateKind = "not_common_password"
)

// Predicate is a tagged custom check. Only the fields relevant to Kind are read.
type Predicate struct {
	Kind        PredicateKind `yaml:"kind"`
	MinAge      int           `yaml:"min_age,omitempty"`
	MinStrength StrengthLevel `yaml:"min_strength,omitempty"`
}

// AgeAtLeastPredicate builds the predicate used for minimum-age fields.
func AgeAtLeastPredicate(years int) *Predicate {
	return &Predicate{Kind: PredicateAgeAtLeast, MinAge: years}
}

// Validate reports ErrUnknownPredicate for kinds this package cannot evaluate.
func (p Predicate) Validate() error {
	switch p.Kind {
	case PredicateAgeAtLeast:
		if p.MinAge < 0 {
			return fmt.Errorf("%w: %s requires a non-negative min_age", ErrInvalidRule, p.Kind)
		}
		return nil
	case PredicateMinStrength:
		if p.MinStrength < Weak || p.MinStrength > Strong {
			return fmt.Errorf("%w: %s requires min_strength between %d and %d", ErrInvalidRule, p.Kind, Weak, Strong)
		}
		return nil
	case PredicateNotCommonPassword:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPredicate, p.Kind)
	}
}

func (p Predicate) rule(field, value string, now time.Time) Rule {
	switch p.Kind {
	case PredicateAgeAtLeast:
		return AgeAtLeast(field, value, p.MinAge, now)
	case PredicateMinStrength:
		return MinPasswordStrength(field, value, p.MinStrength)
	case PredicateNotCommonPassword:
		return NotCommonPassword(field, value)
	default:
		// Unknown kinds never pass.
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{Field: field, Message: "unknown custom check"},
		}
	}
}

// FieldRule is the declarative constraint set for one field.
// Zero MinLength/MaxLength mean unset, as do nil Pattern and Custom.
type FieldRule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    *Predicate
	Message   string
}

// Outcome is the result of evaluating one field value.
type Outcome struct {
	Field   string
	Valid   bool
	Message string
}

// ValidOutcome builds a passing outcome for field.
func ValidOutcome(field string) Outcome {
	return Outcome{Field: field, Valid: true}
}

// InvalidOutcome builds a failing outcome for field carrying message.
func InvalidOutcome(field, message string) Outcome {
	return Outcome{Field: field, Message: message}
}

// Err returns the outcome as ValidationErrors, or nil when the value was valid.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return ValidationErrors{{Field: o.Field, Message: o.Message}}
}
