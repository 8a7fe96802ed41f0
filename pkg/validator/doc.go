// Package validator is the field validation engine behind formkit forms.
//
// A Table maps field identifiers to a declarative FieldRule (required flag,
// length bounds, pattern, tagged custom predicate, message). Table.Evaluate
// applies the rule for one field to a raw input value and returns an Outcome
// that is either valid or carries the single message to display.
//
// # Evaluation order
//
// Values are trimmed before checking. The first failing check wins:
//
//  1. required and empty
//  2. empty and optional (valid, nothing else runs)
//  3. minimum length, then maximum length (in runes)
//  4. pattern
//  5. custom predicate
//  6. confirmation fields compared against the field they confirm
//
// So a value that is both too short and malformed always reports the rule
// message for the length failure, never a later one.
//
// # Rules
//
// DefaultRules returns the built-in registration and settings rule set.
// Rules can also be loaded from YAML:
//
//	rules, err := validator.LoadRulesFile("rules.yaml")
//	if err != nil {
//	    return err
//	}
//	table := validator.NewTable(validator.WithRules(rules))
//
//	out := table.Evaluate("email", " john@example.com ", nil)
//	if !out.Valid {
//	    fmt.Println(out.Message)
//	}
//
// Custom checks are a tagged Predicate rather than a function value, which
// keeps rule tables serializable.
//
// # Password strength
//
// ScorePassword rates a password Weak, Fair, Good or Strong from six checks:
// length of at least 8, lowercase, uppercase, digit, symbol, and absence from
// a short list of common passwords.
//
// # Lower-level rules
//
// The Rule type pairs a Check closure with a ValidationError. Apply runs a set
// of rules and collects every failure into ValidationErrors; First stops at
// the first failure. Both are what Table.Evaluate is built on, and can be used
// directly for ad-hoc checks.
package validator
