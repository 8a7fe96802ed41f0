package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is returned when a rule pattern does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrUnknownPredicate is returned when a rule names a custom predicate kind that does not exist.
	ErrUnknownPredicate = errors.New("unknown custom predicate")

	// ErrInvalidRule is returned for structurally broken rule definitions.
	ErrInvalidRule = errors.New("invalid rule definition")

	// ErrFailedToParseRules is returned when a rule document cannot be decoded.
	ErrFailedToParseRules = errors.New("failed to parse rule document")
)
