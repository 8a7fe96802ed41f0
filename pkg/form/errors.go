package form

import "errors"

var (
	ErrUnknownField      = errors.New("form: unknown field")
	ErrFieldNameRequired = errors.New("form: field name or id is required")
)
