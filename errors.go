package formkit

import "errors"

var (
	ErrSubmitFailed      = errors.New("formkit: submission failed")
	ErrUnknownStore      = errors.New("formkit: unknown user data store")
	ErrIncorrectPassword = errors.New("formkit: current password is incorrect")
)
