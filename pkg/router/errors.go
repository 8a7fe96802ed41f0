package router

import "errors"

var (
	ErrUnknownRoute = errors.New("router: unknown route")
	ErrHookFailed   = errors.New("router: enter hook failed")
)
