package userdata

import "errors"

var (
	ErrCorruptedRecord              = errors.New("userdata: stored record is corrupted")
	ErrStoreUnavailable             = errors.New("userdata: store unavailable")
	ErrHashPassword                 = errors.New("userdata: failed to hash password")
	ErrPasswordMismatch             = errors.New("userdata: password does not match")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
)
