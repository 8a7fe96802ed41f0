package notifications

import "errors"

// ErrNotifierClosed is returned by Show after Close.
var ErrNotifierClosed = errors.New("notifier is closed")
