package services

import "errors"

// ErrNotAuthenticated is returned when an operation requires an active
// session and none exists.
var ErrNotAuthenticated = errors.New("not authenticated")
