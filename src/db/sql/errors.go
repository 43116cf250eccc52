package db

import "errors"

// ErrNotFound is returned when a single-record lookup or delete misses.
// Handlers map it to a 404 instead of a generic server error.
var ErrNotFound = errors.New("record not found")
