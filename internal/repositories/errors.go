package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match them
// with errors.Is; handlers map them to 404 and 400 respectively.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
