package domain

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDishNotFound     = errors.New("dish not found")
	ErrDishUnavailable  = errors.New("dish is not available")
	ErrOrderNotFound    = errors.New("order not found")
)

// ConflictError reports a delete blocked by existing references.
// The message names the blocking reference count.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}
