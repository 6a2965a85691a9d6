package linked

import "errors"

var (
	// ErrEmptyList is returned when removing from a list that has no elements.
	ErrEmptyList = errors.New("list is empty")
	// ErrIndexOutOfRange is returned when an index falls outside the valid range of an operation.
	ErrIndexOutOfRange = errors.New("index out of range")
)
