package domain

import "errors"

var (
	// ErrNotFound signals a missing string record.
	ErrNotFound = errors.New("string not found")
	// ErrAlreadyExists signals that the content hash is already stored.
	ErrAlreadyExists = errors.New("string already exists")
	// ErrEmptyValue signals an empty or whitespace-only input value.
	ErrEmptyValue = errors.New("input string cannot be empty")
)
