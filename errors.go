package stringdex

import "github.com/kailas-cloud/stringdex/internal/domain"

// Sentinel errors surfaced by the SDK; test with errors.Is.
var (
	// ErrNotFound signals a missing string record.
	ErrNotFound = domain.ErrNotFound
	// ErrAlreadyExists signals that the content hash is already stored.
	ErrAlreadyExists = domain.ErrAlreadyExists
	// ErrEmptyValue signals an empty or whitespace-only input value.
	ErrEmptyValue = domain.ErrEmptyValue
)
