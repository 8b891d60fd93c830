// Package record defines the stored string aggregate.
package record

import (
	"strings"
	"time"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/analysis"
)

// Record is the persisted string aggregate (immutable value object).
// The ID is always the SHA-256 content hash of the normalized value;
// the two are never independently settable.
type Record struct {
	id        string
	value     string
	props     analysis.Properties
	createdAt time.Time
}

// New normalizes raw, analyzes it and creates a Record.
// Empty or whitespace-only input yields domain.ErrEmptyValue.
func New(raw string) (Record, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Record{}, domain.ErrEmptyValue
	}

	props := analysis.Analyze(value)
	return Record{
		id:        props.SHA256,
		value:     value,
		props:     props,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(id, value string, props analysis.Properties, createdAt time.Time) Record {
	return Record{id: id, value: value, props: props, createdAt: createdAt}
}

// ID returns the content-hash identifier.
func (r *Record) ID() string { return r.id }

// Value returns the normalized string value.
func (r *Record) Value() string { return r.value }

// Properties returns the analyzed properties.
func (r *Record) Properties() analysis.Properties { return r.props }

// CreatedAt returns the first-insertion timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
