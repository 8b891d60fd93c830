// Package query implements structured record filters and the
// natural-language filter interpreter.
package query

import (
	"strings"

	"github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Filter is a set of optional predicates over a record's analyzed
// properties. A nil field imposes no constraint.
type Filter struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsEmpty reports whether no predicate is set.
func (f Filter) IsEmpty() bool {
	return f.IsPalindrome == nil && f.MinLength == nil && f.MaxLength == nil &&
		f.WordCount == nil && f.ContainsCharacter == nil
}

// Matches reports whether rec satisfies every present predicate.
// An empty filter matches every record (vacuous truth).
// ContainsCharacter is tested against the stored value, case-sensitive,
// not against the character frequency map.
func (f Filter) Matches(rec record.Record) bool {
	props := rec.Properties()

	if f.IsPalindrome != nil && props.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && props.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && props.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && props.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != nil && !strings.Contains(rec.Value(), *f.ContainsCharacter) {
		return false
	}
	return true
}
