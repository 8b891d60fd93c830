package stringdex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/stringdex/internal/domain/query"
	domrec "github.com/kailas-cloud/stringdex/internal/domain/record"
	stringsuc "github.com/kailas-cloud/stringdex/internal/usecase/strings"
)

// StringService exposes string record operations.
type StringService struct {
	svc *stringsuc.Service
}

// Create analyzes and stores a string, returning the stored record.
func (s *StringService) Create(ctx context.Context, value string) (StringRecord, error) {
	rec, err := s.svc.Create(ctx, value)
	if err != nil {
		return StringRecord{}, fmt.Errorf("create string: %w", err)
	}
	return recordToSDK(&rec), nil
}

// Get looks up a stored record by its (trimmed) value.
func (s *StringService) Get(ctx context.Context, value string) (StringRecord, error) {
	rec, err := s.svc.GetByValue(ctx, value)
	if err != nil {
		return StringRecord{}, fmt.Errorf("get string: %w", err)
	}
	return recordToSDK(&rec), nil
}

// List returns all records matching the filter; a zero Filter matches
// everything.
func (s *StringService) List(ctx context.Context, f Filter) ([]StringRecord, error) {
	records, err := s.svc.List(ctx, f.toDomain())
	if err != nil {
		return nil, fmt.Errorf("list strings: %w", err)
	}
	return recordsToSDK(records), nil
}

// Query interprets a natural-language query and returns the derived filter
// together with the matching records.
func (s *StringService) Query(ctx context.Context, text string) (Filter, []StringRecord, error) {
	f, records, err := s.svc.Query(ctx, text)
	if err != nil {
		return Filter{}, nil, fmt.Errorf("query strings: %w", err)
	}
	return filterFromDomain(f), recordsToSDK(records), nil
}

// Delete removes a stored record by its (trimmed) value.
func (s *StringService) Delete(ctx context.Context, value string) error {
	if err := s.svc.DeleteByValue(ctx, value); err != nil {
		return fmt.Errorf("delete string: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *StringService) Count(ctx context.Context) (int, error) {
	n, err := s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count strings: %w", err)
	}
	return n, nil
}

// StringRecord is a stored string with its analyzed properties.
type StringRecord struct {
	ID         string
	Value      string
	Properties Properties
	CreatedAt  time.Time
}

// Properties is the analyzed property set of a stored string.
type Properties struct {
	Length           int
	IsPalindrome     bool
	UniqueCharacters int
	WordCount        int
	SHA256Hash       string
	CharFrequencyMap map[string]int
}

// Filter is a set of optional record predicates; nil fields impose no
// constraint.
type Filter struct {
	IsPalindrome      *bool
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	ContainsCharacter *string
}

func (f Filter) toDomain() query.Filter {
	return query.Filter{
		IsPalindrome:      f.IsPalindrome,
		MinLength:         f.MinLength,
		MaxLength:         f.MaxLength,
		WordCount:         f.WordCount,
		ContainsCharacter: f.ContainsCharacter,
	}
}

func filterFromDomain(f query.Filter) Filter {
	return Filter{
		IsPalindrome:      f.IsPalindrome,
		MinLength:         f.MinLength,
		MaxLength:         f.MaxLength,
		WordCount:         f.WordCount,
		ContainsCharacter: f.ContainsCharacter,
	}
}

func recordToSDK(rec *domrec.Record) StringRecord {
	props := rec.Properties()
	return StringRecord{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: Properties{
			Length:           props.Length,
			IsPalindrome:     props.IsPalindrome,
			UniqueCharacters: props.UniqueCharacters,
			WordCount:        props.WordCount,
			SHA256Hash:       props.SHA256,
			CharFrequencyMap: props.CharFrequency,
		},
		CreatedAt: rec.CreatedAt(),
	}
}

func recordsToSDK(records []domrec.Record) []StringRecord {
	out := make([]StringRecord, len(records))
	for i := range records {
		out[i] = recordToSDK(&records[i])
	}
	return out
}
