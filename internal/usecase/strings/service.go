// Package strings orchestrates string analysis, storage and filtering.
package strings

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/stringdex/internal/domain/analysis"
	"github.com/kailas-cloud/stringdex/internal/domain/query"
	domrec "github.com/kailas-cloud/stringdex/internal/domain/record"
)

// Service handles string record CRUD and filtered retrieval.
type Service struct {
	repo     Repository
	analyzed prometheus.Counter
}

// New creates a strings service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches a counter incremented once per analyzed string.
func (s *Service) WithMetrics(analyzed prometheus.Counter) *Service {
	s.analyzed = analyzed
	return s
}

// Create analyzes raw and stores the resulting record. Returns
// domain.ErrEmptyValue for blank input and domain.ErrAlreadyExists when
// the same normalized value is already stored.
func (s *Service) Create(ctx context.Context, raw string) (domrec.Record, error) {
	rec, err := domrec.New(raw)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("build record: %w", err)
	}

	if s.analyzed != nil {
		s.analyzed.Inc()
	}

	if err := s.repo.Insert(ctx, &rec); err != nil {
		return domrec.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// GetByValue looks up a record by the content hash of its trimmed value.
func (s *Service) GetByValue(ctx context.Context, raw string) (domrec.Record, error) {
	rec, err := s.repo.Get(ctx, analysis.Hash(raw))
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns all records satisfying the filter. The scan is a full-table
// read; an empty filter returns everything.
func (s *Service) List(ctx context.Context, f query.Filter) ([]domrec.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	matched := make([]domrec.Record, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Query interprets a natural-language query into a filter and returns the
// matching records together with the interpreted filter. Queries matching
// no pattern degrade to an empty filter and return every record.
func (s *Service) Query(ctx context.Context, text string) (query.Filter, []domrec.Record, error) {
	f := query.Interpret(text)
	records, err := s.List(ctx, f)
	if err != nil {
		return query.Filter{}, nil, err
	}
	return f, records, nil
}

// DeleteByValue removes the record whose trimmed value hashes to the
// stored ID.
func (s *Service) DeleteByValue(ctx context.Context, raw string) error {
	if err := s.repo.Delete(ctx, analysis.Hash(raw)); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
