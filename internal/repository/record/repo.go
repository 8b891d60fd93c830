// Package record persists string records in the key-value store.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/stringdex/internal/db"
	"github.com/kailas-cloud/stringdex/internal/domain"
	domrec "github.com/kailas-cloud/stringdex/internal/domain/record"
)

// store is the consumer interface for records (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/strings.Repository.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a record repository with the default key prefix.
func New(s store) *Repo {
	return &Repo{store: s, keyPrefix: domain.KeyPrefix}
}

// WithKeyPrefix overrides the key namespace (empty keeps the default).
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.keyPrefix = prefix
	}
	return r
}

// Insert stores a new record. The SET NX on the content-addressed key
// makes the duplicate check atomic; a present key yields
// domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, rec *domrec.Record) error {
	data, err := marshalRecord(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	key := r.recordKey(rec.ID())
	if err := r.store.SetNX(ctx, key, data); err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("setnx %s: %w", key, err)
	}
	return nil
}

// Get returns a record by its content-hash ID.
func (r *Repo) Get(ctx context.Context, id string) (domrec.Record, error) {
	key := r.recordKey(id)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domrec.Record{}, domain.ErrNotFound
		}
		return domrec.Record{}, fmt.Errorf("get %s: %w", key, err)
	}
	return unmarshalRecord(data)
}

// List returns every stored record. Keys deleted between the scan and the
// batched fetch are skipped.
func (r *Repo) List(ctx context.Context) ([]domrec.Record, error) {
	keys, err := r.store.Scan(ctx, r.recordKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	records := make([]domrec.Record, 0, len(values))
	for i, data := range values {
		if data == nil {
			continue
		}
		rec, err := unmarshalRecord(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.recordKey("*"))
	if err != nil {
		return 0, fmt.Errorf("scan records: %w", err)
	}
	return len(keys), nil
}

// Delete removes a record by ID. Missing records yield domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.recordKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

func (r *Repo) recordKey(id string) string {
	return fmt.Sprintf("%sstrings:%s", r.keyPrefix, id)
}
