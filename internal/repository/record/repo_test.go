package record

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/stringdex/internal/db"
	"github.com/kailas-cloud/stringdex/internal/domain"
	domrec "github.com/kailas-cloud/stringdex/internal/domain/record"
)

func makeRecord(t *testing.T, value string) domrec.Record {
	t.Helper()
	rec, err := domrec.New(value)
	if err != nil {
		t.Fatalf("domrec.New(%q): %v", value, err)
	}
	return rec
}

func TestInsert_Success(t *testing.T) {
	rec := makeRecord(t, "hello")

	var gotKey string
	var gotValue []byte
	store := &mockStore{
		setNXFn: func(_ context.Context, key string, value []byte) error {
			gotKey = key
			gotValue = value
			return nil
		},
	}

	repo := New(store)
	if err := repo.Insert(context.Background(), &rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKey := "stringdex:strings:" + rec.ID()
	if gotKey != wantKey {
		t.Errorf("key = %s, want %s", gotKey, wantKey)
	}
	if !strings.Contains(string(gotValue), `"value":"hello"`) {
		t.Errorf("stored payload missing value: %s", gotValue)
	}
}

func TestInsert_Duplicate(t *testing.T) {
	rec := makeRecord(t, "hello")
	store := &mockStore{
		setNXFn: func(_ context.Context, _ string, _ []byte) error {
			return db.ErrKeyExists
		},
	}

	repo := New(store)
	err := repo.Insert(context.Background(), &rec)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("error = %v, want ErrAlreadyExists", err)
	}
}

func TestGet_RoundTrip(t *testing.T) {
	rec := makeRecord(t, "Racecar level")
	data, err := marshalRecord(&rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	store := &mockStore{
		getFn: func(_ context.Context, key string) ([]byte, error) {
			if key != "stringdex:strings:"+rec.ID() {
				t.Errorf("unexpected key %s", key)
			}
			return data, nil
		},
	}

	repo := New(store)
	got, err := repo.Get(context.Background(), rec.ID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID() != rec.ID() || got.Value() != rec.Value() {
		t.Errorf("round-trip mismatch: got %s/%q", got.ID(), got.Value())
	}
	if got.Properties().WordCount != 2 {
		t.Errorf("word count = %d, want 2", got.Properties().WordCount)
	}
	if !got.CreatedAt().Equal(rec.CreatedAt()) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt(), rec.CreatedAt())
	}
}

func TestGet_NotFound(t *testing.T) {
	store := &mockStore{
		getFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, db.ErrKeyNotFound
		},
	}

	repo := New(store)
	_, err := repo.Get(context.Background(), "deadbeef")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestList_SkipsVanishedKeys(t *testing.T) {
	a := makeRecord(t, "first")
	b := makeRecord(t, "second")
	dataA, _ := marshalRecord(&a)
	dataB, _ := marshalRecord(&b)

	store := &mockStore{
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			if pattern != "stringdex:strings:*" {
				t.Errorf("scan pattern = %s", pattern)
			}
			return []string{
				"stringdex:strings:" + a.ID(),
				"stringdex:strings:gone",
				"stringdex:strings:" + b.ID(),
			}, nil
		},
		getMultiFn: func(_ context.Context, keys []string) ([][]byte, error) {
			if len(keys) != 3 {
				t.Errorf("fetched %d keys, want 3", len(keys))
			}
			// middle key deleted between scan and fetch
			return [][]byte{dataA, nil, dataB}, nil
		},
	}

	repo := New(store)
	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Value() != "first" || records[1].Value() != "second" {
		t.Errorf("unexpected records: %q, %q", records[0].Value(), records[1].Value())
	}
}

func TestList_Empty(t *testing.T) {
	repo := New(&mockStore{})
	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	store := &mockStore{
		existsFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
		delFn: func(_ context.Context, key string) error {
			deleted = true
			if key != "stringdex:strings:abc" {
				t.Errorf("del key = %s", key)
			}
			return nil
		},
	}

	repo := New(store)
	if err := repo.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("Del was not called")
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := New(&mockStore{}) // Exists defaults to false
	err := repo.Delete(context.Background(), "abc")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCount(t *testing.T) {
	store := &mockStore{
		scanFn: func(_ context.Context, _ string) ([]string, error) {
			return []string{"k1", "k2", "k3"}, nil
		},
	}

	repo := New(store)
	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestWithKeyPrefix(t *testing.T) {
	var gotKey string
	store := &mockStore{
		getFn: func(_ context.Context, key string) ([]byte, error) {
			gotKey = key
			return nil, db.ErrKeyNotFound
		},
	}

	repo := New(store).WithKeyPrefix("custom:")
	_, _ = repo.Get(context.Background(), "abc")
	if gotKey != "custom:strings:abc" {
		t.Errorf("key = %s, want custom:strings:abc", gotKey)
	}
}
