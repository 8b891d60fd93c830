package record

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/analysis"
)

func TestNew_TrimsAndHashes(t *testing.T) {
	rec, err := New("  Racecar  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Value() != "Racecar" {
		t.Errorf("value = %q, want %q", rec.Value(), "Racecar")
	}
	if rec.ID() != analysis.Hash("Racecar") {
		t.Errorf("id = %s, want content hash of trimmed value", rec.ID())
	}
	if rec.ID() != rec.Properties().SHA256 {
		t.Error("id and properties hash must be identical")
	}
	if !rec.Properties().IsPalindrome {
		t.Error("Racecar should be a palindrome")
	}
	if rec.CreatedAt().IsZero() {
		t.Error("createdAt must be set on construction")
	}
	if rec.CreatedAt().Location() != time.UTC {
		t.Error("createdAt must be UTC")
	}
}

func TestNew_EmptyValue(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := New(raw)
		if !errors.Is(err, domain.ErrEmptyValue) {
			t.Errorf("New(%q) error = %v, want ErrEmptyValue", raw, err)
		}
	}
}

func TestNew_SameValueSameID(t *testing.T) {
	a, err := New("hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New("  hello world  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID() != b.ID() {
		t.Errorf("identity must ignore surrounding whitespace: %s vs %s", a.ID(), b.ID())
	}
}

func TestReconstruct(t *testing.T) {
	props := analysis.Analyze("hello")
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := Reconstruct(props.SHA256, "hello", props, created)

	if rec.ID() != props.SHA256 {
		t.Errorf("id = %s, want %s", rec.ID(), props.SHA256)
	}
	if !rec.CreatedAt().Equal(created) {
		t.Errorf("createdAt = %v, want %v", rec.CreatedAt(), created)
	}
}
