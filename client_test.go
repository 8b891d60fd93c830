package stringdex

import (
	"testing"
	"time"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithValkey("localhost:6379")(cfg)
	if len(cfg.addrs) != 1 || cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addrs = %v, want [localhost:6379]", cfg.addrs)
	}

	WithPassword("secret")(cfg)
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithKeyPrefix("custom:")(cfg)
	if cfg.keyPrefix != "custom:" {
		t.Errorf("keyPrefix = %q, want custom:", cfg.keyPrefix)
	}

	cfg2 := &clientConfig{}
	WithRedis("localhost:6380", "localhost:6381")(cfg2)
	if len(cfg2.addrs) != 2 {
		t.Errorf("addrs = %v, want two entries", cfg2.addrs)
	}
}

func TestWithReadinessTimeout(t *testing.T) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}

	WithReadinessTimeout(3 * time.Second)(cfg)
	if cfg.readinessTimeout != 3*time.Second {
		t.Errorf("readinessTimeout = %v, want 3s", cfg.readinessTimeout)
	}

	// Non-positive values keep the previous timeout.
	WithReadinessTimeout(0)(cfg)
	if cfg.readinessTimeout != 3*time.Second {
		t.Errorf("readinessTimeout = %v, want unchanged 3s", cfg.readinessTimeout)
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{store: nil}
	c.Close() // must not panic
}

func TestFilter_DomainRoundTrip(t *testing.T) {
	yes := true
	n := 5
	ch := "e"
	f := Filter{IsPalindrome: &yes, MinLength: &n, ContainsCharacter: &ch}

	got := filterFromDomain(f.toDomain())
	if got.IsPalindrome == nil || !*got.IsPalindrome {
		t.Error("IsPalindrome lost in conversion")
	}
	if got.MinLength == nil || *got.MinLength != 5 {
		t.Error("MinLength lost in conversion")
	}
	if got.MaxLength != nil || got.WordCount != nil {
		t.Error("unset fields must stay nil")
	}
	if got.ContainsCharacter == nil || *got.ContainsCharacter != "e" {
		t.Error("ContainsCharacter lost in conversion")
	}
}
