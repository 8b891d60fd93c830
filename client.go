// Package stringdex is the embedded SDK: it wires the storage, repository
// and service layers in-process, without going through the HTTP API.
package stringdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/stringdex/internal/db"
	dbRedis "github.com/kailas-cloud/stringdex/internal/db/redis"
	recordrepo "github.com/kailas-cloud/stringdex/internal/repository/record"
	stringsuc "github.com/kailas-cloud/stringdex/internal/usecase/strings"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the stringdex SDK entry point.
type Client struct {
	store db.Store
	svc   *stringsuc.Service
}

// New creates a stringdex Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("stringdex: database address required (use WithValkey or WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("stringdex: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("stringdex: database not ready: %w", err)
	}

	repo := recordrepo.New(store).WithKeyPrefix(cfg.keyPrefix)
	return &Client{
		store: store,
		svc:   stringsuc.New(repo),
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Strings returns the string record service.
func (c *Client) Strings() *StringService {
	return &StringService{svc: c.svc}
}
