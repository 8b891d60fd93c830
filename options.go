package stringdex

import "time"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs            []string
	password         string
	keyPrefix        string
	readinessTimeout time.Duration
}

// WithValkey connects to a Valkey instance.
func WithValkey(addrs ...string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
	}
}

// WithRedis connects to a Redis instance. Valkey and Redis are
// interchangeable for the plain key-value commands stringdex uses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
	}
}

// WithPassword sets the database password.
func WithPassword(password string) Option {
	return func(c *clientConfig) {
		c.password = password
	}
}

// WithKeyPrefix overrides the key namespace (default "stringdex:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithReadinessTimeout bounds the startup wait for the database.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		if d > 0 {
			c.readinessTimeout = d
		}
	}
}
