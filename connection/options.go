package connection

import (
	"github.com/abhissng/sqlhelper/adapters/log"
)

// Option tunes how New resolves a Connection.
type Option func(*options)

type options struct {
	provider *Provider
	logger   *log.Log
}

// WithProvider declares the provider instead of detecting it from the factory signature.
func WithProvider(p Provider) Option {
	return func(o *options) {
		o.provider = &p
	}
}

// WithLogger debug-logs each resolution. Connection strings are redacted first.
func WithLogger(logger *log.Log) Option {
	return func(o *options) {
		o.logger = logger
	}
}
