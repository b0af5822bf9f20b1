package bridge

import (
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultPollInterval is the cadence of both the poller and awaiters.
	DefaultPollInterval = 2 * time.Millisecond
	// DefaultRequestTimeout bounds Call.
	DefaultRequestTimeout = 10 * time.Second
)

// Option represents option
type Option func(b *Bridge)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithPollInterval sets the poller and awaiter cadence
func WithPollInterval(interval time.Duration) Option {
	return func(b *Bridge) {
		b.interval = interval
	}
}

// WithRequestTimeout sets the default await timeout
func WithRequestTimeout(timeout time.Duration) Option {
	return func(b *Bridge) {
		b.timeout = timeout
	}
}

// WithIDGenerator overrides correlation id minting, ids must be unique for the process lifetime.
func WithIDGenerator(newID func() CorrelationID) Option {
	return func(b *Bridge) {
		b.newID = newID
	}
}
