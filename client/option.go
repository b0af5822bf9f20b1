package client

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultKeystoreDir    = "/tmp/ton/keys"
	DefaultInitBackoff    = 100 * time.Millisecond
	DefaultMaxInitBackoff = 5 * time.Second
)

// Option represents option
type Option func(c *Client)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithLiteServerConfig sets the lite-server config text passed to init
func WithLiteServerConfig(config string) Option {
	return func(c *Client) {
		c.liteServerConfig = config
	}
}

// WithKeystoreDir sets the keystore directory passed to init
func WithKeystoreDir(dir string) Option {
	return func(c *Client) {
		c.keystoreDir = dir
	}
}

// WithInitBackoff sets the first and the maximum delay between init attempts
func WithInitBackoff(initial, max time.Duration) Option {
	return func(c *Client) {
		c.initBackoff = initial
		c.maxInitBackoff = max
	}
}

// WithMaxInitAttempts bounds init attempts, zero retries forever
func WithMaxInitAttempts(attempts int) Option {
	return func(c *Client) {
		c.maxInitAttempts = attempts
	}
}
