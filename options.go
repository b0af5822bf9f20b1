package tonclient

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/viant/tonclient/bridge"
	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/config"
	"github.com/viant/tonclient/native"
)

// DefaultLogLevel is the native verbosity used when none is configured.
const DefaultLogLevel = 1

// ClientOptions
//
// defines options for configuring a TON client.
type ClientOptions struct {
	LiteServerConfig      string `yaml:"liteServerConfig,omitempty" json:"liteServerConfig,omitempty"  short:"c" long:"config" description:"lite server config url or path to the file"`
	KeystoreDir           string `yaml:"keystoreDir,omitempty" json:"keystoreDir,omitempty"  short:"k" long:"keystore" description:"keystore directory"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds,omitempty" json:"requestTimeoutSeconds,omitempty"  short:"r" long:"timeout" description:"request timeout in seconds"`
	LogLevel              *int   `yaml:"logLevel,omitempty" json:"logLevel,omitempty"  short:"l" long:"log-level" description:"native library verbosity, 0 is fatal errors only (default: 1)"`
	LibraryPath           string `yaml:"libraryPath,omitempty" json:"libraryPath,omitempty"  short:"L" long:"library" description:"path to the tonlibjson shared library" env:"TON_LIB_PATH"`
	PollIntervalMs        int    `yaml:"pollIntervalMs,omitempty" json:"pollIntervalMs,omitempty" long:"poll-interval" description:"response poll interval in milliseconds"`
	MaxInitAttempts       int    `yaml:"maxInitAttempts,omitempty" json:"maxInitAttempts,omitempty" long:"init-attempts" description:"init attempts, 0 retries forever"`
	CacheDir              string `yaml:"cacheDir,omitempty" json:"cacheDir,omitempty" long:"cache-dir" description:"remote config cache directory"`

	// Logger is shared by every component, nil disables logging.
	Logger *zap.Logger `yaml:"-" json:"-" no-flag:"true"`
}

// Init fills defaults
func (c *ClientOptions) Init() {
	if c.LiteServerConfig == "" {
		c.LiteServerConfig = config.DefaultLocation
	}
	if c.KeystoreDir == "" {
		c.KeystoreDir = client.DefaultKeystoreDir
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = int(bridge.DefaultRequestTimeout / time.Second)
	}
	if c.LogLevel == nil {
		level := DefaultLogLevel
		c.LogLevel = &level
	}
	if c.LibraryPath == "" {
		c.LibraryPath = os.Getenv(native.LibraryPathEnv)
	}
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = int(bridge.DefaultPollInterval / time.Millisecond)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// BridgeOptions returns bridge options derived from ClientOptions.
func (c *ClientOptions) BridgeOptions() []bridge.Option {
	return []bridge.Option{
		bridge.WithLogger(c.Logger.Named("bridge")),
		bridge.WithPollInterval(time.Duration(c.PollIntervalMs) * time.Millisecond),
		bridge.WithRequestTimeout(time.Duration(c.RequestTimeoutSeconds) * time.Second),
	}
}

// Options returns client options derived from ClientOptions, liteServerConfig is the loaded config text.
func (c *ClientOptions) Options(liteServerConfig string) []client.Option {
	return []client.Option{
		client.WithLogger(c.Logger.Named("client")),
		client.WithLiteServerConfig(liteServerConfig),
		client.WithKeystoreDir(c.KeystoreDir),
		client.WithMaxInitAttempts(c.MaxInitAttempts),
	}
}

// LoaderOptions returns config loader options derived from ClientOptions.
func (c *ClientOptions) LoaderOptions() []config.Option {
	result := []config.Option{config.WithLogger(c.Logger.Named("config"))}
	if c.CacheDir != "" {
		result = append(result, config.WithCacheDir(c.CacheDir))
	}
	return result
}
