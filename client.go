package tonclient

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/viant/tonclient/bridge"
	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/config"
	"github.com/viant/tonclient/native"
)

// NewClient loads the lite-server config, opens the native library and returns an initialized client.
// The caller closes the client.
func NewClient(ctx context.Context, options *ClientOptions, clientOptions ...client.Option) (*client.Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	lib, err := native.Open(options.LibraryPath)
	if err != nil {
		return nil, err
	}
	return NewClientWithLibrary(ctx, lib, options, clientOptions...)
}

// NewClientWithLibrary is NewClient over an already opened library.
func NewClientWithLibrary(ctx context.Context, lib native.Library, options *ClientOptions, clientOptions ...client.Option) (*client.Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	liteServerConfig, err := config.New(options.LoaderOptions()...).Load(ctx, options.LiteServerConfig)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(options.KeystoreDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create keystore %v: %w", options.KeystoreDir, err)
	}
	handle := native.New(lib, *options.LogLevel, native.DefaultReceiveTimeout)
	b := bridge.New(handle, options.BridgeOptions()...)
	cli := client.New(b, append(options.Options(liteServerConfig), clientOptions...)...)
	if err = cli.Init(ctx); err != nil {
		_ = cli.Close()
		return nil, err
	}
	options.Logger.Info("client ready", zap.String("config", options.LiteServerConfig), zap.String("keystore", options.KeystoreDir))
	return cli, nil
}
