package tonclient

import (
	"context"

	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/server"
)

// NewServer creates an initialized client and a JSON-RPC server over it. The caller closes the client.
func NewServer(ctx context.Context, options *ClientOptions) (*server.Server, *client.Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	cli, err := NewClient(ctx, options)
	if err != nil {
		return nil, nil, err
	}
	return server.New(cli, server.WithLogger(options.Logger.Named("server"))), cli, nil
}
