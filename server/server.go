package server

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/server/stdio"
	mcpschema "github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	"go.uber.org/zap"

	"github.com/viant/tonclient/client"
)

const (
	Name    = "tonclient"
	Version = "0.1.0"
)

// Server exposes a client over JSON-RPC transports
type Server struct {
	client            client.Interface
	logger            *zap.Logger
	info              mcpschema.Implementation
	stdioServerOption []stdio.Option
}

// NewHandler creates a handler per transport
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler()
}

func (s *Server) newHandler() *Handler {
	return &Handler{client: s.client, logger: s.logger}
}

// NewMCPHandler creates an MCP tool handler per transport
func (s *Server) NewMCPHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	newHandler := protoserver.WithDefaultHandler(ctx, func(h *protoserver.DefaultHandler) error {
		return RegisterTools(h.Registry, s.client)
	})
	ret := &MCPHandler{info: s.info, logger: s.logger}
	peer := &mcpClient{}
	if transport != nil {
		peer.notifier = transport
	}
	ret.handler, ret.err = newHandler(ctx, peer, &mcpLogger{logger: s.logger.Named("mcp")}, peer)
	if ret.err != nil {
		s.logger.Error("failed to create mcp handler", zap.Error(ret.err))
	}
	return ret
}

// Stdio return stdio handler
func (s *Server) Stdio(ctx context.Context) *stdio.Server {
	return stdio.New(ctx, s.NewHandler, s.stdioServerOption...)
}

// MCPStdio returns stdio MCP server
func (s *Server) MCPStdio(ctx context.Context) *stdio.Server {
	return stdio.New(ctx, s.NewMCPHandler, s.stdioServerOption...)
}

// New creates a server
func New(client client.Interface, options ...Option) *Server {
	ret := &Server{client: client, logger: zap.NewNop(), info: *mcpschema.NewImplementation(Name, Version)}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
