package server

import (
	"github.com/viant/jsonrpc/transport/server/stdio"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// Option represents server option
type Option func(s *Server)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStdioOptions passes options to the stdio transport
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) {
		s.stdioServerOption = append(s.stdioServerOption, options...)
	}
}

// WithImplementation sets the name and version reported to MCP clients
func WithImplementation(name, version string) Option {
	return func(s *Server) {
		s.info = *mcpschema.NewImplementation(name, version)
	}
}
