package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	mcpclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MCPHandler serves TON operations as Model Context Protocol tools
type MCPHandler struct {
	handler protoserver.Handler
	info    mcpschema.Implementation
	logger  *zap.Logger
	err     error
}

// Serve handles incoming MCP requests
func (h *MCPHandler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	if h.err != nil {
		response.Error = jsonrpc.NewInternalError(h.err.Error(), nil)
		return
	}
	switch request.Method {
	case mcpschema.MethodInitialize, mcpschema.MethodPing:
	default:
		if !h.handler.Implements(request.Method) {
			response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
			return
		}
	}
	h.logger.Debug("serving", zap.Any("id", request.Id), zap.String("method", request.Method))
	switch request.Method {
	case mcpschema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		setResponse(response, result, err)
	case mcpschema.MethodPing:
		setResponse(response, &mcpschema.PingResult{}, nil)
	case mcpschema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		setResponse(response, result, err)
	case mcpschema.MethodToolsCall:
		result, err := h.CallTool(ctx, request)
		setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

// Initialize handles the initialize method
func (h *MCPHandler) Initialize(ctx context.Context, request *jsonrpc.Request) (*mcpschema.InitializeResult, *jsonrpc.Error) {
	params := &mcpschema.InitializeRequestParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	version := params.ProtocolVersion
	if version == "" {
		version = mcpschema.LatestProtocolVersion
	}
	result := &mcpschema.InitializeResult{ProtocolVersion: version, ServerInfo: h.info}
	h.handler.Initialize(ctx, params, result)
	return result, nil
}

// ListTools handles the tools/list method
func (h *MCPHandler) ListTools(ctx context.Context, request *jsonrpc.Request) (*mcpschema.ListToolsResult, *jsonrpc.Error) {
	listRequest := &mcpschema.ListToolsRequest{Method: request.Method}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &listRequest.Params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
		}
	}
	id, _ := jsonrpc.AsRequestIntId(request.Id)
	return h.handler.ListTools(ctx, &jsonrpc.TypedRequest[*mcpschema.ListToolsRequest]{Id: uint64(id), Method: request.Method, Request: listRequest})
}

// CallTool handles the tools/call method
func (h *MCPHandler) CallTool(ctx context.Context, request *jsonrpc.Request) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	callRequest := &mcpschema.CallToolRequest{Method: request.Method}
	if err := json.Unmarshal(request.Params, &callRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	id, _ := jsonrpc.AsRequestIntId(request.Id)
	return h.handler.CallTool(ctx, &jsonrpc.TypedRequest[*mcpschema.CallToolRequest]{Id: uint64(id), Method: request.Method, Request: callRequest})
}

// OnNotification handles incoming MCP notifications
func (h *MCPHandler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	if h.handler == nil {
		return
	}
	h.handler.OnNotification(ctx, notification)
}

// mcpClient is the peer side seen by the tool handler, server initiated requests are not supported.
type mcpClient struct {
	notifier transport.Notifier
	sequence atomic.Uint64
}

func (c *mcpClient) Notify(ctx context.Context, notification *jsonrpc.Notification) error {
	if c.notifier == nil {
		return nil
	}
	return c.notifier.Notify(ctx, notification)
}

func (c *mcpClient) NextRequestID() jsonrpc.RequestId {
	return int(c.sequence.Add(1))
}

func (c *mcpClient) LastRequestID() jsonrpc.RequestId {
	return int(c.sequence.Load())
}

func (c *mcpClient) ListRoots(ctx context.Context, request *jsonrpc.TypedRequest[*mcpschema.ListRootsRequest]) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(mcpschema.MethodRootsList, nil)
}

func (c *mcpClient) CreateMessage(ctx context.Context, request *jsonrpc.TypedRequest[*mcpschema.CreateMessageRequest]) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(mcpschema.MethodSamplingCreateMessage, nil)
}

func (c *mcpClient) Elicit(ctx context.Context, request *jsonrpc.TypedRequest[*mcpschema.ElicitRequest]) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(mcpschema.MethodElicitationCreate, nil)
}

func (c *mcpClient) Implements(method string) bool {
	return false
}

func (c *mcpClient) Init(ctx context.Context, capabilities *mcpschema.ClientCapabilities) {}

var _ mcpclient.Operations = (*mcpClient)(nil)

// mcpLogger routes protocol log records to zap
type mcpLogger struct {
	logger *zap.Logger
}

func (l *mcpLogger) log(level zapcore.Level, data interface{}) error {
	l.logger.Log(level, "mcp", zap.Any("data", data))
	return nil
}

func (l *mcpLogger) Debug(ctx context.Context, data interface{}) error {
	return l.log(zapcore.DebugLevel, data)
}

func (l *mcpLogger) Info(ctx context.Context, data interface{}) error {
	return l.log(zapcore.InfoLevel, data)
}

func (l *mcpLogger) Notice(ctx context.Context, data interface{}) error {
	return l.log(zapcore.InfoLevel, data)
}

func (l *mcpLogger) Warning(ctx context.Context, data interface{}) error {
	return l.log(zapcore.WarnLevel, data)
}

func (l *mcpLogger) Error(ctx context.Context, data interface{}) error {
	return l.log(zapcore.ErrorLevel, data)
}

func (l *mcpLogger) Critical(ctx context.Context, data interface{}) error {
	return l.log(zapcore.ErrorLevel, data)
}

func (l *mcpLogger) Alert(ctx context.Context, data interface{}) error {
	return l.log(zapcore.ErrorLevel, data)
}

func (l *mcpLogger) Emergency(ctx context.Context, data interface{}) error {
	return l.log(zapcore.ErrorLevel, data)
}

func (l *mcpLogger) Logger(name string) logger.Logger {
	return &mcpLogger{logger: l.logger.Named(name)}
}
