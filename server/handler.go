package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
	"go.uber.org/zap"

	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/internal/conv"
	"github.com/viant/tonclient/schema"
)

// Handler serves TON operations over JSON-RPC
type Handler struct {
	client client.Interface
	logger *zap.Logger
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	h.logger.Debug("serving", zap.Int("id", conv.AsInt(request.Id)), zap.String("method", request.Method))
	switch request.Method {
	case MethodGetAccountState:
		result, err := h.GetAccountState(ctx, request)
		setResponse(response, result, err)
	case MethodGetTransactions:
		result, err := h.GetTransactions(ctx, request)
		setResponse(response, result, err)
	case MethodGetMasterchainInfo:
		result, err := h.client.GetMasterchainInfo(ctx)
		setResponse(response, result, asError(err))
	case MethodSync:
		result, err := h.client.Sync(ctx)
		setResponse(response, result, asError(err))
	case MethodLookupBlock:
		result, err := h.LookupBlock(ctx, request)
		setResponse(response, result, err)
	case MethodGetBlockTransactions:
		result, err := h.GetBlockTransactions(ctx, request)
		setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

// GetAccountState handles getAccountState
func (h *Handler) GetAccountState(ctx context.Context, request *jsonrpc.Request) (*schema.AccountState, *jsonrpc.Error) {
	params := &AccountParams{}
	if rpcErr := parseParams(request, params); rpcErr != nil {
		return nil, rpcErr
	}
	if params.Address == "" {
		return nil, jsonrpc.NewInvalidParamsError("address was empty", request.Params)
	}
	state, ok := h.client.GetAccountState(ctx, params.Address)
	if !ok {
		return nil, schema.NewNotFound("account state", map[string]interface{}{"address": params.Address})
	}
	return state, nil
}

// GetTransactions handles getTransactions
func (h *Handler) GetTransactions(ctx context.Context, request *jsonrpc.Request) ([]*schema.Transaction, *jsonrpc.Error) {
	params := &TransactionsParams{}
	if rpcErr := parseParams(request, params); rpcErr != nil {
		return nil, rpcErr
	}
	if params.Address == "" {
		return nil, jsonrpc.NewInvalidParamsError("address was empty", request.Params)
	}
	result := h.client.GetTransactions(ctx, params.Address, &params.TransactionQuery)
	if result == nil {
		result = []*schema.Transaction{}
	}
	return result, nil
}

// LookupBlock handles lookupBlock
func (h *Handler) LookupBlock(ctx context.Context, request *jsonrpc.Request) (*schema.BlockID, *jsonrpc.Error) {
	params := &client.BlockLookup{}
	if rpcErr := parseParams(request, params); rpcErr != nil {
		return nil, rpcErr
	}
	result, err := h.client.LookupBlock(ctx, params)
	return result, asError(err)
}

// GetBlockTransactions handles getBlockTransactions
func (h *Handler) GetBlockTransactions(ctx context.Context, request *jsonrpc.Request) (*schema.BlockTransactions, *jsonrpc.Error) {
	params := &client.BlockTransactionsQuery{}
	if rpcErr := parseParams(request, params); rpcErr != nil {
		return nil, rpcErr
	}
	if params.Block == nil {
		return nil, jsonrpc.NewInvalidParamsError("block was empty", request.Params)
	}
	result, err := h.client.GetBlockTransactions(ctx, params)
	return result, asError(err)
}

func setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	h.logger.Debug("notification ignored", zap.String("method", notification.Method))
}

func parseParams(request *jsonrpc.Request, params interface{}) *jsonrpc.Error {
	if err := json.Unmarshal(request.Params, params); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	return nil
}

func asError(err error) *jsonrpc.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, client.ErrInvalidLookup) {
		return schema.NewInvalidLookup(err.Error())
	}
	return jsonrpc.NewInternalError(err.Error(), nil)
}
