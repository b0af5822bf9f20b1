package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/schema"
)

type (
	// NoParams is the input of parameterless tools
	NoParams struct{}

	// TransactionsOutput wraps account history for tool results
	TransactionsOutput struct {
		Transactions []*schema.Transaction `json:"transactions"`
	}
)

// RegisterTools registers TON operations as MCP tools
func RegisterTools(registry *protoserver.Registry, cli client.Interface) error {
	if err := protoserver.RegisterTool[*AccountParams, *schema.AccountState](registry, MethodGetAccountState,
		"Returns the raw state of a TON account.",
		func(ctx context.Context, input *AccountParams) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			if input == nil || input.Address == "" {
				return nil, jsonrpc.NewInvalidParamsError("address was empty", nil)
			}
			state, ok := cli.GetAccountState(ctx, input.Address)
			if !ok {
				return toolError(fmt.Sprintf("account state not found: %v", input.Address)), nil
			}
			return toolResult(state)
		}); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*TransactionsParams, *TransactionsOutput](registry, MethodGetTransactions,
		"Returns account transactions, newest first.",
		func(ctx context.Context, input *TransactionsParams) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			if input == nil || input.Address == "" {
				return nil, jsonrpc.NewInvalidParamsError("address was empty", nil)
			}
			transactions := cli.GetTransactions(ctx, input.Address, &input.TransactionQuery)
			if transactions == nil {
				transactions = []*schema.Transaction{}
			}
			return toolResult(&TransactionsOutput{Transactions: transactions})
		}); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*NoParams, *schema.MasterchainInfo](registry, MethodGetMasterchainInfo,
		"Returns the last known masterchain block.",
		func(ctx context.Context, _ *NoParams) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			info, err := cli.GetMasterchainInfo(ctx)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(info)
		}); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*NoParams, *schema.BlockID](registry, MethodSync,
		"Waits for the engine to synchronize and returns the last block.",
		func(ctx context.Context, _ *NoParams) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			block, err := cli.Sync(ctx)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(block)
		}); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*client.BlockLookup, *schema.BlockID](registry, MethodLookupBlock,
		"Resolves a block by workchain and shard plus seqno, lt or utime.",
		func(ctx context.Context, input *client.BlockLookup) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			if input == nil {
				input = &client.BlockLookup{}
			}
			block, err := cli.LookupBlock(ctx, input)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(block)
		}); err != nil {
		return err
	}
	return protoserver.RegisterTool[*client.BlockTransactionsQuery, *schema.BlockTransactions](registry, MethodGetBlockTransactions,
		"Returns a page of transactions of a block.",
		func(ctx context.Context, input *client.BlockTransactionsQuery) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			if input == nil || input.Block == nil {
				return nil, jsonrpc.NewInvalidParamsError("block was empty", nil)
			}
			transactions, err := cli.GetBlockTransactions(ctx, input)
			if err != nil {
				return toolError(err.Error()), nil
			}
			return toolResult(transactions)
		})
}

func toolResult(output interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	data, err := json.Marshal(output)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	var structured map[string]interface{}
	if err = json.Unmarshal(data, &structured); err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return &mcpschema.CallToolResult{
		StructuredContent: structured,
		Content:           []mcpschema.CallToolResultContentElem{mcpschema.TextContent{Text: string(data), Type: "text"}},
	}, nil
}

func toolError(text string) *mcpschema.CallToolResult {
	isError := true
	return &mcpschema.CallToolResult{
		IsError: &isError,
		Content: []mcpschema.CallToolResultContentElem{mcpschema.TextContent{Text: text, Type: "text"}},
	}
}
