package client

import (
	"context"

	"github.com/viant/tonclient/schema"
)

// Interface defines the client operations
type Interface interface {
	// GetAccountState returns the raw account state
	GetAccountState(ctx context.Context, address string) (*schema.AccountState, bool)

	// GetTransactions returns account history, newest first
	GetTransactions(ctx context.Context, address string, query *TransactionQuery) []*schema.Transaction

	// GetMasterchainInfo returns the last masterchain block
	GetMasterchainInfo(ctx context.Context) (*schema.MasterchainInfo, error)

	// Sync waits for the engine to synchronize
	Sync(ctx context.Context) (*schema.BlockID, error)

	// LookupBlock resolves a block id
	LookupBlock(ctx context.Context, lookup *BlockLookup) (*schema.BlockID, error)

	// GetBlockTransactions returns a page of block transactions
	GetBlockTransactions(ctx context.Context, query *BlockTransactionsQuery) (*schema.BlockTransactions, error)
}

var _ Interface = (*Client)(nil)
