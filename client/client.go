package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/viant/tonclient/bridge"
	"github.com/viant/tonclient/schema"
)

var (
	// ErrInitFailed is returned when init did not succeed within the configured attempts.
	ErrInitFailed = errors.New("init failed")
	// ErrInvalidLookup is returned when a block lookup names no seqno, lt or utime.
	ErrInvalidLookup = errors.New("lookup requires seqno, lt or utime")
)

// Client exposes TON operations over a correlation bridge.
type Client struct {
	bridge           *bridge.Bridge
	logger           *zap.Logger
	liteServerConfig string
	keystoreDir      string
	initBackoff      time.Duration
	maxInitBackoff   time.Duration
	maxInitAttempts  int
}

// Init configures the engine with the lite-server config and keystore, retrying failed attempts.
func (c *Client) Init(ctx context.Context) error {
	backoff := c.initBackoff
	for attempt := 1; ; attempt++ {
		_, err := c.bridge.Call(ctx, schema.NewInit(c.liteServerConfig, c.keystoreDir))
		if err == nil {
			c.logger.Info("engine initialized", zap.Int("attempt", attempt))
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if c.maxInitAttempts > 0 && attempt >= c.maxInitAttempts {
			return fmt.Errorf("%w after %v attempts: %v", ErrInitFailed, attempt, err)
		}
		c.logger.Warn("init failed, retrying", zap.Int("attempt", attempt), zap.Duration("backoff", backoff), zap.Error(err))
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if backoff *= 2; backoff > c.maxInitBackoff {
			backoff = c.maxInitBackoff
		}
	}
}

// GetAccountState returns the raw account state, false means the state could not be obtained.
func (c *Client) GetAccountState(ctx context.Context, address string) (*schema.AccountState, bool) {
	state, err := call[schema.AccountState](ctx, c, schema.NewGetAccountState(address))
	if err != nil {
		c.logger.Info("account state unavailable", zap.String("address", address), zap.Error(err))
		return nil, false
	}
	return state, true
}

// GetTransactions walks account history from newest to oldest. Failures truncate the result.
func (c *Client) GetTransactions(ctx context.Context, address string, query *TransactionQuery) []*schema.Transaction {
	q := query.normalize()
	fromLt, fromHash := q.FromLt, q.FromHash
	if fromLt == "" || fromHash == "" {
		state, ok := c.GetAccountState(ctx, address)
		if !ok {
			return nil
		}
		if fromLt == "" {
			fromLt = state.LastTransactionID.Lt
		}
		if fromHash == "" {
			fromHash = state.LastTransactionID.Hash
		}
	}
	var result []*schema.Transaction
	for len(result) < q.Limit {
		lt, hash := fromLt, fromHash
		page, err := call[schema.Transactions](ctx, c, schema.NewGetTransactions(address, &lt, &hash))
		if err != nil {
			c.logger.Info("transactions page unavailable", zap.String("address", address), zap.String("lt", lt), zap.Error(err))
			break
		}
		if len(page.Transactions) == 0 {
			break
		}
		for _, tx := range page.Transactions {
			if tx.TransactionID.Lt == q.ToLt {
				return result
			}
			result = append(result, tx)
			if len(result) == q.Limit {
				return result
			}
		}
		next := page.PreviousTransactionID
		if next == nil || next.Lt == "" || next.Lt == "0" {
			break
		}
		fromLt, fromHash = next.Lt, next.Hash
	}
	return result
}

// GetMasterchainInfo returns the last known masterchain block.
func (c *Client) GetMasterchainInfo(ctx context.Context) (*schema.MasterchainInfo, error) {
	return call[schema.MasterchainInfo](ctx, c, &schema.GetMasterchainInfo{})
}

// Sync waits for the engine to synchronize and returns the block it synced to.
func (c *Client) Sync(ctx context.Context) (*schema.BlockID, error) {
	return call[schema.BlockID](ctx, c, &schema.Sync{})
}

// LookupBlock resolves a full block id by seqno, logical time or unix time.
func (c *Client) LookupBlock(ctx context.Context, lookup *BlockLookup) (*schema.BlockID, error) {
	if lookup == nil || (lookup.Seqno == nil && lookup.Lt == nil && lookup.Utime == nil) {
		return nil, ErrInvalidLookup
	}
	return call[schema.BlockID](ctx, c, schema.NewLookupBlock(lookup.Workchain, lookup.Shard, lookup.Seqno, lookup.Lt, lookup.Utime))
}

// GetBlockTransactions returns one page of short transaction ids for a block.
func (c *Client) GetBlockTransactions(ctx context.Context, query *BlockTransactionsQuery) (*schema.BlockTransactions, error) {
	if query == nil || query.Block == nil {
		return nil, fmt.Errorf("block id was empty")
	}
	count := query.Count
	if count <= 0 {
		count = DefaultBlockTransactionsCount
	}
	return call[schema.BlockTransactions](ctx, c, schema.NewGetBlockTransactions(query.Block, count, query.After))
}

// Close releases the bridge and the native handle.
func (c *Client) Close() error {
	return c.bridge.Close()
}

// New creates a client over b.
func New(b *bridge.Bridge, options ...Option) *Client {
	ret := &Client{
		bridge:         b,
		logger:         zap.NewNop(),
		keystoreDir:    DefaultKeystoreDir,
		initBackoff:    DefaultInitBackoff,
		maxInitBackoff: DefaultMaxInitBackoff,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func call[R any](ctx context.Context, client *Client, request schema.Request) (*R, error) {
	payload, err := client.bridge.Call(ctx, request)
	if err != nil {
		return nil, err
	}
	var result R
	if err = json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %v response: %w", request.Type(), err)
	}
	return &result, nil
}
