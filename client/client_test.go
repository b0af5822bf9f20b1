package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tonclient/bridge"
	"github.com/viant/tonclient/native"
	"github.com/viant/tonclient/native/mock"
	"github.com/viant/tonclient/schema"
)

func newTestClient(t *testing.T, routes map[string]mock.Responder, options ...Option) (*Client, *mock.Engine) {
	engine := mock.New(mock.WithResponder(mock.Route(routes)))
	b := bridge.New(native.New(engine, 0, time.Millisecond), bridge.WithRequestTimeout(time.Second))
	ret := New(b, options...)
	t.Cleanup(func() { _ = ret.Close() })
	return ret, engine
}

func accountState(lastLt int) mock.Responder {
	return func(request map[string]any) []string {
		return []string{mock.Reply(request, "raw.fullAccountState", map[string]any{
			"balance":             "1000",
			"last_transaction_id": map[string]any{"lt": strconv.Itoa(lastLt), "hash": fmt.Sprintf("h%v", lastLt)},
			"sync_utime":          1700000000,
		})}
	}
}

func requestedLt(request map[string]any) string {
	from, _ := request["from_transaction_id"].(map[string]any)
	lt, _ := from["lt"].(string)
	return lt
}

// history serves transactions lt..1 newest first in pages of pageSize.
func history(pageSize int) mock.Responder {
	return func(request map[string]any) []string {
		lt, _ := strconv.Atoi(requestedLt(request))
		var transactions []map[string]any
		for i := lt; i > 0 && len(transactions) < pageSize; i-- {
			transactions = append(transactions, map[string]any{
				"transaction_id": map[string]any{"lt": strconv.Itoa(i), "hash": fmt.Sprintf("h%v", i)},
				"utime":          i,
			})
		}
		next := lt - len(transactions)
		previous := map[string]any{"lt": strconv.Itoa(next), "hash": ""}
		if next > 0 {
			previous["hash"] = fmt.Sprintf("h%v", next)
		}
		return []string{mock.Reply(request, "raw.transactions", map[string]any{
			"transactions":            transactions,
			"previous_transaction_id": previous,
		})}
	}
}

func lts(transactions []*schema.Transaction) []string {
	var ret []string
	for _, tx := range transactions {
		ret = append(ret, tx.TransactionID.Lt)
	}
	return ret
}

func TestClient_GetAccountState(t *testing.T) {
	c, engine := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetAccountState: func(request map[string]any) []string {
			address := request["account_address"].(map[string]any)["account_address"]
			if address == "missing" {
				return []string{mock.Fail(request, "account not found")}
			}
			return accountState(9)(request)
		},
	})

	state, ok := c.GetAccountState(context.Background(), "EQaddr")
	require.True(t, ok)
	assert.Equal(t, "1000", state.Balance)
	assert.Equal(t, "9", state.LastTransactionID.Lt)
	assert.Equal(t, int64(1700000000), state.SyncUtime)

	state, ok = c.GetAccountState(context.Background(), "missing")
	assert.False(t, ok)
	assert.Nil(t, state)
	assert.Len(t, engine.SentOfType(schema.TypeGetAccountState), 2)
}

func TestClient_GetTransactions(t *testing.T) {
	var testCases = []struct {
		description string
		query       *TransactionQuery
		failLt      string
		expect      []string
		expectState int
		expectPages int
	}{
		{
			description: "default query walks history to the end",
			expect:      []string{"9", "8", "7", "6", "5", "4", "3", "2", "1"},
			expectState: 1,
			expectPages: 3,
		},
		{
			description: "limit caps the result mid page",
			query:       &TransactionQuery{Limit: 4},
			expect:      []string{"9", "8", "7", "6"},
			expectState: 1,
			expectPages: 2,
		},
		{
			description: "stop position is excluded",
			query:       &TransactionQuery{ToLt: "5"},
			expect:      []string{"9", "8", "7", "6"},
			expectState: 1,
			expectPages: 2,
		},
		{
			description: "explicit start skips the state lookup",
			query:       &TransactionQuery{FromLt: "6", FromHash: "h6", Limit: 3},
			expect:      []string{"6", "5", "4"},
			expectPages: 1,
		},
		{
			description: "partial start fills the missing part from state",
			query:       &TransactionQuery{FromLt: "4"},
			expect:      []string{"4", "3", "2", "1"},
			expectState: 1,
			expectPages: 2,
		},
		{
			description: "page failure truncates the result",
			failLt:      "6",
			expect:      []string{"9", "8", "7"},
			expectState: 1,
			expectPages: 2,
		},
	}

	for _, testCase := range testCases {
		failLt := testCase.failLt
		pages := history(3)
		c, engine := newTestClient(t, map[string]mock.Responder{
			schema.TypeGetAccountState: accountState(9),
			schema.TypeGetTransactions: func(request map[string]any) []string {
				if failLt != "" && requestedLt(request) == failLt {
					return []string{mock.Fail(request, "lite server error")}
				}
				return pages(request)
			},
		})
		actual := c.GetTransactions(context.Background(), "EQaddr", testCase.query)
		assert.Equal(t, testCase.expect, lts(actual), testCase.description)
		assert.Len(t, engine.SentOfType(schema.TypeGetAccountState), testCase.expectState, testCase.description)
		assert.Len(t, engine.SentOfType(schema.TypeGetTransactions), testCase.expectPages, testCase.description)
	}
}

func TestClient_GetTransactions_NoState(t *testing.T) {
	c, engine := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetAccountState: func(request map[string]any) []string {
			return []string{mock.Fail(request, "account not found")}
		},
		schema.TypeGetTransactions: history(3),
	})
	assert.Empty(t, c.GetTransactions(context.Background(), "EQaddr", nil))
	assert.Empty(t, engine.SentOfType(schema.TypeGetTransactions))
}

func TestClient_GetTransactions_EmptyPage(t *testing.T) {
	c, _ := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetAccountState: accountState(0),
		schema.TypeGetTransactions: history(3),
	})
	assert.Empty(t, c.GetTransactions(context.Background(), "EQaddr", &TransactionQuery{}))
}

func TestClient_GetTransactions_PageCursor(t *testing.T) {
	c, engine := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetAccountState: accountState(5),
		schema.TypeGetTransactions: history(2),
	})
	assert.Len(t, c.GetTransactions(context.Background(), "EQaddr", nil), 5)
	sent := engine.SentOfType(schema.TypeGetTransactions)
	require.Len(t, sent, 3)
	var cursors []string
	for _, request := range sent {
		from := request["from_transaction_id"].(map[string]any)
		cursors = append(cursors, fmt.Sprintf("%v/%v", from["lt"], from["hash"]))
	}
	assert.Equal(t, []string{"5/h5", "3/h3", "1/h1"}, cursors)
}

func TestClient_Init(t *testing.T) {
	var testCases = []struct {
		description string
		failures    int
		maxAttempts int
		expectErr   error
		expectSent  int
	}{
		{description: "first attempt", expectSent: 1},
		{description: "retries until success", failures: 3, expectSent: 4},
		{description: "bounded attempts", failures: 5, maxAttempts: 2, expectErr: ErrInitFailed, expectSent: 2},
	}

	for _, testCase := range testCases {
		failures := testCase.failures
		c, engine := newTestClient(t, map[string]mock.Responder{
			schema.TypeInit: func(request map[string]any) []string {
				if failures > 0 {
					failures--
					return []string{mock.Fail(request, "invalid config")}
				}
				return []string{mock.Reply(request, "options.info", nil)}
			},
		},
			WithLiteServerConfig(`{"liteservers":[]}`),
			WithKeystoreDir("/tmp/keys-test"),
			WithInitBackoff(time.Millisecond, 2*time.Millisecond),
			WithMaxInitAttempts(testCase.maxAttempts),
		)
		err := c.Init(context.Background())
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
		} else {
			assert.NoError(t, err, testCase.description)
		}
		sent := engine.SentOfType(schema.TypeInit)
		require.Len(t, sent, testCase.expectSent, testCase.description)
		options := sent[0]["options"].(map[string]any)
		assert.Equal(t, `{"liteservers":[]}`, options["config"].(map[string]any)["config"], testCase.description)
		assert.Equal(t, "/tmp/keys-test", options["keystore_type"].(map[string]any)["directory"], testCase.description)
	}
}

func TestClient_Init_ContextCancel(t *testing.T) {
	c, _ := newTestClient(t, map[string]mock.Responder{
		schema.TypeInit: func(request map[string]any) []string {
			return []string{mock.Fail(request, "invalid config")}
		},
	}, WithInitBackoff(time.Hour, time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := c.Init(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_GetMasterchainInfo(t *testing.T) {
	c, _ := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetMasterchainInfo: func(request map[string]any) []string {
			return []string{mock.Reply(request, "blocks.masterchainInfo", map[string]any{
				"last":            map[string]any{"workchain": -1, "shard": "-9223372036854775808", "seqno": 42, "root_hash": "r", "file_hash": "f"},
				"state_root_hash": "s",
			})}
		},
	})
	info, err := c.GetMasterchainInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), info.Last.Seqno)
	assert.Equal(t, int32(-1), info.Last.Workchain)
	assert.Equal(t, "s", info.StateRootHash)
}

func TestClient_Sync(t *testing.T) {
	c, _ := newTestClient(t, map[string]mock.Responder{
		schema.TypeSync: func(request map[string]any) []string {
			return []string{mock.Reply(request, "ton.blockIdExt", map[string]any{"workchain": -1, "seqno": 7})}
		},
	})
	block, err := c.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), block.Seqno)
}

func TestClient_LookupBlock(t *testing.T) {
	c, engine := newTestClient(t, map[string]mock.Responder{
		schema.TypeLookupBlock: func(request map[string]any) []string {
			id := request["id"].(map[string]any)
			return []string{mock.Reply(request, "ton.blockIdExt", map[string]any{
				"workchain": id["workchain"], "shard": id["shard"], "seqno": 100, "root_hash": "r",
			})}
		},
	})

	_, err := c.LookupBlock(context.Background(), &BlockLookup{Workchain: -1, Shard: "8000000000000000"})
	assert.True(t, errors.Is(err, ErrInvalidLookup))
	_, err = c.LookupBlock(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidLookup))
	assert.Empty(t, engine.SentOfType(schema.TypeLookupBlock))

	utime := int64(1700000000)
	block, err := c.LookupBlock(context.Background(), &BlockLookup{Workchain: -1, Shard: "8000000000000000", Utime: &utime})
	require.NoError(t, err)
	assert.Equal(t, int64(100), block.Seqno)
	assert.Equal(t, "8000000000000000", block.Shard)
	sent := engine.SentOfType(schema.TypeLookupBlock)
	require.Len(t, sent, 1)
	assert.EqualValues(t, 4, sent[0]["mode"])
}

func TestClient_GetBlockTransactions(t *testing.T) {
	c, engine := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetBlockTransactions: func(request map[string]any) []string {
			return []string{mock.Reply(request, "blocks.transactions", map[string]any{
				"req_count":  request["count"],
				"incomplete": true,
				"transactions": []map[string]any{
					{"mode": 135, "account": "acc=", "lt": "11", "hash": "tx="},
				},
			})}
		},
	})

	_, err := c.GetBlockTransactions(context.Background(), &BlockTransactionsQuery{})
	assert.Error(t, err)

	page, err := c.GetBlockTransactions(context.Background(), &BlockTransactionsQuery{Block: &schema.BlockID{Workchain: -1, Seqno: 7}})
	require.NoError(t, err)
	assert.True(t, page.Incomplete)
	assert.Equal(t, DefaultBlockTransactionsCount, page.ReqCount)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "acc=", page.Transactions[0].Account)

	_, err = c.GetBlockTransactions(context.Background(), &BlockTransactionsQuery{
		Block: &schema.BlockID{Seqno: 7},
		Count: 5,
		After: &schema.AccountTransactionID{Account: "acc=", Lt: 11},
	})
	require.NoError(t, err)
	sent := engine.SentOfType(schema.TypeGetBlockTransactions)
	require.Len(t, sent, 2)
	assert.EqualValues(t, 7, sent[0]["mode"])
	assert.EqualValues(t, 135, sent[1]["mode"])
	assert.EqualValues(t, 5, sent[1]["count"])
}

func TestClient_NativeErrorSurfaces(t *testing.T) {
	c, _ := newTestClient(t, map[string]mock.Responder{
		schema.TypeGetMasterchainInfo: func(request map[string]any) []string {
			return []string{mock.Fail(request, "not ready")}
		},
	})
	_, err := c.GetMasterchainInfo(context.Background())
	var nativeErr *bridge.NativeError
	require.True(t, errors.As(err, &nativeErr))
	assert.Equal(t, "not ready", nativeErr.Message)
}
