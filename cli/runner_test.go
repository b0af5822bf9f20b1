package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tonclient"
	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/native/mock"
	"github.com/viant/tonclient/schema"
)

func newEngine() *mock.Engine {
	return mock.New(mock.WithResponder(mock.Route(map[string]mock.Responder{
		schema.TypeInit: func(request map[string]any) []string {
			return []string{mock.Reply(request, "options.info", nil)}
		},
		schema.TypeGetAccountState: func(request map[string]any) []string {
			address := request["account_address"].(map[string]any)["account_address"]
			if address != "EQaddr" {
				return []string{mock.Fail(request, "account not found")}
			}
			return []string{mock.Reply(request, "raw.fullAccountState", map[string]any{
				"balance":             "1000",
				"last_transaction_id": map[string]any{"lt": "3", "hash": "h3"},
			})}
		},
		schema.TypeGetTransactions: func(request map[string]any) []string {
			from := request["from_transaction_id"].(map[string]any)
			lt, _ := strconv.Atoi(from["lt"].(string))
			return []string{mock.Reply(request, "raw.transactions", map[string]any{
				"transactions":            []map[string]any{{"transaction_id": map[string]any{"lt": strconv.Itoa(lt), "hash": "h"}}},
				"previous_transaction_id": map[string]any{"lt": strconv.Itoa(lt - 1), "hash": "h"},
			})}
		},
		schema.TypeLookupBlock: func(request map[string]any) []string {
			id := request["id"].(map[string]any)
			return []string{mock.Reply(request, "ton.blockIdExt", map[string]any{
				"workchain": id["workchain"], "shard": id["shard"], "seqno": id["seqno"], "root_hash": "r", "file_hash": "f",
			})}
		},
		schema.TypeGetBlockTransactions: func(request map[string]any) []string {
			return []string{mock.Reply(request, "blocks.transactions", map[string]any{
				"id": request["id"], "req_count": request["count"], "incomplete": false,
			})}
		},
	})))
}

func run(t *testing.T, engine *mock.Engine, args ...string) (string, error) {
	dir := t.TempDir()
	location := filepath.Join(dir, "global.config.json")
	require.NoError(t, os.WriteFile(location, []byte(`{"liteservers":[]}`), 0644))
	open := func(ctx context.Context, options *tonclient.ClientOptions, clientOptions ...client.Option) (*client.Client, error) {
		return tonclient.NewClientWithLibrary(ctx, engine, options, clientOptions...)
	}
	stdout := &bytes.Buffer{}
	args = append([]string{"-c", location, "-k", filepath.Join(dir, "keys"), "--init-attempts", "1"}, args...)
	err := RunWith(context.Background(), args, stdout, open)
	return stdout.String(), err
}

func TestRunWith_AccountState(t *testing.T) {
	output, err := run(t, newEngine(), "account-state", "EQaddr")
	require.NoError(t, err)
	state := &schema.AccountState{}
	require.NoError(t, json.Unmarshal([]byte(output), state))
	assert.Equal(t, "1000", state.Balance)

	_, err = run(t, newEngine(), "account-state", "EQother")
	assert.Error(t, err)
}

func TestRunWith_Transactions(t *testing.T) {
	output, err := run(t, newEngine(), "transactions", "EQaddr", "--limit", "2")
	require.NoError(t, err)
	var transactions []*schema.Transaction
	require.NoError(t, json.Unmarshal([]byte(output), &transactions))
	require.Len(t, transactions, 2)
	assert.Equal(t, "3", transactions[0].TransactionID.Lt)
	assert.Equal(t, "2", transactions[1].TransactionID.Lt)
}

func TestRunWith_LookupBlock(t *testing.T) {
	engine := newEngine()
	output, err := run(t, engine, "lookup-block", "--workchain", "0", "--shard", "8000000000000000", "--seqno", "55")
	require.NoError(t, err)
	block := &schema.BlockID{}
	require.NoError(t, json.Unmarshal([]byte(output), block))
	assert.Equal(t, int64(55), block.Seqno)
	assert.Equal(t, int32(0), block.Workchain)
	sent := engine.SentOfType(schema.TypeLookupBlock)
	require.Len(t, sent, 1)
	assert.EqualValues(t, 1, sent[0]["mode"])

	_, err = run(t, newEngine(), "lookup-block", "--workchain", "0")
	assert.ErrorIs(t, err, client.ErrInvalidLookup)
}

func TestRunWith_BlockTransactions(t *testing.T) {
	engine := newEngine()
	output, err := run(t, engine, "block-transactions", "--seqno", "9", "--count", "3")
	require.NoError(t, err)
	page := &schema.BlockTransactions{}
	require.NoError(t, json.Unmarshal([]byte(output), page))
	assert.Equal(t, 3, page.ReqCount)
	assert.Equal(t, "r", page.ID.RootHash)
	assert.Equal(t, int32(-1), page.ID.Workchain)
}

func TestRunWith_InvalidArgs(t *testing.T) {
	_, err := run(t, newEngine(), "account-state")
	assert.Error(t, err)
	_, err = run(t, newEngine(), "unknown")
	assert.Error(t, err)
}

func TestRunWith_LogLevel(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      int32
	}{
		{description: "default", args: []string{"account-state", "EQaddr"}, expect: 1},
		{description: "silent", args: []string{"-l", "0", "account-state", "EQaddr"}, expect: 0},
		{description: "debug", args: []string{"--log-level", "4", "account-state", "EQaddr"}, expect: 4},
	}
	for _, testCase := range testCases {
		engine := newEngine()
		_, err := run(t, engine, testCase.args...)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, engine.Verbosity(), testCase.description)
	}
}
