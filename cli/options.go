package cli

import "github.com/viant/tonclient"

// Options defines the command line
type Options struct {
	tonclient.ClientOptions `group:"client options"`

	Verbose bool `short:"v" long:"verbose" description:"verbose logging to stderr"`

	AccountState      AccountStateCommand      `command:"account-state" description:"print raw account state"`
	Transactions      TransactionsCommand      `command:"transactions" description:"print account transactions, newest first"`
	MasterchainInfo   struct{}                 `command:"masterchain-info" description:"print the last masterchain block"`
	LookupBlock       LookupBlockCommand       `command:"lookup-block" description:"resolve a block id by seqno, lt or utime"`
	BlockTransactions BlockTransactionsCommand `command:"block-transactions" description:"print one page of block transactions"`
	Serve             ServeCommand             `command:"serve" description:"serve JSON-RPC, or MCP tools with --mcp, over stdio"`
}

// AddressArgs holds the account address argument
type AddressArgs struct {
	Address string `positional-arg-name:"ADDRESS" required:"yes"`
}

type AccountStateCommand struct {
	Args AddressArgs `positional-args:"yes" required:"yes"`
}

type TransactionsCommand struct {
	Args     AddressArgs `positional-args:"yes" required:"yes"`
	FromLt   string      `long:"from-lt" description:"start transaction logical time"`
	FromHash string      `long:"from-hash" description:"start transaction hash"`
	ToLt     string      `long:"to-lt" description:"stop before this logical time"`
	Limit    int         `long:"limit" description:"maximum number of transactions" default:"10"`
}

type BlockSelector struct {
	Workchain int32  `long:"workchain" description:"workchain id" default:"-1"`
	Shard     string `long:"shard" description:"shard id" default:"-9223372036854775808"`
}

type LookupBlockCommand struct {
	BlockSelector
	Seqno *int64  `long:"seqno" description:"block sequence number"`
	Lt    *string `long:"lt" description:"logical time inside the block"`
	Utime *int64  `long:"utime" description:"unix time inside the block"`
}

type ServeCommand struct {
	MCP bool `long:"mcp" description:"serve operations as Model Context Protocol tools"`
}

type BlockTransactionsCommand struct {
	BlockSelector
	Seqno int64 `long:"seqno" description:"block sequence number" required:"yes"`
	Count int   `long:"count" description:"page size" default:"40"`
}
