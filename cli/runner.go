package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/viant/tonclient"
	"github.com/viant/tonclient/client"
	"github.com/viant/tonclient/server"
)

// Opener returns an initialized client for options
type Opener func(ctx context.Context, options *tonclient.ClientOptions, clientOptions ...client.Option) (*client.Client, error)

// Run parses args and executes the selected command against the native library
func Run(args []string) error {
	return RunWith(context.Background(), args, os.Stdout, tonclient.NewClient)
}

// RunWith is Run with explicit output and client construction
func RunWith(ctx context.Context, args []string, stdout io.Writer, open Opener) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	logger, err := newLogger(options.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	options.Logger = logger
	if parser.Active == nil {
		return fmt.Errorf("command was empty")
	}
	command := parser.Active.Name
	logger.Info("cli settings", zap.String("command", command), zap.Any("options", &options.ClientOptions))

	cli, err := open(ctx, &options.ClientOptions)
	if err != nil {
		return err
	}
	defer cli.Close()

	var result interface{}
	switch command {
	case "account-state":
		state, ok := cli.GetAccountState(ctx, options.AccountState.Args.Address)
		if !ok {
			return fmt.Errorf("account state %v not found", options.AccountState.Args.Address)
		}
		result = state
	case "transactions":
		cmd := options.Transactions
		result = cli.GetTransactions(ctx, cmd.Args.Address, &client.TransactionQuery{
			FromLt:   cmd.FromLt,
			FromHash: cmd.FromHash,
			ToLt:     cmd.ToLt,
			Limit:    cmd.Limit,
		})
	case "masterchain-info":
		result, err = cli.GetMasterchainInfo(ctx)
	case "lookup-block":
		cmd := options.LookupBlock
		result, err = cli.LookupBlock(ctx, &client.BlockLookup{
			Workchain: cmd.Workchain,
			Shard:     cmd.Shard,
			Seqno:     cmd.Seqno,
			Lt:        cmd.Lt,
			Utime:     cmd.Utime,
		})
	case "block-transactions":
		cmd := options.BlockTransactions
		block, lookupErr := cli.LookupBlock(ctx, &client.BlockLookup{Workchain: cmd.Workchain, Shard: cmd.Shard, Seqno: &cmd.Seqno})
		if lookupErr != nil {
			return lookupErr
		}
		result, err = cli.GetBlockTransactions(ctx, &client.BlockTransactionsQuery{Block: block, Count: cmd.Count})
	case "serve":
		srv := server.New(cli, server.WithLogger(logger.Named("server")))
		if options.Serve.MCP {
			return srv.MCPStdio(ctx).ListenAndServe()
		}
		return srv.Stdio(ctx).ListenAndServe()
	default:
		return fmt.Errorf("unsupported command: %v", command)
	}
	if err != nil {
		return err
	}
	return writeJSON(stdout, result)
}

func writeJSON(w io.Writer, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}
