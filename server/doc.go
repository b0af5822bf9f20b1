// Package server exposes the TON client as a JSON-RPC 2.0 service.
//
// Methods: getAccountState, getTransactions, getMasterchainInfo, sync, lookupBlock
// and getBlockTransactions. Parameters are named objects, results are the engine
// objects re-encoded as JSON.
//
// The same operations are also served as Model Context Protocol tools, see MCPStdio.
//
// Example:
//
//	srv := server.New(cli)
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
package server
