// Package client implements a high-level TON client on top of the correlation bridge.
//
// Every operation builds a typed request from the schema package, sends it through
// the bridge and decodes the correlated response. Account history is walked page by
// page using the previous transaction id the engine returns with each page.
//
// Example:
//
//	handle := native.New(lib, 1, time.Second)
//	cli := client.New(bridge.New(handle), client.WithLiteServerConfig(config))
//	defer cli.Close()
//	if err := cli.Init(ctx); err != nil {
//		return err
//	}
//	txs := cli.GetTransactions(ctx, address, &client.TransactionQuery{Limit: 20})
package client
