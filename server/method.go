package server

import "github.com/viant/tonclient/client"

// JSON-RPC method names
const (
	MethodGetAccountState      = "getAccountState"
	MethodGetTransactions      = "getTransactions"
	MethodGetMasterchainInfo   = "getMasterchainInfo"
	MethodSync                 = "sync"
	MethodLookupBlock          = "lookupBlock"
	MethodGetBlockTransactions = "getBlockTransactions"
)

// AccountParams addresses an account.
type AccountParams struct {
	Address string `json:"address"`
}

// TransactionsParams selects account history.
type TransactionsParams struct {
	Address string `json:"address"`
	client.TransactionQuery
}
