package client

import "github.com/viant/tonclient/schema"

const (
	DefaultTransactionLimit       = 10
	DefaultBlockTransactionsCount = 40
	// DefaultToLt never matches a real transaction so history is walked to the limit.
	DefaultToLt = "0"
)

// TransactionQuery selects a window of account history.
// Empty FromLt or FromHash starts from the account's last transaction.
type TransactionQuery struct {
	FromLt   string `json:"fromLt,omitempty" yaml:"fromLt,omitempty"`
	FromHash string `json:"fromHash,omitempty" yaml:"fromHash,omitempty"`
	// ToLt stops the walk, the matching transaction is excluded.
	ToLt  string `json:"toLt,omitempty" yaml:"toLt,omitempty"`
	Limit int    `json:"limit,omitempty" yaml:"limit,omitempty"`
}

func (q *TransactionQuery) normalize() TransactionQuery {
	var ret TransactionQuery
	if q != nil {
		ret = *q
	}
	if ret.ToLt == "" {
		ret.ToLt = DefaultToLt
	}
	if ret.Limit <= 0 {
		ret.Limit = DefaultTransactionLimit
	}
	return ret
}

// BlockLookup identifies a block by workchain and shard plus at least one of Seqno, Lt or Utime.
type BlockLookup struct {
	Workchain int32   `json:"workchain"`
	Shard     string  `json:"shard"`
	Seqno     *int64  `json:"seqno,omitempty"`
	Lt        *string `json:"lt,omitempty"`
	Utime     *int64  `json:"utime,omitempty"`
}

// BlockTransactionsQuery pages through a block's transactions, After is the last id of the previous page.
type BlockTransactionsQuery struct {
	Block *schema.BlockID              `json:"block"`
	Count int                          `json:"count,omitempty"`
	After *schema.AccountTransactionID `json:"after,omitempty"`
}
