package schema

type (
	BlockID struct {
		Type      string `json:"@type,omitempty"`
		FileHash  string `json:"file_hash"`
		RootHash  string `json:"root_hash"`
		Seqno     int64  `json:"seqno"`
		Shard     string `json:"shard"`
		Workchain int32  `json:"workchain"`
	}

	TransactionID struct {
		Hash string `json:"hash"`
		Lt   string `json:"lt"`
	}

	AccountState struct {
		Balance           string        `json:"balance"`
		BlockID           BlockID       `json:"block_id"`
		Code              string        `json:"code"`
		Data              string        `json:"data"`
		FrozenHash        string        `json:"frozen_hash"`
		LastTransactionID TransactionID `json:"last_transaction_id"`
		SyncUtime         int64         `json:"sync_utime"`
	}

	// Transactions is one page of account history, PreviousTransactionID points at the next older page.
	Transactions struct {
		PreviousTransactionID *TransactionID `json:"previous_transaction_id,omitempty"`
		Transactions          []*Transaction `json:"transactions"`
	}

	Transaction struct {
		TransactionID TransactionID         `json:"transaction_id"`
		Data          string                `json:"data"`
		Fee           string                `json:"fee"`
		OtherFee      string                `json:"other_fee"`
		StorageFee    string                `json:"storage_fee"`
		Utime         int64                 `json:"utime"`
		InMsg         *TransactionMessage   `json:"in_msg,omitempty"`
		OutMsgs       []*TransactionMessage `json:"out_msgs"`
	}

	TransactionMessage struct {
		Destination MessageAddress `json:"destination"`
		SourceAddr  MessageAddress `json:"source"`
		BodyHash    string         `json:"body_hash"`
		CreatedLt   string         `json:"created_lt"`
		FwdFee      string         `json:"fwd_fee"`
		IhrFee      string         `json:"ihr_fee"`
		Value       string         `json:"value"`
	}

	MessageAddress struct {
		AccountAddress string `json:"account_address"`
	}

	MasterchainInfo struct {
		Init          BlockID `json:"init"`
		Last          BlockID `json:"last"`
		StateRootHash string  `json:"state_root_hash"`
	}

	// AccountTransactionID is a cursor inside a block's transaction list.
	AccountTransactionID struct {
		Account string `json:"account"`
		Lt      int64  `json:"lt"`
	}

	BlockTransactions struct {
		ID           BlockID     `json:"id"`
		ReqCount     int         `json:"req_count"`
		Incomplete   bool        `json:"incomplete"`
		Transactions []ShortTxID `json:"transactions"`
	}

	ShortTxID struct {
		Mode    int    `json:"mode"`
		Account string `json:"account"`
		Lt      string `json:"lt"`
		Hash    string `json:"hash"`
	}
)

// Source returns the sender address.
func (m *TransactionMessage) Source() string {
	return m.SourceAddr.AccountAddress
}

// Target returns the recipient address.
func (m *TransactionMessage) Target() string {
	return m.Destination.AccountAddress
}
