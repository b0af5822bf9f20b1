package schema

import (
	"encoding/json"
	"fmt"
)

// Request is an outbound engine request.
type Request interface {
	// Type returns the request type tag.
	Type() string
}

// Marshal serializes request with the "@type" and "@extra" envelope fields.
func Marshal(request Request, extra string) ([]byte, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %v: %w", request.Type(), err)
	}
	fields := map[string]json.RawMessage{}
	if err = json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to marshal %v: request is not an object: %w", request.Type(), err)
	}
	if fields[FieldType], err = json.Marshal(request.Type()); err != nil {
		return nil, err
	}
	if fields[FieldExtra], err = json.Marshal(extra); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

type (
	// Init configures the engine, it must be the first request on a handle.
	Init struct {
		Options InitOptions `json:"options"`
	}

	InitOptions struct {
		Type         string       `json:"@type"`
		Config       InitConfig   `json:"config"`
		KeystoreType KeystoreType `json:"keystore_type"`
	}

	InitConfig struct {
		Type                   string `json:"@type"`
		Config                 string `json:"config"`
		UseCallbacksForNetwork bool   `json:"use_callbacks_for_network"`
		BlockchainName         string `json:"blockchain_name"`
		IgnoreCache            bool   `json:"ignore_cache"`
	}

	KeystoreType struct {
		Type      string `json:"@type"`
		Directory string `json:"directory"`
	}

	// GetAccountState requests the raw state of an account.
	GetAccountState struct {
		AccountAddress AccountAddress `json:"account_address"`
	}

	AccountAddress struct {
		AccountAddress string `json:"account_address"`
	}

	// GetTransactions requests one page of account transactions, walking backwards from FromTransactionID.
	GetTransactions struct {
		AccountAddress    AccountAddress        `json:"account_address"`
		FromTransactionID InternalTransactionID `json:"from_transaction_id"`
	}

	InternalTransactionID struct {
		Type string  `json:"@type"`
		Lt   *string `json:"lt"`
		Hash *string `json:"hash"`
	}

	GetMasterchainInfo struct{}

	Sync struct{}

	// GetBlockTransactions requests the short transaction ids of a block.
	GetBlockTransactions struct {
		ID    *BlockID           `json:"id"`
		Mode  int                `json:"mode"`
		Count int                `json:"count"`
		After RequestAccountTxID `json:"after"`
	}

	RequestAccountTxID struct {
		Type    string `json:"@type"`
		Account string `json:"account"`
		Lt      int64  `json:"lt"`
	}

	// LookupBlock resolves a block by seqno, logical time or unix time.
	LookupBlock struct {
		Mode  int           `json:"mode"`
		ID    LookupBlockID `json:"id"`
		Lt    *string       `json:"lt"`
		Utime *int64        `json:"utime"`
	}

	LookupBlockID struct {
		Type      string `json:"@type"`
		Workchain int32  `json:"workchain"`
		Shard     string `json:"shard"`
		Seqno     *int64 `json:"seqno"`
	}
)

func (r *Init) Type() string                 { return TypeInit }
func (r *GetAccountState) Type() string      { return TypeGetAccountState }
func (r *GetTransactions) Type() string      { return TypeGetTransactions }
func (r *GetMasterchainInfo) Type() string   { return TypeGetMasterchainInfo }
func (r *Sync) Type() string                 { return TypeSync }
func (r *GetBlockTransactions) Type() string { return TypeGetBlockTransactions }
func (r *LookupBlock) Type() string          { return TypeLookupBlock }

// NewInit creates an init request for the given lite server config text and keystore directory.
func NewInit(liteServerConfig, keystoreDir string) *Init {
	return &Init{Options: InitOptions{
		Type: TypeOptions,
		Config: InitConfig{
			Type:   TypeConfig,
			Config: liteServerConfig,
		},
		KeystoreType: KeystoreType{
			Type:      TypeKeyStoreTypeDirectory,
			Directory: keystoreDir,
		},
	}}
}

func NewGetAccountState(address string) *GetAccountState {
	return &GetAccountState{AccountAddress: AccountAddress{AccountAddress: address}}
}

// NewGetTransactions creates a transactions page request, nil lt or hash are sent as null.
func NewGetTransactions(address string, lt, hash *string) *GetTransactions {
	return &GetTransactions{
		AccountAddress: AccountAddress{AccountAddress: address},
		FromTransactionID: InternalTransactionID{
			Type: TypeInternalTransactionID,
			Lt:   lt,
			Hash: hash,
		},
	}
}

const (
	// blockTransactionsMode requests account, lt and hash of every transaction.
	blockTransactionsMode = 7
	// blockTransactionsAfterMode additionally honours the After cursor.
	blockTransactionsAfterMode = 128
	// ZeroAccount is the base64 encoded all-zero account used when no cursor is given.
	ZeroAccount = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
)

// NewGetBlockTransactions creates a block transactions request, after may be nil for the first page.
func NewGetBlockTransactions(id *BlockID, count int, after *AccountTransactionID) *GetBlockTransactions {
	ret := &GetBlockTransactions{
		ID:    id,
		Mode:  blockTransactionsMode,
		Count: count,
		After: RequestAccountTxID{Type: TypeAccountTransactionID, Account: ZeroAccount},
	}
	if after != nil {
		ret.Mode += blockTransactionsAfterMode
		ret.After.Account = after.Account
		ret.After.Lt = after.Lt
	}
	return ret
}

const (
	lookupBySeqno = 1 << iota
	lookupByLt
	lookupByUtime
)

// NewLookupBlock creates a block lookup request, the mode bitmask reflects which criteria are set.
func NewLookupBlock(workchain int32, shard string, seqno *int64, lt *string, utime *int64) *LookupBlock {
	ret := &LookupBlock{
		ID: LookupBlockID{
			Type:      TypeBlockID,
			Workchain: workchain,
			Shard:     shard,
			Seqno:     seqno,
		},
		Lt:    lt,
		Utime: utime,
	}
	if seqno != nil {
		ret.Mode |= lookupBySeqno
	}
	if lt != nil {
		ret.Mode |= lookupByLt
	}
	if utime != nil {
		ret.Mode |= lookupByUtime
	}
	return ret
}
