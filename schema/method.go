package schema

// Request type tags of the native JSON protocol.
const (
	TypeInit                 = "init"
	TypeGetAccountState      = "raw.getAccountState"
	TypeGetTransactions      = "raw.getTransactions"
	TypeGetMasterchainInfo   = "blocks.getMasterchainInfo"
	TypeSync                 = "sync"
	TypeGetBlockTransactions = "blocks.getTransactions"
	TypeLookupBlock          = "blocks.lookupBlock"
)

// Nested object type tags.
const (
	TypeOptions               = "options"
	TypeConfig                = "config"
	TypeKeyStoreTypeDirectory = "keyStoreTypeDirectory"
	TypeInternalTransactionID = "internal.transactionId"
	TypeAccountTransactionID  = "blocks.accountTransactionId"
	TypeBlockID               = "ton.blockId"
	TypeError                 = "error"
)

// Reserved message fields.
const (
	FieldType    = "@type"
	FieldExtra   = "@extra"
	FieldMessage = "message"
)
