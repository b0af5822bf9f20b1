package native

// LibraryPathEnv names the environment variable overriding the native library location.
const LibraryPathEnv = "TON_LIB_PATH"

// Symbol names exported by libtonlibjson.
const (
	SymbolSetVerbosityLevel = "tonlib_client_set_verbosity_level"
	SymbolCreate            = "tonlib_client_json_create"
	SymbolSend              = "tonlib_client_json_send"
	SymbolReceive           = "tonlib_client_json_receive"
	SymbolDestroy           = "tonlib_client_json_destroy"
)

// Library is the foreign contract of the native engine.
type Library interface {
	// SetVerbosityLevel sets the process wide native log verbosity.
	SetVerbosityLevel(level int32)
	// Create allocates a new engine instance.
	Create() uintptr
	// Send enqueues a JSON request, it never waits for a response.
	Send(client uintptr, request string)
	// Receive waits up to timeout seconds for the next JSON message, an empty string means none.
	Receive(client uintptr, timeout float64) string
	// Destroy releases the engine instance.
	Destroy(client uintptr)
}
