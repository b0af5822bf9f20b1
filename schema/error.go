package schema

import "github.com/viant/jsonrpc"

const (
	// NotFound is returned when the engine has no answer for a lookup.
	NotFound = -32002
)

// NewNotFound creates a not found error
func NewNotFound(what string, data interface{}) *jsonrpc.Error {
	return jsonrpc.NewError(NotFound, what+" not found", data)
}

// NewInvalidLookup creates an invalid lookup error
func NewInvalidLookup(message string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, "Invalid lookup: "+message, nil)
}
