package bridge

import "errors"

var (
	// ErrTimeout is returned when no response arrived before the deadline.
	ErrTimeout = errors.New("timeout")
	// ErrDuplicateID is returned when a correlation id is registered twice.
	ErrDuplicateID = errors.New("correlation id already registered")
	// ErrClosed is returned when dispatching on a closed bridge.
	ErrClosed = errors.New("bridge closed")
)

// NativeError is an error reported by the engine in an "error" typed message.
type NativeError struct {
	Message string
}

func (e *NativeError) Error() string {
	return e.Message
}
