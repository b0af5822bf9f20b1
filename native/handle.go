package native

import (
	"sync"
	"time"
)

const errUseAfterClose = "native: handle used after Close"

// DefaultReceiveTimeout keeps a single receive short so the handle lock is held briefly.
const DefaultReceiveTimeout = time.Millisecond

// Handle owns one native engine instance. At most one native call is in flight at a time.
type Handle struct {
	mux     sync.Mutex
	lib     Library
	client  uintptr
	timeout float64
	closed  bool
}

// Send hands request to the engine.
func (h *Handle) Send(request string) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.ensureOpen()
	h.lib.Send(h.client, request)
}

// Receive waits for the handle lock and pulls one message, ok is false when none was available.
func (h *Handle) Receive() (string, bool) {
	h.mux.Lock()
	defer h.mux.Unlock()
	return h.receive()
}

// TryReceive pulls one message only if the handle is free, acquired is false when another
// caller holds it.
func (h *Handle) TryReceive() (message string, ok bool, acquired bool) {
	if !h.mux.TryLock() {
		return "", false, false
	}
	defer h.mux.Unlock()
	message, ok = h.receive()
	return message, ok, true
}

func (h *Handle) receive() (string, bool) {
	h.ensureOpen()
	message := h.lib.Receive(h.client, h.timeout)
	return message, message != ""
}

func (h *Handle) ensureOpen() {
	if h.closed {
		panic(errUseAfterClose)
	}
}

// Close destroys the native instance, subsequent calls are no-ops.
func (h *Handle) Close() error {
	h.mux.Lock()
	defer h.mux.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.lib.Destroy(h.client)
	h.client = 0
	return nil
}

// New sets the native verbosity and creates the engine instance. receiveTimeout bounds each
// native receive call.
func New(lib Library, verbosity int, receiveTimeout time.Duration) *Handle {
	lib.SetVerbosityLevel(int32(verbosity))
	return &Handle{
		lib:     lib,
		client:  lib.Create(),
		timeout: receiveTimeout.Seconds(),
	}
}
