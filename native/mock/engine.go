// Package mock provides an in-memory native engine for tests.
package mock

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/eapache/queue"
)

// Responder produces the messages the engine emits for one sent request.
type Responder func(request map[string]any) []string

// Engine implements native.Library with a FIFO of outbound messages.
type Engine struct {
	mux       sync.Mutex
	outbound  *queue.Queue
	responder Responder
	sent      []string
	verbosity int32
	created   int
	destroyed int
	sendDelay time.Duration
}

func (e *Engine) SetVerbosityLevel(level int32) {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.verbosity = level
}

func (e *Engine) Create() uintptr {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.created++
	return uintptr(e.created)
}

func (e *Engine) Send(_ uintptr, request string) {
	if e.sendDelay > 0 {
		time.Sleep(e.sendDelay)
	}
	e.mux.Lock()
	defer e.mux.Unlock()
	e.sent = append(e.sent, request)
	if e.responder == nil {
		return
	}
	decoded := map[string]any{}
	if err := json.Unmarshal([]byte(request), &decoded); err != nil {
		return
	}
	for _, message := range e.responder(decoded) {
		e.outbound.Add(message)
	}
}

func (e *Engine) Receive(_ uintptr, _ float64) string {
	e.mux.Lock()
	defer e.mux.Unlock()
	if e.outbound.Length() == 0 {
		return ""
	}
	return e.outbound.Remove().(string)
}

func (e *Engine) Destroy(_ uintptr) {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.destroyed++
}

// Push enqueues a raw message as if the engine emitted it.
func (e *Engine) Push(messages ...string) {
	e.mux.Lock()
	defer e.mux.Unlock()
	for _, message := range messages {
		e.outbound.Add(message)
	}
}

// SetResponder replaces the responder.
func (e *Engine) SetResponder(responder Responder) {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.responder = responder
}

// Sent returns a copy of every request received so far.
func (e *Engine) Sent() []string {
	e.mux.Lock()
	defer e.mux.Unlock()
	return append([]string(nil), e.sent...)
}

// SentOfType returns the decoded requests carrying the given @type.
func (e *Engine) SentOfType(typeTag string) []map[string]any {
	var result []map[string]any
	for _, request := range e.Sent() {
		decoded := map[string]any{}
		if err := json.Unmarshal([]byte(request), &decoded); err != nil {
			continue
		}
		if decoded["@type"] == typeTag {
			result = append(result, decoded)
		}
	}
	return result
}

// Verbosity returns the last level set, -1 until SetVerbosityLevel is called.
func (e *Engine) Verbosity() int32 {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.verbosity
}

func (e *Engine) Destroyed() int {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.destroyed
}

// Option configures an Engine.
type Option func(e *Engine)

// WithResponder sets the responder.
func WithResponder(responder Responder) Option {
	return func(e *Engine) {
		e.responder = responder
	}
}

// WithSendDelay keeps the handle busy for d on every send.
func WithSendDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.sendDelay = d
	}
}

func New(options ...Option) *Engine {
	ret := &Engine{outbound: queue.New(), verbosity: -1}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
