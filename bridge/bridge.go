package bridge

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/viant/tonclient/native"
	"github.com/viant/tonclient/schema"
)

// Bridge composes the table, poller, dispatcher and awaiter around one native handle.
type Bridge struct {
	handle     *native.Handle
	table      *Table
	poller     *Poller
	dispatcher *Dispatcher
	awaiter    *Awaiter

	logger   *zap.Logger
	interval time.Duration
	timeout  time.Duration
	newID    func() CorrelationID

	mux    sync.RWMutex
	closed bool
	done   chan struct{}
}

// Dispatch sends request and returns its correlation id.
func (b *Bridge) Dispatch(request schema.Request) (CorrelationID, error) {
	b.mux.RLock()
	defer b.mux.RUnlock()
	if b.closed {
		return "", ErrClosed
	}
	return b.dispatcher.Dispatch(request)
}

// Await waits for id with the configured request timeout.
func (b *Bridge) Await(ctx context.Context, id CorrelationID) (json.RawMessage, error) {
	return b.awaiter.Await(ctx, id, b.timeout)
}

// AwaitTimeout waits for id with an explicit timeout.
func (b *Bridge) AwaitTimeout(ctx context.Context, id CorrelationID, timeout time.Duration) (json.RawMessage, error) {
	return b.awaiter.Await(ctx, id, timeout)
}

// Call dispatches request and awaits its response.
func (b *Bridge) Call(ctx context.Context, request schema.Request) (json.RawMessage, error) {
	id, err := b.Dispatch(request)
	if err != nil {
		return nil, err
	}
	return b.Await(ctx, id)
}

// Table exposes the correlation table.
func (b *Bridge) Table() *Table {
	return b.table
}

// Timeout returns the default request timeout.
func (b *Bridge) Timeout() time.Duration {
	return b.timeout
}

// Close stops the poller and destroys the native handle, pending awaits return ErrClosed.
// It is safe to call more than once.
func (b *Bridge) Close() error {
	b.mux.Lock()
	defer b.mux.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	b.poller.Stop()
	return b.handle.Close()
}

// New creates a bridge owning handle and starts its poller.
func New(handle *native.Handle, options ...Option) *Bridge {
	ret := &Bridge{
		handle:   handle,
		table:    NewTable(),
		logger:   zap.NewNop(),
		interval: DefaultPollInterval,
		timeout:  DefaultRequestTimeout,
		newID:    NewID,
		done:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.poller = NewPoller(handle, ret.table, ret.interval, ret.logger)
	ret.dispatcher = NewDispatcher(handle, ret.table, ret.newID, ret.logger)
	ret.awaiter = NewAwaiter(ret.table, ret.interval, ret.done, ret.logger)
	ret.poller.Start()
	return ret
}
