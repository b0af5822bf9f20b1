package bridge

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/viant/tonclient/native"
	"github.com/viant/tonclient/schema"
)

// Poller drains the native handle in the background and resolves correlated responses.
type Poller struct {
	handle   *native.Handle
	table    *Table
	interval time.Duration
	logger   *zap.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

// Start launches the polling goroutine, subsequent calls are no-ops.
func (p *Poller) Start() {
	p.startOnce.Do(func() {
		go p.run()
	})
}

// Stop ends the polling goroutine and waits for it to exit.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
	started := true
	p.startOnce.Do(func() {
		started = false
		close(p.stopped)
	})
	if started {
		<-p.stopped
	}
}

func (p *Poller) run() {
	defer close(p.stopped)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}
		p.Poll()
	}
}

// Poll runs one iteration: it skips when the handle is busy, otherwise receives at most one
// message and resolves it. It reports whether a message was received.
func (p *Poller) Poll() bool {
	text, ok, acquired := p.handle.TryReceive()
	if !acquired || !ok {
		return false
	}
	message := schema.Decode([]byte(text))
	outcome, ok := NewOutcome(message)
	if !ok {
		p.logger.Debug("dropped uncorrelated message", zap.String("type", message.Type))
		return true
	}
	id := CorrelationID(message.Extra)
	if !p.table.Resolve(id, outcome) {
		p.logger.Debug("dropped late response", zap.String("extra", message.Extra), zap.String("type", message.Type))
	}
	return true
}

func NewPoller(handle *native.Handle, table *Table, interval time.Duration, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		handle:   handle,
		table:    table,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}
