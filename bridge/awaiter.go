package bridge

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Awaiter waits for correlated outcomes. It is the only component removing table entries.
type Awaiter struct {
	table    *Table
	interval time.Duration
	logger   *zap.Logger
	// done is closed when the owning bridge shuts down.
	done     <-chan struct{}
}

// Await polls the table until id resolves, timeout elapses, ctx is done or the bridge closes.
// The entry is removed in every case. On timeout it returns ErrTimeout, on cancellation ctx.Err(),
// on close ErrClosed, and a *NativeError when the engine answered with an error.
func (a *Awaiter) Await(ctx context.Context, id CorrelationID, timeout time.Duration) (json.RawMessage, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		if outcome, ok := a.table.Take(id); ok {
			return a.result(id, outcome)
		}
		select {
		case <-ctx.Done():
			a.table.Remove(id)
			return nil, ctx.Err()
		case <-a.done:
			if outcome, ok := a.table.Take(id); ok {
				return a.result(id, outcome)
			}
			a.table.Remove(id)
			return nil, ErrClosed
		case <-timer.C:
			if outcome, ok := a.table.Take(id); ok {
				return a.result(id, outcome)
			}
			a.table.Remove(id)
			a.logger.Info("request timed out", zap.String("extra", string(id)), zap.Duration("timeout", timeout))
			return nil, ErrTimeout
		case <-ticker.C:
		}
	}
}

func (a *Awaiter) result(id CorrelationID, outcome *Outcome) (json.RawMessage, error) {
	if outcome.Failed() {
		a.logger.Info("request failed", zap.String("extra", string(id)), zap.String("error", outcome.Err.Message))
	}
	return outcome.Result()
}

// NewAwaiter creates an awaiter, a nil done channel never fires.
func NewAwaiter(table *Table, interval time.Duration, done <-chan struct{}, logger *zap.Logger) *Awaiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Awaiter{table: table, interval: interval, done: done, logger: logger}
}
