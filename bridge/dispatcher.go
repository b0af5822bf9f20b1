package bridge

import (
	"go.uber.org/zap"

	"github.com/viant/tonclient/native"
	"github.com/viant/tonclient/schema"
)

// Dispatcher sends requests tagged with a fresh correlation id.
type Dispatcher struct {
	handle *native.Handle
	table  *Table
	newID  func() CorrelationID
	logger *zap.Logger
}

// Dispatch registers a new id as pending, then sends request carrying that id. It only
// blocks for the handle lock.
func (d *Dispatcher) Dispatch(request schema.Request) (CorrelationID, error) {
	id := d.newID()
	data, err := schema.Marshal(request, string(id))
	if err != nil {
		return "", err
	}
	if err = d.table.Register(id); err != nil {
		return "", err
	}
	d.logger.Info("send request", zap.String("extra", string(id)), zap.String("type", request.Type()))
	d.handle.Send(string(data))
	return id, nil
}

func NewDispatcher(handle *native.Handle, table *Table, newID func() CorrelationID, logger *zap.Logger) *Dispatcher {
	if newID == nil {
		newID = NewID
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{handle: handle, table: table, newID: newID, logger: logger}
}
