package bridge

import (
	"encoding/json"

	"github.com/viant/tonclient/schema"
)

// Outcome is the result deposited for a correlation id, either a payload or an engine error.
type Outcome struct {
	Payload json.RawMessage
	Err     *NativeError
}

// Failed reports whether the engine answered with an error.
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Result returns the payload or the engine error.
func (o *Outcome) Result() (json.RawMessage, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	return o.Payload, nil
}

// NewOutcome builds the outcome of a correlated message, ok is false for unrecognized ones.
func NewOutcome(message *schema.Message) (*Outcome, bool) {
	switch message.Kind {
	case schema.KindSuccess:
		return &Outcome{Payload: message.Payload}, true
	case schema.KindError:
		return &Outcome{Err: &NativeError{Message: message.Error}}, true
	}
	return nil, false
}
