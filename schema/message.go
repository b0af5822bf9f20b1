package schema

import "encoding/json"

// Kind classifies an inbound engine message.
type Kind int

const (
	// KindUnrecognized marks a message that cannot be correlated to a request.
	KindUnrecognized Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	}
	return "unrecognized"
}

// Message is an inbound engine message decoded at the boundary.
type Message struct {
	Kind  Kind
	Type  string
	Extra string
	// Payload holds the full message for KindSuccess.
	Payload json.RawMessage
	// Error holds the engine message text for KindError.
	Error string
}

type envelope struct {
	Type    json.RawMessage `json:"@type"`
	Extra   json.RawMessage `json:"@extra"`
	Message json.RawMessage `json:"message"`
}

// Decode classifies data. Messages that are not JSON objects or carry no string "@extra" are unrecognized.
// Only the string "@type" "error" makes a message an error, any other "@type" value is a success.
func Decode(data []byte) *Message {
	ret := &Message{}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ret
	}
	if len(env.Type) > 0 {
		_ = json.Unmarshal(env.Type, &ret.Type)
	}
	if len(env.Extra) == 0 || json.Unmarshal(env.Extra, &ret.Extra) != nil || ret.Extra == "" {
		ret.Extra = ""
		return ret
	}
	if ret.Type == TypeError {
		ret.Kind = KindError
		_ = json.Unmarshal(env.Message, &ret.Error)
		return ret
	}
	ret.Kind = KindSuccess
	ret.Payload = json.RawMessage(data)
	return ret
}
