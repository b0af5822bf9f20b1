package bridge

import "github.com/google/uuid"

// CorrelationID identifies one outbound request and its response.
type CorrelationID string

// NewID returns a time ordered, random suffixed id (UUIDv7).
func NewID() CorrelationID {
	id, err := uuid.NewV7()
	if err != nil {
		return CorrelationID(uuid.New().String())
	}
	return CorrelationID(id.String())
}
