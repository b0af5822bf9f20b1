package bridge

import (
	"fmt"

	"github.com/viant/tonclient/internal/collection"
)

// Table maps in-flight correlation ids to their outcome, a nil outcome means pending.
type Table struct {
	entries *collection.SyncMap[CorrelationID, *Outcome]
}

// Register marks id as pending, the id must not be in use.
func (t *Table) Register(id CorrelationID) error {
	if !t.entries.PutIfAbsent(id, nil) {
		return fmt.Errorf("%w: %v", ErrDuplicateID, id)
	}
	return nil
}

// Resolve deposits outcome for a pending id. Unknown or already resolved ids are ignored.
func (t *Table) Resolve(id CorrelationID, outcome *Outcome) bool {
	return t.entries.Update(id, func(current *Outcome) (*Outcome, bool) {
		return outcome, current == nil
	})
}

// Take removes and returns the outcome of a resolved id, pending entries are left in place.
func (t *Table) Take(id CorrelationID) (*Outcome, bool) {
	return t.entries.TakeIf(id, func(outcome *Outcome) bool {
		return outcome != nil
	})
}

// Remove retires id whatever its state.
func (t *Table) Remove(id CorrelationID) bool {
	return t.entries.Delete(id)
}

// Contains reports whether id is still in the table.
func (t *Table) Contains(id CorrelationID) bool {
	_, ok := t.entries.Get(id)
	return ok
}

// Len returns the number of in-flight ids.
func (t *Table) Len() int {
	return t.entries.Len()
}

func NewTable() *Table {
	return &Table{entries: collection.NewSyncMap[CorrelationID, *Outcome]()}
}
