package collection

import "sync"

// SyncMap is a mutex guarded map. Every method is atomic with respect to every other one.
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.Mutex
}

func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	v, ok := m.m[k]
	return v, ok
}

// PutIfAbsent stores v under k unless k is already present, it returns false in that case.
func (m *SyncMap[K, V]) PutIfAbsent(k K, v V) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; ok {
		return false
	}
	m.m[k] = v
	return true
}

// Update replaces the value of an existing key, unknown keys are left untouched.
func (m *SyncMap[K, V]) Update(k K, fn func(v V) (V, bool)) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	v, ok := m.m[k]
	if !ok {
		return false
	}
	next, ok := fn(v)
	if !ok {
		return false
	}
	m.m[k] = next
	return true
}

// TakeIf removes and returns the value of k when accept reports true for it.
func (m *SyncMap[K, V]) TakeIf(k K, accept func(v V) bool) (V, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	v, ok := m.m[k]
	if !ok || !accept(v) {
		var zero V
		return zero, false
	}
	delete(m.m, k)
	return v, true
}

// Delete removes k and reports whether it was present.
func (m *SyncMap[K, V]) Delete(k K) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; !ok {
		return false
	}
	delete(m.m, k)
	return true
}

func (m *SyncMap[K, V]) Len() int {
	m.mux.Lock()
	defer m.mux.Unlock()
	return len(m.m)
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
