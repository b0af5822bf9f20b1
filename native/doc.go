// Package native adapts the tonlib JSON client C ABI.
//
// The native engine is synchronous and keeps a single opaque handle. A Handle owns that
// pointer, serializes every native call behind one mutex and destroys it exactly once.
// The five symbols the adapter depends on are resolved at runtime with purego, so the
// package builds without cgo:
//
//	lib, err := native.Open(os.Getenv(native.LibraryPathEnv))
//	if err != nil {
//		return err
//	}
//	handle := native.New(lib, 1, time.Millisecond)
//	defer handle.Close()
//	handle.Send(`{"@type":"sync","@extra":"1"}`)
package native
