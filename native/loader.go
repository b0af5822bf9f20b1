//go:build darwin || linux

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type dynamicLibrary struct {
	handle            uintptr
	setVerbosityLevel func(level int32)
	create            func() uintptr
	send              func(client uintptr, request string)
	receive           func(client uintptr, timeout float64) string
	destroy           func(client uintptr)
}

func (l *dynamicLibrary) SetVerbosityLevel(level int32) { l.setVerbosityLevel(level) }

func (l *dynamicLibrary) Create() uintptr { return l.create() }

func (l *dynamicLibrary) Send(client uintptr, request string) { l.send(client, request) }

func (l *dynamicLibrary) Receive(client uintptr, timeout float64) string {
	return l.receive(client, timeout)
}

func (l *dynamicLibrary) Destroy(client uintptr) { l.destroy(client) }

// Open loads the shared library at path and resolves the tonlib JSON client symbols.
func Open(path string) (Library, error) {
	if path == "" {
		return nil, fmt.Errorf("native library path was empty, set %v", LibraryPathEnv)
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to open native library %v: %w", path, err)
	}
	ret := &dynamicLibrary{handle: handle}
	symbols := []struct {
		name string
		fn   any
	}{
		{SymbolSetVerbosityLevel, &ret.setVerbosityLevel},
		{SymbolCreate, &ret.create},
		{SymbolSend, &ret.send},
		{SymbolReceive, &ret.receive},
		{SymbolDestroy, &ret.destroy},
	}
	for _, symbol := range symbols {
		ptr, err := purego.Dlsym(handle, symbol.name)
		if err != nil {
			_ = purego.Dlclose(handle)
			return nil, fmt.Errorf("failed to resolve %v in %v: %w", symbol.name, path, err)
		}
		purego.RegisterFunc(symbol.fn, ptr)
	}
	return ret, nil
}
