//go:build !darwin && !linux

package native

import (
	"fmt"
	"runtime"
)

// Open is not supported on this platform.
func Open(path string) (Library, error) {
	return nil, fmt.Errorf("native library loading is not supported on %v", runtime.GOOS)
}
