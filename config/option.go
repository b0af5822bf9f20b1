package config

import (
	"github.com/viant/afs"
	"go.uber.org/zap"
)

// Option represents option
type Option func(l *Loader)

// WithCacheDir sets the directory remote configs are cached in
func WithCacheDir(dir string) Option {
	return func(l *Loader) {
		l.cacheDir = dir
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithFileSystem sets the storage service
func WithFileSystem(fs afs.Service) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}
