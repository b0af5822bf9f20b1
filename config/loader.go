package config

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
)

// DefaultLocation is the public TON mainnet lite-server config.
const DefaultLocation = "https://ton-blockchain.github.io/global.config.json"

// Loader reads lite-server config text, remote locations are cached on local disk.
type Loader struct {
	fs       afs.Service
	cacheDir string
	logger   *zap.Logger
}

// Load returns the config text at location.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	if location == "" {
		location = DefaultLocation
	}
	if !isRemote(location) {
		data, err := l.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return "", fmt.Errorf("failed to read config %v: %w", location, err)
		}
		return string(data), nil
	}
	cached := l.CachePath(location)
	if ok, _ := l.fs.Exists(ctx, cached); ok {
		data, err := l.fs.DownloadWithURL(ctx, cached)
		if err == nil {
			l.logger.Debug("config cache hit", zap.String("location", location), zap.String("path", cached))
			return string(data), nil
		}
		l.logger.Warn("config cache unreadable", zap.String("path", cached), zap.Error(err))
	}
	status := option.NewStatus()
	data, err := l.fs.DownloadWithURL(ctx, location, status)
	if err == nil && status.Code >= http.StatusBadRequest {
		err = fmt.Errorf("unexpected status code: %v", status.Code)
	}
	if err != nil {
		return "", fmt.Errorf("failed to download config %v: %w", location, err)
	}
	if err = l.fs.Upload(ctx, cached, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		l.logger.Warn("failed to cache config", zap.String("path", cached), zap.Error(err))
	}
	return string(data), nil
}

// CachePath returns the cache file for a remote location.
func (l *Loader) CachePath(location string) string {
	return filepath.Join(l.cacheDir, base64.URLEncoding.EncodeToString([]byte(location)))
}

func isRemote(location string) bool {
	switch url.Scheme(location, file.Scheme) {
	case "http", "https":
		return true
	}
	return false
}

// New creates a loader caching under $TMPDIR/ton-rs by default.
func New(options ...Option) *Loader {
	ret := &Loader{
		fs:       afs.New(),
		cacheDir: filepath.Join(os.TempDir(), "ton-rs"),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
