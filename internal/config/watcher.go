// ABOUTME: Polling-based config watcher for hot-reload while serving
// ABOUTME: Reloads the file when its mtime changes; invalid edits are logged and skipped

package config

import (
	"context"
	"os"
	"time"

	"github.com/mauromedda/echostatus/internal/log"
)

const defaultPollInterval = 2 * time.Second

// Watcher reloads a config file when its modification time changes. Only
// settings read per request take effect; listen and API settings need a
// restart.
type Watcher struct {
	path     string
	interval time.Duration
	onReload func(*Config)
	mtime    time.Time
}

// NewWatcher watches path with the same resolution rules as Load: an empty
// path means DefaultConfigFile.
func NewWatcher(path string, onReload func(*Config)) *Watcher {
	return &Watcher{path: path, interval: defaultPollInterval, onReload: onReload}
}

// SetInterval overrides the default polling interval (2s).
func (w *Watcher) SetInterval(d time.Duration) {
	if d > 0 {
		w.interval = d
	}
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.mtime = w.modTime()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.check()
		}
	}
}

// check reloads the file if it changed since the last look and reports
// whether onReload was called.
func (w *Watcher) check() bool {
	mt := w.modTime()
	if mt.Equal(w.mtime) {
		return false
	}
	w.mtime = mt

	cfg, err := Load(w.path)
	if err != nil {
		log.Warn("config: reload skipped: %v", err)
		return false
	}
	log.Info("config: reloaded %s", w.resolved())
	w.onReload(cfg)
	return true
}

func (w *Watcher) resolved() string {
	if w.path == "" {
		return DefaultConfigFile()
	}
	return w.path
}

// modTime is the zero time when the file is missing.
func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.resolved())
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
