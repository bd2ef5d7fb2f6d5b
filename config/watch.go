package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the polling fallback checks the file.
const pollInterval = 100 * time.Millisecond

// settleDelay collapses the truncate and write events of an in-place
// rewrite into one reload.
const settleDelay = 50 * time.Millisecond

// Watch loads the config at path and follows it for changes.
//
// The returned channel first receives the current config, then each
// reloaded config that differs from the last one sent. Reloads that fail to
// parse or validate, or that find an empty file, are logged and skipped. The
// channel is closed when ctx is cancelled. Uses fsnotify on the parent
// directory, so editors that replace the file by rename are handled, with a
// polling fallback.
//
// The watch is in place before the initial load, so any change made after
// Watch returns is delivered.
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	w := &watch{path: path}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling config", "path", path, "error", err)
		watcher = nil
	} else if err := watcher.Add(filepath.Dir(path)); err != nil {
		// Watch the directory (more reliable than watching file directly)
		slog.Debug("cannot watch config directory, polling", "path", path, "error", err)
		watcher.Close()
		watcher = nil
	}
	if watcher == nil {
		w.snapshot()
	}

	cfg, err := Load(path)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, err
	}

	ch := make(chan Config, 1)
	ch <- cfg
	w.last = cfg
	w.ch = ch

	go func() {
		defer close(ch)
		if watcher == nil {
			w.poll(ctx)
			return
		}
		defer watcher.Close()
		w.run(ctx, watcher)
	}()

	return ch, nil
}

type watch struct {
	path string
	last Config
	ch   chan Config

	// Polling baseline.
	lastMod  time.Time
	lastSize int64
}

func (w *watch) run(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			settle.Reset(settleDelay)

		case <-settle.C:
			if !w.reload(ctx) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

// snapshot records the file's current mtime and size as the polling baseline.
func (w *watch) snapshot() {
	if info, err := os.Stat(w.path); err == nil {
		w.lastMod, w.lastSize = info.ModTime(), info.Size()
	}
}

func (w *watch) poll(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(w.lastMod) && info.Size() == w.lastSize {
				continue
			}
			w.lastMod, w.lastSize = info.ModTime(), info.Size()
			if !w.reload(ctx) {
				return
			}
		}
	}
}

// reload re-reads the file and sends it if it changed. It returns false
// once ctx is done.
func (w *watch) reload(ctx context.Context) bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		slog.Warn("config reload failed, keeping previous config",
			slog.String("path", w.path),
			slog.Any("error", err))
		return true
	}
	// An in-place rewrite truncates first; an empty file is never a config
	// anyone wrote.
	if len(bytes.TrimSpace(data)) == 0 {
		slog.Debug("config file empty, keeping previous config", slog.String("path", w.path))
		return true
	}

	cfg, err := Parse(data, filepath.Ext(w.path))
	if err != nil {
		slog.Warn("config reload failed, keeping previous config",
			slog.String("path", w.path),
			slog.Any("error", err))
		return true
	}
	if cfg == w.last {
		return true
	}

	select {
	case w.ch <- cfg:
		w.last = cfg
		return true
	case <-ctx.Done():
		return false
	}
}
