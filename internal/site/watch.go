package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"portfolio-blog/internal/observability/logging"
)

// Watcher runs a callback after changes to a directory settle.
type Watcher struct {
	dir      string
	debounce time.Duration
	fn       func(context.Context) error
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching dir. Events are collected until Run is called.
func NewWatcher(dir string, debounce time.Duration, fn func(context.Context) error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("NewWatcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("NewWatcher: watch %s: %w", dir, err)
	}
	return &Watcher{dir: dir, debounce: debounce, fn: fn, fsw: fsw}, nil
}

// Run calls fn once no event has arrived for the debounce interval. Errors
// from fn are logged and watching continues. Run returns nil when ctx is
// done and closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	logger := logging.FromContext(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("content changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.fn(ctx); err != nil {
				logger.Error("rebuild failed", slog.String("dir", w.dir), slog.Any("error", err))
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("dir", w.dir), slog.Any("error", err))
		}
	}
}

// Watch watches dir and calls fn after each settled batch of changes until
// ctx is done.
func Watch(ctx context.Context, dir string, debounce time.Duration, fn func(context.Context) error) error {
	w, err := NewWatcher(dir, debounce, fn)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
