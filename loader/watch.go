package loader

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change event
// before re-reading the file.
const DefaultDebounce = 250 * time.Millisecond

// ChangeHandler receives the freshly read document, or the error that
// prevented reading it. It is called from a single goroutine.
type ChangeHandler func(doc Document, err error)

// WatchOptions configures Watch.
type WatchOptions struct {
	// Debounce collapses bursts of events (editors often write, rename and
	// chmod in quick succession). Default: DefaultDebounce.
	Debounce time.Duration

	// Logger receives watcher errors. Default: slog.Default().
	Logger *slog.Logger
}

// Watch re-reads the document at path whenever it changes and passes the
// result to onChange. It blocks until ctx is cancelled and returns nil then,
// or returns an error if the watch cannot be established.
//
// The parent directory is watched rather than the file itself so that
// atomic replace-by-rename updates are observed.
func Watch(ctx context.Context, path string, onChange ChangeHandler, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	timer := time.NewTimer(opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(opts.Debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("pathway watcher error", "path", abs, "error", err)

		case <-timer.C:
			doc, err := ReadFile(abs)
			onChange(doc, err)
		}
	}
}
