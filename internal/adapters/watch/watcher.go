// Package watch implements file system watching for rebuild cycles.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are directory names that are never watched.
var skipDirectories = map[string]bool{
	".git":         true,
	"node_modules": true,
	"www":          true,
	"dist":         true,
}

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan string
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchSetupFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsw,
		events:    make(chan string, eventChannelBuffer),
	}, nil
}

// Start begins watching the given roots recursively and pumps change
// events until ctx is canceled or Stop is called. Start must be called at
// most once.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Unreadable directories are skipped, not fatal.
				return nil //nolint:nilerr
			}
			if !d.IsDir() {
				return nil
			}
			if skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			return w.fsWatcher.Add(path)
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchSetupFailed.Error()), "root", root)
		}
	}

	go w.pump(ctx)
	return nil
}

// Stop closes the underlying watcher; the events channel closes once the
// pump drains.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns the channel of changed file paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

func (w *Watcher) pump(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			// New directories join the watch set so nested creates are seen.
			if ev.Op.Has(fsnotify.Create) {
				_ = w.fsWatcher.Add(ev.Name)
			}
			select {
			case w.events <- ev.Name:
			default:
				// Drop on overflow; the debouncer coalesces bursts anyway.
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if skipDirectories[filepath.Base(filepath.Dir(ev.Name))] {
		return false
	}
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)
}
