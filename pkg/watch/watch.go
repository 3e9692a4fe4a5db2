// Package watch reports template files that were written in a directory.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
)

// DefaultDebounce is how long a file must be quiet before it is reported.
const DefaultDebounce = 100 * time.Millisecond

// Change is a file that was created or written and has settled.
type Change struct {
	Name string // Base name
	Path string
}

// Watcher monitors one directory using fsnotify.
type Watcher struct {
	Dir      string
	Changes  <-chan Change
	Debounce time.Duration

	match   func(name string) bool
	changes chan Change
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for dir. Only files whose base name satisfies
// match are reported; a nil match reports everything.
func NewWatcher(dir string, match func(name string) bool) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatch, "cannot create file watcher")
	}
	if match == nil {
		match = func(string) bool { return true }
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:      dir,
		Changes:  ch,
		Debounce: DefaultDebounce,
		match:    match,
		changes:  ch,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		watcher:  fw,
	}, nil
}

// Start begins watching the directory. When it fails the watcher is closed
// and Stop must not be called.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		_ = w.watcher.Close()
		return errors.Wrapf(err, errors.ErrWatch, "cannot watch %s", w.Dir).
			WithDetail("path", w.Dir)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and then the Changes channel. Changes that were
// not read by then are dropped.
func (w *Watcher) Stop() {
	close(w.stop)
	_ = w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)
	logger := logging.GetLogger("watch")

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				for path := range pending {
					if !w.emit(path) {
						return
					}
				}
				return
			}
			if !w.match(filepath.Base(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) >= w.Debounce {
					if !w.emit(path) {
						return
					}
					delete(pending, path)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Str("dir", w.Dir).Msg("Watch error")
		}
	}
}

// emit reports false when the watcher is stopping.
func (w *Watcher) emit(path string) bool {
	select {
	case w.changes <- Change{Name: filepath.Base(path), Path: path}:
		return true
	case <-w.stop:
		return false
	}
}
