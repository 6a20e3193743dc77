package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of catalog file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // catalog file edited or created
	ChangeRemoved                    // catalog file deleted
)

// Change represents a detected change to the watched catalog file.
type Change struct {
	Kind ChangeKind
	File string // absolute path
}

// Watcher monitors a catalog file for changes using fsnotify. It watches the
// containing directory so editors that replace the file atomically (write to
// temp, rename over) are still observed.
type Watcher struct {
	Path    string
	Changes <-chan Change // read-only external channel

	changes chan Change // internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given catalog file path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Path:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the catalog file's directory for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: a save often arrives as several events in quick succession.
	const debounce = 100 * time.Millisecond
	var pending *fsnotify.Event
	var pendingAt time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending != nil {
					w.emit(*pending)
				}
				return
			}

			if filepath.Clean(event.Name) != w.Path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				e := event
				pending = &e
				pendingAt = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if pending != nil && time.Since(pendingAt) >= debounce {
				w.emit(*pending)
				pending = nil
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(event fsnotify.Event) {
	kind := ChangeModified
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		kind = ChangeRemoved
	}
	w.changes <- Change{Kind: kind, File: w.Path}
}
