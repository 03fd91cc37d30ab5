package viewer

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/logger"
)

// FileWatcher reports changes to one file. The file's directory is watched
// rather than the file so editors that save by rename keep being tracked.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup

	mu     sync.Mutex
	dir    string
	target string

	log *zap.Logger
}

// NewFileWatcher starts a watcher with nothing watched yet.
func NewFileWatcher() (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		log:     logger.Named("watcher"),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Changes delivers the path of the watched file after it changes. Bursts of
// writes coalesce into one pending notification.
func (w *FileWatcher) Changes() <-chan string {
	return w.changes
}

// Watch switches the watcher to path.
func (w *FileWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			if err := w.watcher.Remove(w.dir); err != nil {
				w.log.Debug("unwatch failed", zap.String("dir", w.dir), zap.Error(err))
			}
		}
		w.dir = dir
	}
	w.target = abs

	w.log.Debug("watching", zap.String("path", abs))
	return nil
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *FileWatcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if path, ok := w.matches(event.Name); ok {
				w.notify(path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *FileWatcher) matches(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.target == "" || filepath.Clean(name) != w.target {
		return "", false
	}
	return w.target, true
}

func (w *FileWatcher) notify(path string) {
	select {
	case w.changes <- path:
	default:
		// A notification is already pending
	}
}
