package pagedef

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a Store loaded from a directory and reloads it when a
// definition file in that directory changes. A reload that fails leaves the
// previous store in place.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	onReload func(*Store)
	onError  func(error)

	mu    sync.RWMutex
	store *Store
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// OnReload is called with every successfully reloaded store.
func OnReload(fn func(*Store)) WatchOption {
	return func(w *Watcher) { w.onReload = fn }
}

// OnError is called when a reload fails or the watcher reports an error.
func OnError(fn func(error)) WatchOption {
	return func(w *Watcher) { w.onError = fn }
}

// Watch loads dir and starts watching it. Call Run to process changes and
// Close to release the watcher.
func Watch(dir string, opts ...WatchOption) (*Watcher, error) {
	store, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("pagedef: watch %s: %w", dir, err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("pagedef: watch %s: %w", dir, err)
	}

	w := &Watcher{dir: dir, watcher: fw, store: store}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Store returns the most recently loaded store.
func (w *Watcher) Store() *Store {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.store
}

// Run reloads the store on every relevant file event until ctx is done or
// the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if err := w.Reload(); err != nil {
				w.report(err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.report(fmt.Errorf("pagedef: watch %s: %w", w.dir, err))
		}
	}
}

// Reload reads the directory again and swaps the store in.
func (w *Watcher) Reload() error {
	store, err := LoadFS(os.DirFS(w.dir))
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.store = store
	w.mu.Unlock()
	if w.onReload != nil {
		w.onReload(store)
	}
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

func relevant(event fsnotify.Event) bool {
	if !isDefinitionFile(event.Name) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
