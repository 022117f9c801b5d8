package shaders

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher collects the shader programs whose source files changed on disk
// until the render loop picks them up with Pending.
type Watcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	mu      sync.Mutex
	pending []string
	seen    map[string]bool
}

// Watch starts watching dir for writes to *.vert and *.frag files.
func Watch(dir string, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		w:    fw,
		done: make(chan struct{}),
		seen: make(map[string]bool),
	}
	w.wg.Add(1)
	go w.run(log)
	return w, nil
}

func (w *Watcher) run(log *slog.Logger) {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if name, ok := programName(ev.Name); ok {
				w.add(name)
				log.Debug("shader changed", "program", name, "file", ev.Name)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Warn("shader watcher", "err", err)
		}
	}
}

func (w *Watcher) add(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.seen[name] {
		w.seen[name] = true
		w.pending = append(w.pending, name)
	}
}

// programName maps ".../default.frag" to "default".
func programName(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext != ".vert" && ext != ".frag" {
		return "", false
	}
	return strings.TrimSuffix(filepath.Base(path), ext), true
}

// Pending returns each program changed since the last call once, in the
// order the first change arrived, and never blocks.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := w.pending
	w.pending = nil
	clear(w.seen)
	return names
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.w.Close()
	w.wg.Wait()
	return err
}
