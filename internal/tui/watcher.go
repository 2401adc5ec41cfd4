package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/treykane/multisplitter/internal/engine"
	"github.com/treykane/multisplitter/internal/persist"
)

// watcher wraps an fsnotify.Watcher scoped to the directory holding a
// persisted layout snapshot, so edits made to that file from outside the
// demo (another instance, a hand edit) are picked up live.
type watcher struct {
	fsw            *fsnotify.Watcher
	path           string
	selfWriteUntil time.Time
}

// externalChangeMsg carries the result of reloading a layout snapshot after
// a filesystem event, or the error encountered doing so.
type externalChangeMsg struct {
	rec engine.LayoutRecord
	err error
}

// autosaveMsg fires on autosaveInterval to snapshot the running layout.
type autosaveMsg struct{}

func newWatcher(path string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &watcher{fsw: fsw, path: path}, nil
}

func (w *watcher) close() { w.fsw.Close() }

// waitForChange blocks until a write or create event touches the watched
// path, debounces the burst an editor save typically produces, and reloads
// the snapshot. A save this process itself just made is suppressed via
// selfWriteUntil so it is never reported back as an external change.
func (w *watcher) waitForChange() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fsw.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != filepath.Base(w.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if time.Now().Before(w.selfWriteUntil) {
					continue
				}
				time.Sleep(WatchDebounce)
				drainEvents(w.fsw.Events)
				rec, err := persist.Load(w.path)
				return externalChangeMsg{rec: rec, err: err}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return nil
				}
				return externalChangeMsg{err: err}
			}
		}
	}
}

func drainEvents(events <-chan fsnotify.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}

// toggleWatch starts or stops the filesystem watcher for the layout path.
func (m *Model) toggleWatch() tea.Cmd {
	if m.watching {
		m.watcher.close()
		m.watcher = nil
		m.watching = false
		m.status = "watch stopped"
		return nil
	}

	w, err := newWatcher(m.layoutPath)
	if err != nil {
		m.status = fmt.Sprintf("watch failed: %v", err)
		return nil
	}
	m.watcher = w
	m.watching = true
	m.status = fmt.Sprintf("watching %s", m.layoutPath)
	return m.watcher.waitForChange()
}

// handleExternalChange reloads the layout after a filesystem event and
// re-arms the watcher for the next one.
func (m *Model) handleExternalChange(msg externalChangeMsg) (tea.Model, tea.Cmd) {
	if !m.watching {
		return m, nil
	}
	if msg.err != nil {
		m.status = fmt.Sprintf("watch reload failed: %v", msg.err)
		return m, m.watcher.waitForChange()
	}

	if err := m.applyRecord(msg.rec); err != nil {
		m.status = fmt.Sprintf("watch reload failed: %v", err)
		return m, m.watcher.waitForChange()
	}
	m.status = "reloaded from external change"
	return m, m.watcher.waitForChange()
}

// persist saves rec to the configured path, marking a self-write window so
// the watcher does not treat this process's own save as an external change.
func (m *Model) persist(rec engine.LayoutRecord) error {
	if m.watcher != nil {
		m.watcher.selfWriteUntil = time.Now().Add(2 * WatchDebounce)
	}
	return persist.Save(m.layoutPath, rec)
}

func tickAutosave() tea.Cmd {
	return tea.Tick(autosaveInterval, func(time.Time) tea.Msg { return autosaveMsg{} })
}
