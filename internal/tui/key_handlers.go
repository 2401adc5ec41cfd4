package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/treykane/multisplitter/internal/engine"
	"github.com/treykane/multisplitter/internal/persist"
)

// handleKey dispatches a key press while in browse mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "up", "left":
		m.moveCursor(-1)
		return m, nil
	case "down", "right":
		m.moveCursor(1)
		return m, nil
	case "i":
		return m.startInsertLocation()
	case "x", "delete", "backspace":
		m.removeSelected()
		return m, nil
	case "+", "=":
		m.nudgeAnchor(1)
		return m, nil
	case "-", "_":
		m.nudgeAnchor(-1)
		return m, nil
	case "p":
		m.toggleRef()
		return m, nil
	case "r":
		m.restoreSelected()
		return m, nil
	case "s":
		m.runSanity()
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	case "ctrl+r":
		m.reload()
		return m, nil
	case "w":
		return m, m.toggleWatch()
	case "esc":
		m.showHelp = false
		return m, nil
	}
	return m, nil
}

// moveCursor advances the selection by delta, wrapping around.
func (m *Model) moveCursor(delta int) {
	if len(m.order) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + len(m.order)) % len(m.order)
}

// startInsertLocation switches to location-picking mode for a new frame;
// the next arrow key press chooses where it lands.
func (m *Model) startInsertLocation() (tea.Model, tea.Cmd) {
	if m.layout.Count() > 0 && m.selectedFrame() == nil {
		m.status = "select a frame first"
		return m, nil
	}
	m.mode = modeInsertLocation
	m.status = "choose a location with the arrow keys, esc to cancel"
	return m, nil
}

// handleInsertLocationKey reads one arrow key as the split direction and
// advances to the name-entry widget.
func (m *Model) handleInsertLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var loc engine.Location
	switch msg.String() {
	case "up":
		loc = engine.LocationTop
	case "down":
		loc = engine.LocationBottom
	case "left":
		loc = engine.LocationLeft
	case "right":
		loc = engine.LocationRight
	case "esc":
		m.mode = modeBrowse
		m.status = "insert cancelled"
		return m, nil
	default:
		return m, nil
	}

	m.pendingLocation = loc
	m.mode = modeInsertName
	m.input.SetValue("")
	m.input.Focus()
	return m, nil
}

// handleInsertNameKey drives the textinput widget while naming a new frame.
func (m *Model) handleInsertNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = "insert cancelled"
		return m, nil
	case "enter":
		return m.confirmInsert()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// confirmInsert creates a new demoFrame from the pending name and inserts
// it at the previously chosen location, relative to the selected item.
func (m *Model) confirmInsert() (tea.Model, tea.Cmd) {
	name := m.input.Value()
	if name == "" {
		name = "frame-" + uuid.NewString()[:8]
	}
	m.mode = modeBrowse
	m.input.Blur()

	f := &demoFrame{key: name, minSize: demoHardFloor}
	var relativeTo *engine.Item
	if it := m.selectedItem(); it != nil {
		relativeTo = it
	}

	if _, err := m.layout.Insert(f, m.pendingLocation, relativeTo); err != nil {
		m.status = fmt.Sprintf("insert failed: %v", err)
		return m, nil
	}

	m.frames[f.key] = f
	m.order = append(m.order, f.key)
	m.cursor = len(m.order) - 1
	m.status = fmt.Sprintf("inserted %q", f.key)
	return m, nil
}

// removeSelected removes the frame under the cursor. If it has outstanding
// references it becomes a placeholder rather than vanishing from the arena,
// so it stays selectable for a later restore.
func (m *Model) removeSelected() {
	f := m.selectedFrame()
	if f == nil {
		m.status = "nothing to remove"
		return
	}
	becomesPlaceholder := false
	if it := m.selectedItem(); it != nil {
		becomesPlaceholder = it.RefCount > 0
	}

	if err := m.layout.Remove(f); err != nil {
		m.status = fmt.Sprintf("remove failed: %v", err)
		return
	}

	if becomesPlaceholder {
		m.status = fmt.Sprintf("%q removed, kept as placeholder (press r to restore)", f.key)
		return
	}

	delete(m.frames, f.key)
	for i, key := range m.order {
		if key == f.key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.cursor >= len(m.order) {
		m.cursor = len(m.order) - 1
	}
	m.status = fmt.Sprintf("removed %q", f.key)
}

// toggleRef flips the selected item's reference count between zero and one,
// letting the user exercise the placeholder-vs-delete branch in Remove.
func (m *Model) toggleRef() {
	it := m.selectedItem()
	if it == nil {
		m.status = "nothing selected"
		return
	}
	if it.RefCount > 0 {
		it.Unref()
		m.status = fmt.Sprintf("%q now unreferenced", it.FrameKey)
		return
	}
	it.Ref()
	m.status = fmt.Sprintf("%q now referenced (removal becomes a placeholder)", it.FrameKey)
}

// restoreSelected re-attaches the selected frame to its placeholder item, if
// the frame was previously removed with an outstanding reference.
func (m *Model) restoreSelected() {
	f := m.selectedFrame()
	if f == nil {
		m.status = "nothing to restore"
		return
	}
	if _, ok := m.layout.Restore(f); !ok {
		m.status = fmt.Sprintf("%q has no placeholder to restore", f.key)
		return
	}
	m.status = fmt.Sprintf("restored %q", f.key)
}

// nudgeAnchor moves the dynamic anchor nearest the selected item by delta,
// preferring its trailing edges (right, then bottom) before its leading
// ones, clamped by SmallestAvailableItemSqueeze.
func (m *Model) nudgeAnchor(delta int) {
	it := m.selectedItem()
	if it == nil {
		m.status = "nothing selected"
		return
	}
	for _, id := range []engine.AnchorID{it.Group.Right, it.Group.Bottom, it.Group.Left, it.Group.Top} {
		a := m.layout.AnchorByID(id)
		if a == nil || a.Kind != engine.KindDynamic {
			continue
		}
		m.layout.MoveAnchor(id, delta)
		m.status = fmt.Sprintf("nudged anchor by %+d", delta)
		return
	}
	m.status = "no adjustable anchor near the selection"
}

// runSanity checks the layout's structural invariants and reports the
// result in the status line.
func (m *Model) runSanity() {
	report := m.layout.CheckSanity()
	if report.OK() {
		m.status = "sanity: no violations"
		return
	}
	m.status = fmt.Sprintf("sanity: %d violation(s), first: %s", len(report.Violations), report.Violations[0].Message)
}

// save persists the current layout to the configured path.
func (m *Model) save() {
	rec := m.layout.Serialize()
	if err := m.persist(rec); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved to %s", m.layoutPath)
}

// reload discards the in-memory layout and rebuilds it from the configured
// path, picking up any changes made outside the running demo.
func (m *Model) reload() {
	rec, err := persist.Load(m.layoutPath)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	if err := m.applyRecord(rec); err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("reloaded from %s", m.layoutPath)
}

// applyRecord replaces the in-memory layout and frame set with one rebuilt
// from rec, used by both the explicit reload key and the watcher's
// automatic reload.
func (m *Model) applyRecord(rec engine.LayoutRecord) error {
	m.frames = map[string]*demoFrame{}
	m.order = nil
	if err := m.restoreFrom(rec); err != nil {
		return err
	}
	if m.cursor >= len(m.order) {
		m.cursor = len(m.order) - 1
	}
	return nil
}
