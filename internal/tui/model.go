// Package tui is an interactive demo visualizer for the engine package: it
// drives an engine.Layout with synthetic frames named by the user, renders
// every item's rectangle as a bordered box on a rune grid, and persists the
// layout to disk (SPEC_FULL.md §4.7, "demo visualizer").
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/multisplitter/internal/config"
	"github.com/treykane/multisplitter/internal/engine"
	"github.com/treykane/multisplitter/internal/logging"
	"github.com/treykane/multisplitter/internal/persist"
)

var log = logging.New(logging.ComponentTUI)

// mode controls which input widget, if any, is currently focused.
type mode int

const (
	modeBrowse mode = iota
	modeInsertLocation
	modeInsertName
)

// demoFrame is the engine.Frame implementation the demo creates one of per
// named cell the user inserts. It has no real content; it only remembers
// the geometry and visibility the engine last assigned it.
type demoFrame struct {
	key     string
	minSize engine.Size
	rect    engine.Rect
	visible bool
}

func (f *demoFrame) FrameKey() string             { return f.key }
func (f *demoFrame) MinimumSizeHint() engine.Size { return f.minSize }
func (f *demoFrame) SetGeometry(rect engine.Rect) { f.rect = rect }
func (f *demoFrame) SetVisible(visible bool)      { f.visible = visible }

// Model is the Bubble Tea state for the demo visualizer.
type Model struct {
	layout *engine.Layout
	frames map[string]*demoFrame
	order  []string // frame keys in insertion order, for cursor cycling

	cursor int
	mode   mode

	pendingLocation engine.Location
	input           textinput.Model

	status   string
	showHelp bool

	cfg        config.Config
	layoutPath string

	watcher   *watcher
	watching  bool
	autoWatch bool

	width, height int
}

// EnableWatch arms the filesystem watcher as soon as the program starts,
// equivalent to pressing w immediately after launch.
func (m *Model) EnableWatch() { m.autoWatch = true }

// New builds a Model from loaded configuration. If a layout snapshot exists
// at cfg.LayoutPath it is restored; otherwise a fresh, empty Layout is
// created at the configured container size.
func New(cfg config.Config) (*Model, error) {
	in := textinput.New()
	in.Placeholder = "frame name"
	in.CharLimit = 40

	m := &Model{
		frames:     map[string]*demoFrame{},
		input:      in,
		cfg:        cfg,
		layoutPath: cfg.LayoutPath,
		status:     "ready",
	}

	if rec, err := persist.Load(cfg.LayoutPath); err == nil {
		if err := m.restoreFrom(rec); err != nil {
			return nil, fmt.Errorf("tui: restore layout: %w", err)
		}
		m.status = fmt.Sprintf("loaded %s", cfg.LayoutPath)
	} else {
		m.layout = engine.NewLayout(
			engine.Size{W: cfg.ContainerWidth, H: cfg.ContainerHeight},
			m.capabilities(),
			engine.LayoutConfig{
				SeparatorThickness: cfg.SeparatorThickness,
				HardFloor:          demoHardFloor,
			},
			log,
		)
	}

	return m, nil
}

// restoreFrom rebuilds the layout from a persisted record and reattaches a
// fresh demoFrame for each non-placeholder item so the demo can render and
// mutate it again.
func (m *Model) restoreFrom(rec engine.LayoutRecord) error {
	layout, err := engine.Deserialize(rec, m.capabilities(), true, log)
	if err != nil {
		return err
	}
	m.layout = layout

	for _, it := range layout.Items() {
		if it.FrameKey == "" {
			continue
		}
		f := &demoFrame{key: it.FrameKey, minSize: it.MinSize, rect: it.Rect, visible: !it.Placeholder}
		m.frames[f.key] = f
		m.order = append(m.order, f.key)
		if err := layout.AttachFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// capabilities wires the layout's callbacks back onto this model so that
// newly created separators are logged and visibility changes keep the
// tracked demoFrame set consistent with the engine's placeholder state.
func (m *Model) capabilities() engine.Capabilities {
	return engine.Capabilities{
		CreateSeparator: func(axis engine.Axis) {
			log.Debug("separator created", "axis", axis)
		},
		NotifyVisibility: func(frameKey string, visible bool) {
			if f, ok := m.frames[frameKey]; ok {
				f.visible = visible
			}
		},
	}
}

// Init starts the autosave ticker and, if requested via EnableWatch, the
// filesystem watcher on the configured layout path.
func (m *Model) Init() tea.Cmd {
	if m.autoWatch {
		return tea.Batch(tickAutosave(), m.toggleWatch())
	}
	return tickAutosave()
}

// Update is the Bubble Tea update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil
	case externalChangeMsg:
		return m.handleExternalChange(msg)
	case autosaveMsg:
		m.save()
		return m, tickAutosave()
	case tea.KeyMsg:
		switch m.mode {
		case modeInsertLocation:
			return m.handleInsertLocationKey(msg)
		case modeInsertName:
			return m.handleInsertNameKey(msg)
		default:
			return m.handleKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height
	w := maxInt(width, MinContainerWidth)
	h := maxInt(height-StatusRows, MinContainerHeight)
	m.layout.Resize(engine.Size{W: w, H: h})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// selectedFrame returns the demoFrame under the cursor, or nil if there are
// none.
func (m *Model) selectedFrame() *demoFrame {
	if m.cursor < 0 || m.cursor >= len(m.order) {
		return nil
	}
	return m.frames[m.order[m.cursor]]
}

// selectedItem returns the engine item backing the cursor's frame.
func (m *Model) selectedItem() *engine.Item {
	f := m.selectedFrame()
	if f == nil {
		return nil
	}
	for _, it := range m.layout.Items() {
		if it.FrameKey == f.key {
			return it
		}
	}
	return nil
}
