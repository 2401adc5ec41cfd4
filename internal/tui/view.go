package tui

import (
	"fmt"
	"strings"

	"github.com/treykane/multisplitter/internal/engine"
)

// View renders the current layout as a rune grid with a status line below
// it. Lipgloss's flow-based layout has no good primitive for placing many
// independently-sized, absolutely-positioned rectangles, so each item's
// border and centered title are drawn directly onto a 2D buffer sized to
// the engine's container instead.
func (m *Model) View() string {
	if m.layout == nil {
		return "loading...\n"
	}

	size := m.layout.Size()
	grid := newGrid(size.W, size.H)

	selected := m.selectedFrame()
	for _, it := range m.layout.Items() {
		drawItem(grid, it, selected != nil && it.FrameKey == selected.key)
	}

	var b strings.Builder
	b.WriteString(grid.render())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	switch m.mode {
	case modeInsertLocation:
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("location: arrow key to pick, esc to cancel"))
	case modeInsertName:
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("new frame name: ") + m.input.View())
	}
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(helpText())
	}
	return b.String()
}

type grid struct {
	w, h  int
	cells [][]rune
	kinds [][]cellKind
}

func newGrid(w, h int) *grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]rune, h)
	kinds := make([][]cellKind, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		kinds[y] = make([]cellKind, w)
		for x := range cells[y] {
			cells[y][x] = runeSpace
		}
	}
	return &grid{w: w, h: h, cells: cells, kinds: kinds}
}

func (g *grid) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = r
	g.kinds[y][x] = kind
}

// render walks each row and groups consecutive cells sharing a cellKind
// into one styled segment, so borders, titles, and placeholder labels each
// pick up their own color without per-rune escape codes.
func (g *grid) render() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteString(renderRow(g.cells[y], g.kinds[y]))
		if y < g.h-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRow(cells []rune, kinds []cellKind) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && kinds[i] == kinds[start] {
			continue
		}
		b.WriteString(kinds[start].style().Render(string(cells[start:i])))
		start = i
	}
	return b.String()
}

// drawItem paints one item's border and centered title onto the grid.
// Placeholders keep the same border and show a "(placeholder)" label
// instead of their frame key.
func drawItem(g *grid, it *engine.Item, selected bool) {
	r := it.Rect
	if r.W <= 0 || r.H <= 0 {
		return
	}

	borderKind := cellPlain
	if selected {
		borderKind = cellSelectedBorder
	}

	for x := r.X; x < r.Right(); x++ {
		g.set(x, r.Y, runeHorizontal, borderKind)
		g.set(x, r.Bottom()-1, runeHorizontal, borderKind)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		g.set(r.X, y, runeVertical, borderKind)
		g.set(r.Right()-1, y, runeVertical, borderKind)
	}
	g.set(r.X, r.Y, runeTopLeft, borderKind)
	g.set(r.Right()-1, r.Y, runeTopRight, borderKind)
	g.set(r.X, r.Bottom()-1, runeBottomLeft, borderKind)
	g.set(r.Right()-1, r.Bottom()-1, runeBottomRight, borderKind)

	label := it.FrameKey
	labelKind := cellTitle
	if it.Placeholder {
		label = "(placeholder)"
		labelKind = cellPlaceholderLabel
	}
	if selected {
		label = "[" + label + "]"
	}
	drawCentered(g, r, label, labelKind)
}

func drawCentered(g *grid, r engine.Rect, label string, kind cellKind) {
	if r.H < 3 || r.W < 3 {
		return
	}
	row := r.Y + r.H/2
	maxLen := r.W - 2
	if len(label) > maxLen {
		label = label[:maxLen]
	}
	startX := r.X + 1 + (r.W-2-len(label))/2
	for i, ch := range label {
		g.set(startX+i, row, ch, kind)
	}
}

func (m *Model) statusLine() string {
	counts := fmt.Sprintf("%d items (%d placeholders)", m.layout.Count(), m.layout.PlaceholderCount())
	watch := ""
	if m.watching {
		watch = " · watching"
	}
	line := fmt.Sprintf("%s · %s%s", m.status, counts, watch)
	if strings.Contains(m.status, "failed") {
		return errorStatus.Render(line)
	}
	return statusStyle.Render(line)
}

func helpText() string {
	lines := []string{
		"i  insert (pick a location with an arrow key, then name it)",
		"arrow keys  move selection       x  remove selected",
		"+/-  nudge the nearest anchor    p  toggle placeholder ref",
		"s  check sanity                  r  restore placeholder",
		"ctrl+s  save                     ctrl+r  reload from disk",
		"w  toggle file watch             ?  toggle this help       q  quit",
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}
