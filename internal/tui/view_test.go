package tui

import (
	"strings"
	"testing"

	"github.com/treykane/multisplitter/internal/engine"
)

func TestGridDrawItemBorders(t *testing.T) {
	g := newGrid(10, 5)
	it := &engine.Item{FrameKey: "a", Rect: engine.Rect{X: 0, Y: 0, W: 10, H: 5}}
	drawItem(g, it, false)

	if g.cells[0][0] != runeTopLeft {
		t.Fatalf("top-left corner = %q, want %q", g.cells[0][0], runeTopLeft)
	}
	if g.cells[0][9] != runeTopRight {
		t.Fatalf("top-right corner = %q, want %q", g.cells[0][9], runeTopRight)
	}
	if g.cells[4][0] != runeBottomLeft {
		t.Fatalf("bottom-left corner = %q, want %q", g.cells[4][0], runeBottomLeft)
	}
	if g.cells[2][0] != runeVertical {
		t.Fatalf("left edge mid-row = %q, want %q", g.cells[2][0], runeVertical)
	}
}

func TestGridDrawItemLabelCentered(t *testing.T) {
	g := newGrid(12, 3)
	it := &engine.Item{FrameKey: "left", Rect: engine.Rect{X: 0, Y: 0, W: 12, H: 3}}
	drawItem(g, it, false)

	row := string(g.cells[1])
	if !strings.Contains(row, "left") {
		t.Fatalf("row %q does not contain label", row)
	}
}

func TestGridDrawItemPlaceholderLabel(t *testing.T) {
	g := newGrid(20, 3)
	it := &engine.Item{FrameKey: "gone", Placeholder: true, Rect: engine.Rect{X: 0, Y: 0, W: 20, H: 3}}
	drawItem(g, it, false)

	row := string(g.cells[1])
	if !strings.Contains(row, "placeholder") {
		t.Fatalf("row %q does not show placeholder label", row)
	}
}

func TestGridDrawItemSelectedUsesSelectedBorderKind(t *testing.T) {
	g := newGrid(10, 5)
	it := &engine.Item{FrameKey: "a", Rect: engine.Rect{X: 0, Y: 0, W: 10, H: 5}}
	drawItem(g, it, true)

	if g.kinds[0][0] != cellSelectedBorder {
		t.Fatalf("corner kind = %v, want cellSelectedBorder", g.kinds[0][0])
	}
}

func TestModelMoveCursorWraps(t *testing.T) {
	m := &Model{order: []string{"a", "b", "c"}}
	m.moveCursor(1)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m.moveCursor(-2)
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (wrapped)", m.cursor)
	}
}

func TestModelMoveCursorEmptyOrder(t *testing.T) {
	m := &Model{}
	m.moveCursor(1)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 for empty order", m.cursor)
	}
}
