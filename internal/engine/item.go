package engine

// Item is one cell: its current geometry, its minimum size, its bounding
// AnchorGroup, its frame (or placeholder state), and its reference count.
// A placeholder item has no frame but keeps its anchor group and a
// (0, 0) minimum size so surrounding anchors can collapse around it.
type Item struct {
	ID      ItemID
	Group   AnchorGroup
	Rect    Rect
	MinSize Size

	Frame    Frame
	FrameKey string
	Title    string

	Placeholder bool
	RefCount    int
}

// Length returns the item's current extent along axis.
func (it *Item) Length(axis Axis) int { return it.Rect.Size().Length(axis) }

// MinLength returns the item's minimum extent along axis; always zero for
// a placeholder regardless of the stored MinSize.
func (it *Item) MinLength(axis Axis) int {
	if it.Placeholder {
		return 0
	}
	return it.MinSize.Length(axis)
}

// Commit applies the item's current rectangle to its attached frame; a
// no-op for placeholders.
func (it *Item) Commit(caps Capabilities) {
	if it.Placeholder {
		return
	}
	caps.notifyGeometry(it.FrameKey, it.Rect)
	if it.Frame != nil {
		it.Frame.SetGeometry(it.Rect)
	}
}

// SetPos sets one edge of the item's rectangle directly, preserving the
// opposite edge.
func (it *Item) SetPos(value int, axis Axis, side Side) {
	switch {
	case axis == Vertical && side == Side1:
		it.Rect.W += it.Rect.X - value
		it.Rect.X = value
	case axis == Vertical && side == Side2:
		it.Rect.W = value - it.Rect.X
	case axis == Horizontal && side == Side1:
		it.Rect.H += it.Rect.Y - value
		it.Rect.Y = value
	default:
		it.Rect.H = value - it.Rect.Y
	}
}

// Ref increments the item's placeholder reference count; each dock
// widget "occupying" a placeholder holds one reference.
func (it *Item) Ref() { it.RefCount++ }

// Unref decrements the reference count, floored at zero.
func (it *Item) Unref() {
	if it.RefCount > 0 {
		it.RefCount--
	}
}

// effectiveMinSize computes the minimum size a live item must honor: the
// greater of the layout's hard floor and the frame's own hint. Placeholders
// always report zero.
func effectiveMinSize(hardFloor Size, hint Size) Size {
	return Size{
		W: maxInt(hardFloor.W, hint.W),
		H: maxInt(hardFloor.H, hint.H),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
