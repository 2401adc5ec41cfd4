package engine

// AnchorGroup is a value record of the four anchors bounding exactly one
// cell. It avoids a cell-to-neighbor graph: each cell only knows its four
// boundaries, and all topology queries walk via anchors, which keeps the
// arrangement planar by construction (SPEC_FULL.md §4.2 rationale).
type AnchorGroup struct {
	Left, Top, Right, Bottom AnchorID
}

// IsValid reports whether all four boundaries are set.
func (g AnchorGroup) IsValid() bool {
	return g.Left != "" && g.Top != "" && g.Right != "" && g.Bottom != ""
}

// AnchorAtSide returns the anchor bounding the group on the given side of
// the given axis: Side1/Vertical is Left, Side2/Horizontal is Bottom, etc.
func (g AnchorGroup) AnchorAtSide(side Side, axis Axis) AnchorID {
	if axis == Vertical {
		if side == Side1 {
			return g.Left
		}
		return g.Right
	}
	if side == Side1 {
		return g.Top
	}
	return g.Bottom
}

// SetAnchor assigns the anchor bounding the group at the given axis/side.
func (g *AnchorGroup) SetAnchor(id AnchorID, axis Axis, side Side) {
	switch {
	case axis == Vertical && side == Side1:
		g.Left = id
	case axis == Vertical && side == Side2:
		g.Right = id
	case axis == Horizontal && side == Side1:
		g.Top = id
	default:
		g.Bottom = id
	}
}

// OppositeAnchor returns the anchor on the other end of the same axis as a,
// e.g. the group's Right anchor if a is its Left. Returns "" if a is not one
// of the group's four boundaries.
func (g AnchorGroup) OppositeAnchor(a AnchorID) AnchorID {
	switch a {
	case g.Left:
		return g.Right
	case g.Right:
		return g.Left
	case g.Top:
		return g.Bottom
	case g.Bottom:
		return g.Top
	default:
		return ""
	}
}

// rectOf derives the group's content rectangle from its four anchors'
// positions and thicknesses: each edge starts immediately after the
// bounding anchor's own thickness (SPEC_FULL.md §3, "item's rectangle
// equals rect_of(anchor_group) modulo separator thickness").
func (l *Layout) rectOf(g AnchorGroup) Rect {
	left := l.mustAnchor(g.Left)
	top := l.mustAnchor(g.Top)
	right := l.mustAnchor(g.Right)
	bottom := l.mustAnchor(g.Bottom)

	x := left.Position + left.Thickness(l)
	y := top.Position + top.Thickness(l)
	return Rect{
		X: x,
		Y: y,
		W: right.Position - x,
		H: bottom.Position - y,
	}
}

// addItem registers item into the four anchors bounding g: an item is
// added as a side-2 member of its left/top anchors and a side-1 member of
// its right/bottom anchors (SPEC_FULL.md §4.2).
func (l *Layout) addItem(g AnchorGroup, id ItemID) {
	l.mustAnchor(g.Left).addSide(Side2, id)
	l.mustAnchor(g.Top).addSide(Side2, id)
	l.mustAnchor(g.Right).addSide(Side1, id)
	l.mustAnchor(g.Bottom).addSide(Side1, id)
}

// removeItem unregisters item from the four anchors bounding g.
func (l *Layout) removeItem(g AnchorGroup, id ItemID) {
	l.mustAnchor(g.Left).removeSide(Side2, id)
	l.mustAnchor(g.Top).removeSide(Side2, id)
	l.mustAnchor(g.Right).removeSide(Side1, id)
	l.mustAnchor(g.Bottom).removeSide(Side1, id)
}
