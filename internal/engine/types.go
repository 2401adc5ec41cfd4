// Package engine implements the MultiSplitter anchor-graph layout engine:
// a recursive, non-uniform splitter that partitions a rectangle into
// disjoint cells (Items) separated by draggable or static dividers
// (Anchors). See the repository's SPEC_FULL.md for the full design.
package engine

import "fmt"

// Axis is the orientation of an Anchor: the line it draws runs along its
// own axis, and it moves along the perpendicular (normal) axis.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Opposite returns the other axis.
func (a Axis) Opposite() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// Side distinguishes the two sides of an Anchor: Side1 is left/top,
// Side2 is right/bottom.
type Side int

const (
	Side1 Side = iota
	Side2
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// AnchorKind distinguishes the four immovable container borders from the
// movable dividers introduced by splits.
type AnchorKind int

const (
	KindDynamic AnchorKind = iota
	KindStaticLeft
	KindStaticTop
	KindStaticRight
	KindStaticBottom
)

// IsStatic reports whether the anchor is one of the four container
// borders, which never move and are never removed while the Layout lives.
func (k AnchorKind) IsStatic() bool { return k != KindDynamic }

// Location is the cardinal position at which a new Item is inserted,
// relative either to the Layout's content rectangle or to an existing Item.
type Location int

const (
	// LocationNone is the zero value. Insert accepts it only for the first
	// item of an empty layout and rejects it with ErrInvalidLocation
	// otherwise.
	LocationNone Location = iota
	LocationLeft
	LocationTop
	LocationRight
	LocationBottom
)

func (l Location) String() string {
	switch l {
	case LocationLeft:
		return "left"
	case LocationTop:
		return "top"
	case LocationRight:
		return "right"
	case LocationBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Axis returns the axis of the anchor that would be created by inserting
// at this Location: a left/right split introduces a vertical anchor,
// a top/bottom split introduces a horizontal one.
func (l Location) Axis() Axis {
	if l == LocationLeft || l == LocationRight {
		return Vertical
	}
	return Horizontal
}

// Side reports which side of the target AnchorGroup the new Item lands
// on: Left/Top land on Side1, Right/Bottom land on Side2.
func (l Location) Side() Side {
	if l == LocationLeft || l == LocationTop {
		return Side1
	}
	return Side2
}

// Point is an integer coordinate in the Layout's container space.
type Point struct {
	X, Y int
}

// Size is an integer width/height pair.
type Size struct {
	W, H int
}

// Length returns the size's extent along axis (width for Vertical,
// height for Horizontal — a vertical anchor's normal axis is width).
func (s Size) Length(axis Axis) int {
	if axis == Vertical {
		return s.W
	}
	return s.H
}

// Rect is an integer rectangle in the Layout's container space.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }
func (r Rect) Size() Size  { return Size{W: r.W, H: r.H} }

// Contains reports whether p lies within the rectangle, treating the
// rectangle as half-open ([X, Right) x [Y, Bottom)).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// AnchorID identifies an Anchor within a Layout's arena.
type AnchorID string

// ItemID identifies an Item within a Layout's arena.
type ItemID string

// SetPositionOptions controls SetPosition's side effects.
type SetPositionOptions struct {
	// DontRecalculatePercentage suppresses updating the cached
	// position-percentage. No caller in the engine sets it; redistribute
	// keeps the cache intact by writing positions directly instead.
	DontRecalculatePercentage bool
}

// Frame is the opaque external content slot the engine positions. The
// engine never dereferences frame internals beyond this interface; the
// concrete widget/window is owned and destroyed by the caller, and its
// destruction must be signaled to the Layout (via Remove) before the
// frame value itself is freed.
type Frame interface {
	// FrameKey returns a stable identifier for this frame, used as the
	// placeholder registry's key and as ItemRecord.FrameKey on persist.
	FrameKey() string
	// MinimumSizeHint returns the frame's preferred minimum size.
	MinimumSizeHint() Size
	// SetGeometry is called by Commit with the frame's final rectangle.
	SetGeometry(rect Rect)
	// SetVisible is called when the frame's item becomes a placeholder
	// or is restored from one.
	SetVisible(visible bool)
}

// Capabilities is the small set of callbacks a caller supplies instead of
// the widget-factory/dynamic-dispatch abstraction the original multisplitter
// uses to stay toolkit-agnostic (see SPEC_FULL.md §9 "Dynamic dispatch").
type Capabilities struct {
	// CreateSeparator is called once per new dynamic Anchor, so a caller
	// can create whatever draggable-divider widget it wants. May be nil.
	CreateSeparator func(axis Axis)
	// NotifyGeometry is called by Commit for every live Item whose frame
	// key is non-empty. May be nil.
	NotifyGeometry func(frameKey string, rect Rect)
	// NotifyVisibility is called on placeholder transitions in either
	// direction. May be nil.
	NotifyVisibility func(frameKey string, visible bool)
}

func (c Capabilities) createSeparator(axis Axis) {
	if c.CreateSeparator != nil {
		c.CreateSeparator(axis)
	}
}

func (c Capabilities) notifyGeometry(frameKey string, rect Rect) {
	if frameKey != "" && c.NotifyGeometry != nil {
		c.NotifyGeometry(frameKey, rect)
	}
}

func (c Capabilities) notifyVisibility(frameKey string, visible bool) {
	if frameKey != "" && c.NotifyVisibility != nil {
		c.NotifyVisibility(frameKey, visible)
	}
}
