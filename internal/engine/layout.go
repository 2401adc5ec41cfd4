package engine

import (
	"log/slog"
	"sort"
)

// LayoutConfig holds the constants a Layout is built with: the hard floor
// a live item's minimum size is clamped to, and the pixel thickness of
// static borders and dynamic separators.
type LayoutConfig struct {
	SeparatorThickness int
	StaticThickness    int
	HardFloor          Size
}

func (c LayoutConfig) withDefaults() LayoutConfig {
	if c.SeparatorThickness <= 0 {
		c.SeparatorThickness = 1
	}
	if c.StaticThickness <= 0 {
		c.StaticThickness = 1
	}
	if c.HardFloor.W <= 0 && c.HardFloor.H <= 0 {
		c.HardFloor = Size{W: 80, H: 90}
	}
	return c
}

// Layout owns every Anchor and Item in one container. It is the only
// mutator of the anchor graph; Anchor and Item methods that need arena
// lookups take a *Layout explicitly rather than holding pointers to each
// other, so the graph's cyclic references are all ids (SPEC_FULL.md §9).
type Layout struct {
	size    Size
	minSize Size

	staticLeftID, staticTopID, staticRightID, staticBottomID AnchorID

	anchors    map[AnchorID]*Anchor
	items      map[ItemID]*Item
	frameIndex map[string]ItemID

	resizing bool

	sepThickness    int
	staticThickness int
	hardFloor       Size

	caps Capabilities
	log  *slog.Logger
}

// NewLayout creates an empty Layout for a container of the given size.
func NewLayout(size Size, caps Capabilities, cfg LayoutConfig, logger *slog.Logger) *Layout {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	l := &Layout{
		size:            size,
		anchors:         map[AnchorID]*Anchor{},
		items:           map[ItemID]*Item{},
		frameIndex:      map[string]ItemID{},
		sepThickness:    cfg.SeparatorThickness,
		staticThickness: cfg.StaticThickness,
		hardFloor:       cfg.HardFloor,
		caps:            caps,
		log:             logger,
	}

	left := newAnchor(Vertical, KindStaticLeft)
	top := newAnchor(Horizontal, KindStaticTop)
	right := newAnchor(Vertical, KindStaticRight)
	bottom := newAnchor(Horizontal, KindStaticBottom)

	left.FromID, left.ToID = top.ID, bottom.ID
	right.FromID, right.ToID = top.ID, bottom.ID
	top.FromID, top.ToID = left.ID, right.ID
	bottom.FromID, bottom.ToID = left.ID, right.ID

	l.anchors[left.ID] = left
	l.anchors[top.ID] = top
	l.anchors[right.ID] = right
	l.anchors[bottom.ID] = bottom

	l.staticLeftID, l.staticTopID, l.staticRightID, l.staticBottomID = left.ID, top.ID, right.ID, bottom.ID
	l.repositionStaticAnchors()
	return l
}

func (l *Layout) mustAnchor(id AnchorID) *Anchor {
	a, ok := l.anchors[id]
	if !ok {
		panic("multisplitter: anchor not found in arena: " + string(id))
	}
	return a
}

func (l *Layout) mustItem(id ItemID) *Item {
	it, ok := l.items[id]
	if !ok {
		panic("multisplitter: item not found in arena: " + string(id))
	}
	return it
}

func (l *Layout) outerGroup() AnchorGroup {
	return AnchorGroup{Left: l.staticLeftID, Top: l.staticTopID, Right: l.staticRightID, Bottom: l.staticBottomID}
}

func (l *Layout) contentRect() Rect { return l.rectOf(l.outerGroup()) }

func (l *Layout) staticBoundsFor(axis Axis) (AnchorID, AnchorID) {
	if axis == Vertical {
		return l.staticLeftID, l.staticRightID
	}
	return l.staticTopID, l.staticBottomID
}

func (l *Layout) repositionStaticAnchors() {
	left := l.mustAnchor(l.staticLeftID)
	top := l.mustAnchor(l.staticTopID)
	right := l.mustAnchor(l.staticRightID)
	bottom := l.mustAnchor(l.staticBottomID)
	left.Position = 0
	top.Position = 0
	right.Position = l.size.W - right.Thickness(l)
	bottom.Position = l.size.H - bottom.Thickness(l)
}

// Size returns the container's current size.
func (l *Layout) Size() Size { return l.size }

// MinimumSize returns the layout's current minimum size, the worst-case
// sum of item minimums and anchor thicknesses along either axis
// (SPEC_FULL.md §4.4.4).
func (l *Layout) MinimumSize() Size { return l.minSize }

// Count returns the total number of items, placeholders included.
func (l *Layout) Count() int { return len(l.items) }

// VisibleCount returns the number of non-placeholder items.
func (l *Layout) VisibleCount() int {
	n := 0
	for _, it := range l.items {
		if !it.Placeholder {
			n++
		}
	}
	return n
}

// PlaceholderCount returns the number of placeholder items.
func (l *Layout) PlaceholderCount() int { return l.Count() - l.VisibleCount() }

// Items returns every item, including placeholders, in arbitrary order.
func (l *Layout) Items() []*Item {
	out := make([]*Item, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it)
	}
	return out
}

// Anchors returns every anchor, static and dynamic, in arbitrary order.
func (l *Layout) Anchors() []*Anchor {
	out := make([]*Anchor, 0, len(l.anchors))
	for _, a := range l.anchors {
		out = append(out, a)
	}
	return out
}

// ItemAt returns the non-placeholder item whose rectangle contains p, or
// nil if none does. This is an intentionally unoptimized linear scan
// (SPEC_FULL.md §4.4.6): cell counts are small.
func (l *Layout) ItemAt(p Point) *Item {
	for _, it := range l.items {
		if !it.Placeholder && it.Rect.Contains(p) {
			return it
		}
	}
	return nil
}

// AnchorsForPos returns the AnchorGroup of the item at p, or the outer
// static group if no item occupies p.
func (l *Layout) AnchorsForPos(p Point) AnchorGroup {
	if it := l.ItemAt(p); it != nil {
		return it.Group
	}
	return l.outerGroup()
}

// AnchorByID returns the anchor with the given id, or nil if none exists.
func (l *Layout) AnchorByID(id AnchorID) *Anchor { return l.anchors[id] }

// MoveAnchor nudges a dynamic anchor by delta along its own axis, clamped
// by SmallestAvailableItemSqueeze so neither side's items go below their
// minimum size, then commits the resulting geometry. A no-op for static
// anchors or unknown ids.
func (l *Layout) MoveAnchor(id AnchorID, delta int) {
	a, ok := l.anchors[id]
	if !ok || a.Kind.IsStatic() {
		return
	}
	a.SetPosition(l, a.Position+delta, SetPositionOptions{})
	l.commitAll()
}

// recomputeMinSize walks both axes' low-static anchors per SPEC_FULL.md
// §4.4.4 and, if the result now exceeds the container, forcibly expands
// the container and repositions the static borders before redistributing.
func (l *Layout) recomputeMinSize() {
	left := l.mustAnchor(l.staticLeftID)
	top := l.mustAnchor(l.staticTopID)
	l.minSize = Size{
		W: left.CumulativeMinLength(l, Side2),
		H: top.CumulativeMinLength(l, Side2),
	}
	if l.size.W < l.minSize.W || l.size.H < l.minSize.H {
		l.size.W = maxInt(l.size.W, l.minSize.W)
		l.size.H = maxInt(l.size.H, l.minSize.H)
		l.repositionStaticAnchors()
	}
}

// commitAll applies every item's current rectangle to its frame.
func (l *Layout) commitAll() {
	for _, it := range l.items {
		it.Rect = l.rectOf(it.Group)
		it.Commit(l.caps)
	}
}

// Resize changes the container's size, silently clamping to the current
// minimum size, then redistributes.
func (l *Layout) Resize(newSize Size) {
	newSize.W = maxInt(newSize.W, l.minSize.W)
	newSize.H = maxInt(newSize.H, l.minSize.H)
	l.size = newSize
	l.repositionStaticAnchors()
	l.redistribute()
}

// redistribute repositions every dynamic anchor after a structural change
// or resize, one axis at a time, then commits every item's rectangle. A
// resizing flag guards against reentrancy: nested calls (e.g. triggered by
// a Commit callback that itself calls back into the layout) are no-ops,
// per SPEC_FULL.md §5.
func (l *Layout) redistribute() {
	if l.resizing {
		l.log.Debug("redistribute: reentrant call ignored")
		return
	}
	l.resizing = true
	defer func() { l.resizing = false }()

	l.redistributeAxis(Vertical)
	l.redistributeAxis(Horizontal)
	l.commitAll()
}

func (l *Layout) redistributeAxis(axis Axis) {
	lowID, highID := l.staticBoundsFor(axis)
	low := l.mustAnchor(lowID)
	high := l.mustAnchor(highID)

	var dyn []*Anchor
	for _, a := range l.anchors {
		if a.Axis == axis && a.Kind == KindDynamic {
			dyn = append(dyn, a)
		}
	}
	sort.Slice(dyn, func(i, j int) bool { return dyn[i].posPercent < dyn[j].posPercent })

	length := l.size.Length(axis)
	prev := low.Position + low.Thickness(l)
	for _, a := range dyn {
		if a.Follows != "" {
			a.Position = l.mustAnchor(a.Follows).Position
			continue
		}

		target := int(roundHalfAwayFromZero(a.posPercent * float64(length)))
		minPos := a.spaceNeededToward(l, Side1)
		maxPos := high.Position - a.spaceNeededToward(l, Side2)
		if maxPos < minPos {
			maxPos = minPos
		}
		pos := clampInt(target, minPos, maxPos)
		// Excess beyond a neighbor already placed is propagated forward by
		// simply never letting position run backwards across the pass;
		// this keeps positions strictly increasing along the axis without
		// the original's full recursive redistribute_space cascade.
		if pos < prev {
			pos = minInt(prev, maxPos)
		}
		a.Position = pos
		prev = pos + a.Thickness(l)
	}
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int(v + 0.5))
	}
	return float64(int(v - 0.5))
}
