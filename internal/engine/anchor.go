package engine

// Anchor is one horizontal or vertical divider. It knows its endpoints —
// two perpendicular anchors whose positions bound its extent — and the
// ordered items it separates on each side. Anchors are never referenced by
// Go pointer outside the owning Layout's arena: From/To/side-list entries
// are ids, not owning handles (SPEC_FULL.md §9 "Cyclic graph").
type Anchor struct {
	ID       AnchorID
	Axis     Axis
	Kind     AnchorKind
	Position int

	FromID AnchorID
	ToID   AnchorID

	Side1 []ItemID
	Side2 []ItemID

	// Follows is the id of another anchor this one mirrors, or "" if it
	// leads. A following anchor's visible separator is hidden and its
	// position tracks the followed anchor's.
	Follows AnchorID

	posPercent float64
}

func newAnchor(axis Axis, kind AnchorKind) *Anchor {
	return &Anchor{ID: newAnchorID(), Axis: axis, Kind: kind}
}

// Thickness returns the anchor's footprint along its own axis: the static
// border thickness for static anchors, the separator thickness for
// dynamic ones.
func (a *Anchor) Thickness(l *Layout) int {
	if a.Kind.IsStatic() {
		return l.staticThickness
	}
	return l.sepThickness
}

// sideList returns the anchor's item list for side, by reference so
// callers can mutate it in place.
func (a *Anchor) sideList(side Side) *[]ItemID {
	if side == Side1 {
		return &a.Side1
	}
	return &a.Side2
}

func (a *Anchor) addSide(side Side, id ItemID) {
	list := a.sideList(side)
	for _, existing := range *list {
		if existing == id {
			return
		}
	}
	*list = append(*list, id)
}

func (a *Anchor) removeSide(side Side, id ItemID) {
	list := a.sideList(side)
	out := (*list)[:0]
	for _, existing := range *list {
		if existing != id {
			out = append(out, existing)
		}
	}
	*list = out
}

// Valid reports whether from != to, both endpoints exist in the arena, and
// neither equals the anchor itself (SPEC_FULL.md §3 invariants).
func (a *Anchor) Valid(l *Layout) bool {
	if a.FromID == "" || a.ToID == "" || a.FromID == a.ToID {
		return false
	}
	if a.FromID == a.ID || a.ToID == a.ID {
		return false
	}
	if _, ok := l.anchors[a.FromID]; !ok {
		return false
	}
	if _, ok := l.anchors[a.ToID]; !ok {
		return false
	}
	return true
}

// Unneeded reports whether a dynamic anchor has gone empty on either side
// and must be removed.
func (a *Anchor) Unneeded() bool {
	return a.Kind == KindDynamic && (len(a.Side1) == 0 || len(a.Side2) == 0)
}

// CumulativeMinLength returns the minimum thickness of the container
// measured from this anchor toward side, walking through every item on
// that side and recursing through each item's opposite anchor. Placeholder
// items contribute zero length but still cross to their opposite anchor.
// The total adds this anchor's own thickness plus one thickness per
// anchor encountered on the way to the terminating static anchor
// (SPEC_FULL.md §4.1, Open Question #1).
func (a *Anchor) CumulativeMinLength(l *Layout, side Side) int {
	items := *a.sideList(side)
	if len(items) == 0 {
		return a.Thickness(l)
	}

	best := 0
	for _, id := range items {
		item := l.mustItem(id)
		branchLen := 0
		if !item.Placeholder {
			branchLen = item.MinLength(a.Axis)
		}
		oppositeID := item.Group.OppositeAnchor(a.ID)
		if oppositeID == "" {
			continue
		}
		branch := branchLen + l.mustAnchor(oppositeID).CumulativeMinLength(l, side)
		if branch > best {
			best = branch
		}
	}
	return a.Thickness(l) + best
}

// spaceNeededToward returns the minimum space required beyond this anchor
// out to the terminating static anchor on side, for bounding an anchor's
// legal position during redistribution (SPEC_FULL.md §4.4.2). Per rectOf,
// an item's edge on its low-side anchor starts at that anchor's own
// Position+Thickness, while its edge on its high-side anchor stops right
// at that anchor's bare Position. So which anchor's thickness a branch
// must charge depends on which side of a.ID the branch's items sit on:
//
//   - Side1: a bounds these items from their high side, so each hop charges
//     the opposite (low-side) anchor's own thickness, walking further
//     toward the low end.
//   - Side2: a bounds these items from their low side, so a's own
//     thickness is charged once per level (on a itself, then again on each
//     anchor met further toward the high end), matching
//     CumulativeMinLength's self-charging walk.
func (a *Anchor) spaceNeededToward(l *Layout, side Side) int {
	items := *a.sideList(side)
	if len(items) == 0 {
		return 0
	}
	best := 0
	for _, id := range items {
		item := l.mustItem(id)
		branchLen := 0
		if !item.Placeholder {
			branchLen = item.MinLength(a.Axis)
		}
		oppositeID := item.Group.OppositeAnchor(a.ID)
		if oppositeID == "" {
			continue
		}
		opposite := l.mustAnchor(oppositeID)

		var branch int
		if side == Side1 {
			branch = branchLen + opposite.Thickness(l) + opposite.spaceNeededToward(l, side)
		} else {
			branch = branchLen + opposite.spaceNeededToward(l, side)
		}
		if branch > best {
			best = branch
		}
	}
	if side == Side2 {
		return a.Thickness(l) + best
	}
	return best
}

// SmallestAvailableItemSqueeze returns the minimum over side's items of
// (current length - minimum length): how far this anchor may move toward
// side without violating any of those items' minimum sizes.
func (a *Anchor) SmallestAvailableItemSqueeze(l *Layout, side Side) int {
	items := *a.sideList(side)
	if len(items) == 0 {
		return 0
	}
	squeeze := -1
	for _, id := range items {
		item := l.mustItem(id)
		available := item.Length(a.Axis) - item.MinLength(a.Axis)
		if squeeze == -1 || available < squeeze {
			squeeze = available
		}
	}
	if squeeze < 0 {
		return 0
	}
	return squeeze
}

// SetPosition moves the anchor to p, clamped so neither side's items are
// squeezed below their minimum size. The cached position-percentage is
// refreshed unless the caller passes DontRecalculatePercentage or the
// layout is mid-redistribute. redistribute itself never calls SetPosition:
// it writes Position directly and only reads the cache.
func (a *Anchor) SetPosition(l *Layout, p int, opts SetPositionOptions) {
	if a.Kind.IsStatic() {
		return
	}
	minPos := a.Position - a.SmallestAvailableItemSqueeze(l, Side1)
	maxPos := a.Position + a.SmallestAvailableItemSqueeze(l, Side2)
	if p < minPos {
		p = minPos
	}
	if p > maxPos {
		p = maxPos
	}
	a.Position = p
	if !opts.DontRecalculatePercentage && !l.resizing {
		a.posPercent = a.percentOf(l)
	}
}

func (a *Anchor) percentOf(l *Layout) float64 {
	length := l.size.Length(a.Axis)
	if length == 0 {
		return 0
	}
	return float64(a.Position) / float64(length)
}

// SetFollows makes a mirror the position of other, hiding a's own visible
// separator. Rejected (no mutation) if it would create a follower cycle.
func (a *Anchor) SetFollows(l *Layout, otherID AnchorID) error {
	if otherID == a.ID {
		return ErrFollowerCycle
	}
	for cur := otherID; cur != ""; {
		next := l.mustAnchor(cur)
		if next.Follows == a.ID {
			return ErrFollowerCycle
		}
		cur = next.Follows
	}
	a.Follows = otherID
	return nil
}

// consume transfers other's items onto a and deletes other once it has
// nothing left, redirecting any follower of other to follow a instead. If
// side is nil both sides are transferred; otherwise only the given side.
func (l *Layout) consume(a *Anchor, other *Anchor, side *Side) {
	sides := []Side{Side1, Side2}
	if side != nil {
		sides = []Side{*side}
	}
	for _, s := range sides {
		for _, id := range *other.sideList(s) {
			item := l.mustItem(id)
			item.Group.SetAnchor(a.ID, other.Axis, sideSlotFor(item.Group, other.ID))
			a.addSide(s, id)
		}
		*other.sideList(s) = nil
	}
	for _, follower := range l.anchors {
		if follower.Follows == other.ID {
			follower.Follows = a.ID
		}
	}
	if other.Unneeded() || (len(other.Side1) == 0 && len(other.Side2) == 0) {
		delete(l.anchors, other.ID)
	}
}

// sideSlotFor reports which axis/side slot of g is currently occupied by
// anchor id, so callers can reassign it via AnchorGroup.SetAnchor.
func sideSlotFor(g AnchorGroup, id AnchorID) Side {
	if g.Left == id || g.Top == id {
		return Side1
	}
	return Side2
}

// createFrom produces a new dynamic anchor on other's axis, bounded by
// fromID/toID — the target group's own live perpendicular anchors, not
// other's endpoints, which may already be stale by the time other is
// split again. Grounded on AnchorGroup::createAnchorFrom in the original,
// which sets the new anchor's from/to from the calling group's current
// top/bottom (or left/right), never from the donor anchor's own fields.
// If relativeTo is non-empty, only that item migrates from other to the
// new anchor; otherwise all of other's items on facingSide migrate.
func (l *Layout) createFrom(other *Anchor, facingSide Side, relativeTo ItemID, fromID, toID AnchorID) *Anchor {
	na := newAnchor(other.Axis, KindDynamic)
	na.FromID = fromID
	na.ToID = toID
	na.posPercent = other.posPercent
	l.anchors[na.ID] = na

	src := other.sideList(facingSide)
	var migrating, staying []ItemID
	for _, id := range *src {
		if relativeTo == "" || id == relativeTo {
			migrating = append(migrating, id)
		} else {
			staying = append(staying, id)
		}
	}
	*src = staying
	*na.sideList(facingSide) = migrating

	l.caps.createSeparator(na.Axis)
	return na
}
