package engine

// Insert adds frame as a new item. If the layout is empty, location is
// ignored and the frame fills the whole container; a non-nil relativeTo
// still fails with ErrInvalidTarget, since no item is live yet.
// Otherwise location names which side of relativeTo (or, if relativeTo is
// nil, the whole layout) to grow into, and a new dynamic anchor is split
// off the donor anchor on that side (SPEC_FULL.md §4.4.1).
func (l *Layout) Insert(frame Frame, location Location, relativeTo *Item) (*Item, error) {
	if frame == nil {
		return nil, ErrInvalidTarget
	}
	if _, exists := l.frameIndex[frame.FrameKey()]; exists {
		return nil, ErrAlreadyPresent
	}

	var targetItem *Item
	if relativeTo != nil {
		existing, ok := l.items[relativeTo.ID]
		if !ok || existing != relativeTo {
			return nil, ErrInvalidTarget
		}
		targetItem = existing
	}

	minSize := effectiveMinSize(l.hardFloor, frame.MinimumSizeHint())

	var newItem *Item
	if len(l.items) == 0 {
		newItem = &Item{ID: newItemID(), Group: l.outerGroup(), Frame: frame, FrameKey: frame.FrameKey(), MinSize: minSize}
		l.items[newItem.ID] = newItem
		l.addItem(newItem.Group, newItem.ID)
	} else {
		if location == LocationNone {
			return nil, ErrInvalidLocation
		}
		group := l.outerGroup()
		if targetItem != nil {
			group = targetItem.Group
		}

		axis := location.Axis()
		side := location.Side()
		facingSide := side.Opposite()

		donorID := group.AnchorAtSide(side, axis)
		donor := l.mustAnchor(donorID)
		farID := group.AnchorAtSide(facingSide, axis)
		far := l.mustAnchor(farID)

		relID := ItemID("")
		if targetItem != nil {
			relID = targetItem.ID
		}

		perpAxis := axis.Opposite()
		perp1ID := group.AnchorAtSide(Side1, perpAxis)
		perp2ID := group.AnchorAtSide(Side2, perpAxis)
		na := l.createFrom(donor, facingSide, relID, perp1ID, perp2ID)

		for _, id := range *na.sideList(facingSide) {
			migrated := l.mustItem(id)
			migrated.Group.SetAnchor(na.ID, axis, side)
			l.repointPerpendicular(migrated.Group, perpAxis, donorID, na.ID)
		}

		newItem = &Item{ID: newItemID(), Frame: frame, FrameKey: frame.FrameKey(), MinSize: minSize}
		newItem.Group = group
		newItem.Group.SetAnchor(donorID, axis, side)
		newItem.Group.SetAnchor(na.ID, axis, facingSide)

		donor.addSide(facingSide, newItem.ID)
		na.addSide(side, newItem.ID)

		perp1 := l.mustAnchor(perp1ID)
		perp2 := l.mustAnchor(perp2ID)
		perp1.addSide(Side2, newItem.ID)
		perp2.addSide(Side1, newItem.ID)

		l.items[newItem.ID] = newItem
		l.positionNewAnchor(na, donor, far, side)
	}

	l.frameIndex[frame.FrameKey()] = newItem.ID
	l.recomputeMinSize()
	l.redistribute()
	if frame != nil {
		frame.SetVisible(true)
	}
	return newItem, nil
}

// InsertPlaceholder behaves like Insert but creates a placeholder item with
// no attached frame, remembered under frameKey for a later Restore.
func (l *Layout) InsertPlaceholder(frameKey string, location Location, relativeTo *Item) (*Item, error) {
	ph := &placeholderFrame{key: frameKey}
	item, err := l.Insert(ph, location, relativeTo)
	if err != nil {
		return nil, err
	}
	item.Placeholder = true
	item.Frame = nil
	item.MinSize = Size{}
	l.recomputeMinSize()
	l.redistribute()
	return item, nil
}

// placeholderFrame is a minimal Frame used only to carry a FrameKey through
// Insert when no real frame exists yet.
type placeholderFrame struct{ key string }

func (p *placeholderFrame) FrameKey() string            { return p.key }
func (p *placeholderFrame) MinimumSizeHint() Size       { return Size{} }
func (p *placeholderFrame) SetGeometry(Rect)            {}
func (p *placeholderFrame) SetVisible(bool)             {}

// repointPerpendicular redirects group's two boundary anchors on perpAxis
// away from oldID to newID wherever they still reference it, reflecting
// that group's edge on the split axis moved from the donor to the
// freshly created anchor. Only anchors whose extent actually abutted the
// donor are touched — checking each of FromID/ToID individually, rather
// than overwriting unconditionally, is what limits the repointing to the
// segment that changed (SPEC_FULL.md §4.4.1 step 5).
func (l *Layout) repointPerpendicular(group AnchorGroup, perpAxis Axis, oldID, newID AnchorID) {
	for _, side := range [2]Side{Side1, Side2} {
		p := l.mustAnchor(group.AnchorAtSide(side, perpAxis))
		if p.Kind.IsStatic() {
			// The outer border always spans corner to corner; it is never
			// subdivided, so its endpoints never change.
			continue
		}
		if p.FromID == oldID {
			p.FromID = newID
		}
		if p.ToID == oldID {
			p.ToID = newID
		}
	}
}

// positionNewAnchor gives a freshly split anchor a reasonable initial
// position, splitting the available run between donor and far evenly. The
// exact pixel choice barely matters: the immediately following redistribute
// pass re-derives every position from the cached percentage.
func (l *Layout) positionNewAnchor(na, donor, far *Anchor, side Side) {
	avail := far.Position - donor.Position
	if avail < 0 {
		avail = -avail
	}
	avail -= donor.Thickness(l) + na.Thickness(l)
	if avail < 0 {
		avail = 0
	}
	half := avail / 2
	if side == Side1 {
		// donor is the low-side boundary; the new item takes the half
		// nearest it, and na sits past that share, toward far.
		na.Position = donor.Position + donor.Thickness(l) + half
	} else {
		// donor is the high-side boundary; the new item takes the half
		// nearest it, and na sits before that share, toward far.
		na.Position = donor.Position - half - na.Thickness(l)
	}
	na.posPercent = na.percentOf(l)
}
