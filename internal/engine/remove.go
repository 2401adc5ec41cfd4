package engine

// Remove detaches frame's item. If the item still has outstanding
// references (RefCount > 0) it becomes a placeholder instead of being
// deleted, so a later Restore can put the same frame back in the same
// cell (SPEC_FULL.md §4.4.5, §4.5).
func (l *Layout) Remove(frame Frame) error {
	if frame == nil {
		return ErrInvalidTarget
	}
	id, ok := l.frameIndex[frame.FrameKey()]
	if !ok {
		return ErrNotPresent
	}
	item := l.mustItem(id)

	if item.RefCount > 0 {
		l.convertToPlaceholder(item)
	} else {
		l.deleteItem(item)
		delete(l.frameIndex, frame.FrameKey())
	}

	l.recomputeMinSize()
	l.redistribute()
	return nil
}

func (l *Layout) convertToPlaceholder(item *Item) {
	oldFrame := item.Frame
	item.Placeholder = true
	item.Frame = nil
	item.MinSize = Size{}

	l.caps.notifyVisibility(item.FrameKey, false)
	if oldFrame != nil {
		oldFrame.SetVisible(false)
	}
	l.collapseAroundPlaceholder(item)
}

// collapseAroundPlaceholder looks for dynamic boundary anchors of item that
// now have nothing but placeholders on item's side, and makes them follow
// their opposite boundary so the live neighbor across them expands to fill
// the freed space (SPEC_FULL.md §4.3, Open Question #3).
func (l *Layout) collapseAroundPlaceholder(item *Item) {
	g := item.Group
	for _, aID := range []AnchorID{g.Left, g.Top, g.Right, g.Bottom} {
		a := l.mustAnchor(aID)
		if a.Kind != KindDynamic {
			continue
		}
		sideOfItem := Side1
		if aID == g.Left || aID == g.Top {
			sideOfItem = Side2
		}
		if !l.allPlaceholders(*a.sideList(sideOfItem)) {
			continue
		}
		farID := g.OppositeAnchor(aID)
		if farID == "" || farID == aID {
			continue
		}
		_ = a.SetFollows(l, farID)
	}
}

func (l *Layout) allPlaceholders(ids []ItemID) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !l.mustItem(id).Placeholder {
			return false
		}
	}
	return true
}

// deleteItem removes item entirely: it unregisters it from its bounding
// anchors and, if that leaves any of those anchors with an empty side,
// consumes the unneeded anchor into its opposite (SPEC_FULL.md §4.4.5).
func (l *Layout) deleteItem(item *Item) {
	g := item.Group
	l.removeItem(g, item.ID)
	delete(l.items, item.ID)

	for _, aID := range []AnchorID{g.Left, g.Top, g.Right, g.Bottom} {
		a, ok := l.anchors[aID]
		if !ok || a.Kind.IsStatic() || !a.Unneeded() {
			continue
		}
		targetID := g.OppositeAnchor(aID)
		target, ok := l.anchors[targetID]
		if !ok || target == a {
			continue
		}
		l.consume(target, a, nil)
	}
}

// Restore re-attaches frame to its remembered placeholder item, if one is
// still on record for its FrameKey. It reports false if no placeholder was
// found, in which case the caller should fall back to Insert.
func (l *Layout) Restore(frame Frame) (*Item, bool) {
	if frame == nil {
		return nil, false
	}
	id, ok := l.frameIndex[frame.FrameKey()]
	if !ok {
		return nil, false
	}
	item, ok := l.items[id]
	if !ok || !item.Placeholder {
		return nil, false
	}

	item.Placeholder = false
	item.Frame = frame
	item.MinSize = effectiveMinSize(l.hardFloor, frame.MinimumSizeHint())

	for _, aID := range []AnchorID{item.Group.Left, item.Group.Top, item.Group.Right, item.Group.Bottom} {
		a := l.mustAnchor(aID)
		if a.Kind == KindDynamic && a.Follows != "" {
			a.Follows = ""
		}
	}

	l.caps.notifyVisibility(item.FrameKey, true)
	frame.SetVisible(true)

	l.recomputeMinSize()
	l.redistribute()
	return item, true
}

// AttachFrame re-associates a live Frame with an item recreated by
// Deserialize, which has a FrameKey but no Frame of its own yet.
func (l *Layout) AttachFrame(frame Frame) error {
	if frame == nil {
		return ErrInvalidTarget
	}
	id, ok := l.frameIndex[frame.FrameKey()]
	if !ok {
		return ErrNotPresent
	}
	item := l.mustItem(id)
	item.Frame = frame
	item.Commit(l.caps)
	return nil
}
