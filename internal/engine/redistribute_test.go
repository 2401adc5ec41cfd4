package engine

import "testing"

func newTestLayoutWithThickness(w, h, sep, static int) *Layout {
	return NewLayout(Size{W: w, H: h}, Capabilities{}, LayoutConfig{
		SeparatorThickness: sep,
		StaticThickness:    static,
		HardFloor:          Size{W: 20, H: 20},
	}, nil)
}

func TestRedistributeIsIdempotent(t *testing.T) {
	l := newTestLayout(400, 300)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 30, H: 30}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 30, H: 30}}
	if _, err := l.Insert(f2, LocationRight, item1); err != nil {
		t.Fatalf("Insert b: %v", err)
	}

	before := map[AnchorID]int{}
	for id, a := range l.anchors {
		before[id] = a.Position
	}

	l.redistribute()

	for id, a := range l.anchors {
		if a.Position != before[id] {
			t.Fatalf("anchor %s moved from %d to %d on a no-op redistribute", id, before[id], a.Position)
		}
	}
}

func TestRedistributePreservesCachedPercentageOnResize(t *testing.T) {
	l := newTestLayout(400, 300)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 30, H: 30}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 30, H: 30}}
	if _, err := l.Insert(f2, LocationRight, item1); err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	divider := l.mustAnchor(item1.Group.Right)
	percentBefore := divider.posPercent

	l.Resize(Size{W: 800, H: 300})

	if divider.posPercent != percentBefore {
		t.Fatalf("resize should not rewrite the cached percentage: got %v, want %v", divider.posPercent, percentBefore)
	}

	wantPos := clampInt(int(percentBefore*800+0.5), divider.spaceNeededToward(l, Side1), l.mustAnchor(l.staticRightID).Position-divider.spaceNeededToward(l, Side2))
	if divider.Position != wantPos {
		t.Fatalf("divider.Position after resize = %d, want %d", divider.Position, wantPos)
	}
}

// TestSpaceNeededTowardSide2ChargesOwnThickness pins the Side2 walk's
// charging rule against hand-computed expectations rather than the
// function under test, with SeparatorThickness != StaticThickness so the
// two anchor kinds can't be confused for one another. Three items sit in a
// row: item1 | divider1 | item2 | divider2 | item3 | staticRight.
func TestSpaceNeededTowardSide2ChargesOwnThickness(t *testing.T) {
	l := newTestLayoutWithThickness(400, 100, 2, 1)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 30, H: 20}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 30, H: 20}}
	item2, err := l.Insert(f2, LocationRight, item1)
	if err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	f3 := &fakeFrame{key: "c", minSize: Size{W: 30, H: 20}}
	if _, err := l.Insert(f3, LocationRight, item2); err != nil {
		t.Fatalf("Insert c: %v", err)
	}

	divider1 := l.mustAnchor(item1.Group.Right)
	divider2 := l.mustAnchor(item2.Group.Right)

	// S(divider2, Side2) = divider2.Thickness + item3.MinLength = 2 + 30 = 32.
	if got := divider2.spaceNeededToward(l, Side2); got != 32 {
		t.Fatalf("divider2.spaceNeededToward(Side2) = %d, want 32", got)
	}
	// S(divider1, Side2) = divider1.Thickness + item2.MinLength + S(divider2, Side2)
	//                    = 2 + 30 + 32 = 64.
	if got := divider1.spaceNeededToward(l, Side2); got != 64 {
		t.Fatalf("divider1.spaceNeededToward(Side2) = %d, want 64", got)
	}

	// Side1 is unaffected by the fix: it charges each opposite (low-side)
	// anchor's own thickness, which for divider1 is the static left border.
	// S(divider1, Side1) = item1.MinLength + staticLeft.Thickness = 30 + 1 = 31.
	if got := divider1.spaceNeededToward(l, Side1); got != 31 {
		t.Fatalf("divider1.spaceNeededToward(Side1) = %d, want 31", got)
	}
	// S(divider2, Side1) = item2.MinLength + divider1.Thickness + S(divider1, Side1)
	//                    = 30 + 2 + 31 = 63.
	if got := divider2.spaceNeededToward(l, Side1); got != 63 {
		t.Fatalf("divider2.spaceNeededToward(Side1) = %d, want 63", got)
	}
}

// TestRedistributeKeepsItemsAboveMinimumWithUnequalThicknesses is the
// end-to-end regression for the Side2 bug: shrinking the container down to
// exactly its computed minimum must not leave any item below its own
// minimum length, even when SeparatorThickness != StaticThickness.
func TestRedistributeKeepsItemsAboveMinimumWithUnequalThicknesses(t *testing.T) {
	l := newTestLayoutWithThickness(400, 100, 3, 1)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 40, H: 20}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 40, H: 20}}
	item2, err := l.Insert(f2, LocationRight, item1)
	if err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	f3 := &fakeFrame{key: "c", minSize: Size{W: 40, H: 20}}
	if _, err := l.Insert(f3, LocationRight, item2); err != nil {
		t.Fatalf("Insert c: %v", err)
	}

	l.Resize(l.MinimumSize())

	for _, it := range l.Items() {
		if it.Rect.W < it.MinSize.W {
			t.Fatalf("item %s rect width %d below minimum %d after shrinking to the computed minimum size", it.FrameKey, it.Rect.W, it.MinSize.W)
		}
	}
	if report := l.CheckSanity(); !report.OK() {
		t.Fatalf("sanity violations after shrinking to minimum size: %+v", report.Violations)
	}
}
