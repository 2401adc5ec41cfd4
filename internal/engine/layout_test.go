package engine

import "testing"

func TestInsertFirstItemFillsContainer(t *testing.T) {
	l := newTestLayout(200, 100)
	f := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	item, err := l.Insert(f, LocationNone, nil)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	want := Rect{X: 1, Y: 1, W: 198, H: 98}
	if item.Rect != want {
		t.Fatalf("first item rect = %s, want %s", item.Rect, want)
	}
	if !f.visible {
		t.Fatal("frame should be made visible on insert")
	}
}

func TestInsertRejectsDuplicateFrame(t *testing.T) {
	l := newTestLayout(200, 100)
	f := &fakeFrame{key: "a"}
	if _, err := l.Insert(f, LocationNone, nil); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if _, err := l.Insert(f, LocationRight, nil); err != ErrAlreadyPresent {
		t.Fatalf("second Insert = %v, want ErrAlreadyPresent", err)
	}
}

func TestInsertRejectsMissingLocation(t *testing.T) {
	l := newTestLayout(200, 100)
	f1 := &fakeFrame{key: "a"}
	if _, err := l.Insert(f1, LocationNone, nil); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	f2 := &fakeFrame{key: "b"}
	if _, err := l.Insert(f2, LocationNone, nil); err != ErrInvalidLocation {
		t.Fatalf("Insert with LocationNone into non-empty layout = %v, want ErrInvalidLocation", err)
	}
}

// TestSplitSideBySide mirrors a left/right split of the whole container:
// two items, one dynamic vertical anchor between them.
func TestSplitSideBySide(t *testing.T) {
	l := newTestLayout(202, 100)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	item1, err := l.Insert(f1, LocationNone, nil)
	if err != nil {
		t.Fatalf("Insert a: %v", err)
	}

	f2 := &fakeFrame{key: "b", minSize: Size{W: 20, H: 20}}
	item2, err := l.Insert(f2, LocationRight, nil)
	if err != nil {
		t.Fatalf("Insert b: %v", err)
	}

	if l.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", l.Count())
	}
	if item1.Group.Right != item2.Group.Left {
		t.Fatal("the two items should share a dynamic anchor")
	}
	shared := l.mustAnchor(item1.Group.Right)
	if shared.Kind != KindDynamic {
		t.Fatal("the shared anchor should be dynamic")
	}
	if item1.Rect.Right()+l.sepThickness != item2.Rect.X {
		t.Fatalf("item1.Rect=%s item2.Rect=%s are not adjacent across one separator", item1.Rect, item2.Rect)
	}
	if report := l.CheckSanity(); !report.OK() {
		t.Fatalf("CheckSanity: %+v", report.Violations)
	}
}

// TestInsertRelativeToItem splits only the targeted item, leaving a third
// sibling untouched.
func TestInsertRelativeToItem(t *testing.T) {
	l := newTestLayout(300, 100)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	item1, _ := l.Insert(f1, LocationNone, nil)

	f2 := &fakeFrame{key: "b", minSize: Size{W: 20, H: 20}}
	item2, err := l.Insert(f2, LocationRight, item1)
	if err != nil {
		t.Fatalf("Insert b: %v", err)
	}

	f3 := &fakeFrame{key: "c", minSize: Size{W: 20, H: 20}}
	item3, err := l.Insert(f3, LocationBottom, item1)
	if err != nil {
		t.Fatalf("Insert c: %v", err)
	}

	if item3.Group.Right != item1.Group.Right {
		t.Fatal("c should inherit a's old right boundary")
	}
	if item2.Group.Top != item1.Group.Top {
		t.Fatal("b, which was never touched by the second split, should keep its original top boundary")
	}
	if report := l.CheckSanity(); !report.OK() {
		t.Fatalf("CheckSanity: %+v", report.Violations)
	}
}

// TestInsertRepointsPerpendicularAnchorsAwayFromDonor exercises a second
// split that subdivides one side of an earlier split: the first split's
// divider used to run all the way to the outer border on that side, but
// after the second split that border no longer bounds it there — the
// nearer, freshly created divider does (SPEC_FULL.md §4.4.1 step 5).
func TestInsertRepointsPerpendicularAnchorsAwayFromDonor(t *testing.T) {
	l := newTestLayout(300, 200)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	item1, _ := l.Insert(f1, LocationNone, nil)

	f2 := &fakeFrame{key: "b", minSize: Size{W: 20, H: 20}}
	if _, err := l.Insert(f2, LocationRight, item1); err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	verticalDivider := l.mustAnchor(item1.Group.Right)
	if verticalDivider.ToID != l.staticBottomID {
		t.Fatalf("verticalDivider.ToID = %s, want staticBottom before the second split", verticalDivider.ToID)
	}

	f3 := &fakeFrame{key: "c", minSize: Size{W: 20, H: 20}}
	if _, err := l.Insert(f3, LocationBottom, item1); err != nil {
		t.Fatalf("Insert c: %v", err)
	}
	horizontalDivider := l.mustAnchor(item1.Group.Bottom)

	if verticalDivider.ToID != horizontalDivider.ID {
		t.Fatalf("verticalDivider.ToID = %s, want the new horizontal divider %s, not the static border it was split away from", verticalDivider.ToID, horizontalDivider.ID)
	}
	if horizontalDivider.ToID != verticalDivider.ID {
		t.Fatalf("horizontalDivider.ToID = %s, want verticalDivider %s", horizontalDivider.ToID, verticalDivider.ID)
	}
	if report := l.CheckSanity(); !report.OK() {
		t.Fatalf("CheckSanity: %+v", report.Violations)
	}
}

func TestRemoveCollapsesAnchor(t *testing.T) {
	l := newTestLayout(202, 100)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 20, H: 20}}
	if _, err := l.Insert(f2, LocationRight, nil); err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	dividerID := item1.Group.Right

	if err := l.Remove(f2); err != nil {
		t.Fatalf("Remove b: %v", err)
	}
	if _, ok := l.anchors[dividerID]; ok {
		t.Fatal("the now-unneeded divider should have been consumed")
	}
	want := l.contentRect()
	if item1.Rect != want {
		t.Fatalf("after removal item1.Rect = %s, want full content rect %s", item1.Rect, want)
	}
	if report := l.CheckSanity(); !report.OK() {
		t.Fatalf("CheckSanity: %+v", report.Violations)
	}
}

func TestRemoveWithOutstandingRefBecomesPlaceholderAndRestores(t *testing.T) {
	l := newTestLayout(202, 100)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 20, H: 20}}
	item2, err := l.Insert(f2, LocationRight, nil)
	if err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	item2.Ref()

	if err := l.Remove(f2); err != nil {
		t.Fatalf("Remove b: %v", err)
	}
	if !item2.Placeholder {
		t.Fatal("item2 should be a placeholder, not deleted")
	}
	if item1.Rect != l.contentRect() {
		t.Fatalf("item1 should have expanded to fill around the placeholder, got %s", item1.Rect)
	}

	restored, ok := l.Restore(f2)
	if !ok {
		t.Fatal("Restore should find the remembered placeholder")
	}
	if restored != item2 {
		t.Fatal("Restore should return the same item")
	}
	if item2.Placeholder {
		t.Fatal("item2 should no longer be a placeholder after Restore")
	}
	if report := l.CheckSanity(); !report.OK() {
		t.Fatalf("CheckSanity: %+v", report.Violations)
	}
}

func TestResizeRespectsMinimumSize(t *testing.T) {
	l := newTestLayout(202, 100)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 20, H: 20}}
	if _, err := l.Insert(f1, LocationNone, nil); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	min := l.MinimumSize()
	l.Resize(Size{W: 1, H: 1})
	if l.Size().W < min.W || l.Size().H < min.H {
		t.Fatalf("Resize shrank below minimum size: got %v, min %v", l.Size(), min)
	}
}

func TestMinimumSizeGrowsWithInsertAndShrinksWithRemove(t *testing.T) {
	l := newTestLayout(400, 400)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 30, H: 30}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	before := l.MinimumSize()

	f2 := &fakeFrame{key: "b", minSize: Size{W: 30, H: 30}}
	if _, err := l.Insert(f2, LocationRight, item1); err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	afterInsert := l.MinimumSize()
	if afterInsert.W < before.W {
		t.Fatalf("minimum width shrank after insert: %d -> %d", before.W, afterInsert.W)
	}

	if err := l.Remove(f2); err != nil {
		t.Fatalf("Remove b: %v", err)
	}
	afterRemove := l.MinimumSize()
	if afterRemove.W > afterInsert.W {
		t.Fatalf("minimum width grew after remove: %d -> %d", afterInsert.W, afterRemove.W)
	}
}
