package engine

import "testing"

func TestCheckSanityCleanLayout(t *testing.T) {
	l := newTestLayout(400, 300)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 30, H: 30}}
	item1, _ := l.Insert(f1, LocationNone, nil)
	f2 := &fakeFrame{key: "b", minSize: Size{W: 30, H: 30}}
	if _, err := l.Insert(f2, LocationRight, item1); err != nil {
		t.Fatalf("Insert b: %v", err)
	}
	f3 := &fakeFrame{key: "c", minSize: Size{W: 30, H: 30}}
	if _, err := l.Insert(f3, LocationBottom, nil); err != nil {
		t.Fatalf("Insert c: %v", err)
	}

	report := l.CheckSanity()
	if !report.OK() {
		t.Fatalf("expected a clean report, got violations: %+v", report.Violations)
	}
}

func TestCheckSanityCatchesUnneededAnchor(t *testing.T) {
	l := newTestLayout(400, 300)
	stray := newAnchor(Vertical, KindDynamic)
	l.anchors[stray.ID] = stray

	report := l.CheckSanity()
	if report.OK() {
		t.Fatal("expected CheckSanity to flag the stray anchor with no items on either side")
	}
	found := false
	for _, v := range report.Violations {
		if v.Code == "anchor-unneeded" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an anchor-unneeded violation, got: %+v", report.Violations)
	}
}

func TestCheckSanityCatchesStaleRect(t *testing.T) {
	l := newTestLayout(400, 300)
	f1 := &fakeFrame{key: "a", minSize: Size{W: 30, H: 30}}
	item, _ := l.Insert(f1, LocationNone, nil)

	item.Rect.W += 50

	report := l.CheckSanity()
	found := false
	for _, v := range report.Violations {
		if v.Code == "item-rect-stale" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an item-rect-stale violation, got: %+v", report.Violations)
	}
}
