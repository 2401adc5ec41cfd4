package engine

import "testing"

func TestMinimumSizeMonotonicAcrossInsertsAndRemoves(t *testing.T) {
	l := newTestLayout(600, 600)
	sizes := []Size{}
	items := []*Item{}
	frames := []*fakeFrame{}

	sizes = append(sizes, l.MinimumSize())

	for i, loc := range []Location{LocationNone, LocationRight, LocationBottom, LocationLeft} {
		f := &fakeFrame{key: string(rune('a' + i)), minSize: Size{W: 25, H: 35}}
		var relativeTo *Item
		if len(items) > 0 {
			relativeTo = items[0]
		}
		item, err := l.Insert(f, loc, relativeTo)
		if err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
		items = append(items, item)
		frames = append(frames, f)
		sizes = append(sizes, l.MinimumSize())
	}

	for i := 1; i < len(sizes); i++ {
		if sizes[i].W < sizes[i-1].W || sizes[i].H < sizes[i-1].H {
			t.Fatalf("minimum size shrank on insert %d: %v -> %v", i, sizes[i-1], sizes[i])
		}
	}

	for i := len(frames) - 1; i >= 0; i-- {
		before := l.MinimumSize()
		if err := l.Remove(frames[i]); err != nil {
			t.Fatalf("Remove %d: %v", i, err)
		}
		after := l.MinimumSize()
		if after.W > before.W || after.H > before.H {
			t.Fatalf("minimum size grew on remove %d: %v -> %v", i, before, after)
		}
	}
}

func TestMinimumSizeOnlyBordersForSoloPlaceholder(t *testing.T) {
	l := newTestLayout(300, 300)
	item, err := l.InsertPlaceholder("ghost", LocationNone, nil)
	if err != nil {
		t.Fatalf("InsertPlaceholder: %v", err)
	}
	if !item.Placeholder {
		t.Fatal("InsertPlaceholder should create a placeholder item")
	}
	min := l.MinimumSize()
	want := Size{W: l.staticThickness * 2, H: l.staticThickness * 2}
	if min != want {
		t.Fatalf("MinimumSize() with only a placeholder = %v, want %v", min, want)
	}
}
