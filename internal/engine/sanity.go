package engine

import "fmt"

// SanityViolation is one broken invariant found by CheckSanity.
type SanityViolation struct {
	Code    string
	Message string
}

// SanityReport collects every violation CheckSanity found; an empty report
// means every check listed on CheckSanity passed. The round-trip,
// idempotence and min-size monotonicity properties of SPEC_FULL.md §8 are
// not checked here.
type SanityReport struct {
	Violations []SanityViolation
}

// OK reports whether the layout passed every check.
func (r SanityReport) OK() bool { return len(r.Violations) == 0 }

func (r *SanityReport) add(code, format string, args ...any) {
	r.Violations = append(r.Violations, SanityViolation{Code: code, Message: fmt.Sprintf(format, args...)})
}

// CheckSanity walks the whole graph and reports every broken invariant:
// malformed anchors, stale item rectangles, items squeezed below their
// minimum, and a container smaller than its own computed minimum.
func (l *Layout) CheckSanity() SanityReport {
	var report SanityReport

	for _, a := range l.anchors {
		if a.Kind == KindDynamic && !a.Valid(l) {
			report.add("anchor-invalid", "anchor %s has malformed endpoints", a.ID)
		}
		if a.Unneeded() {
			report.add("anchor-unneeded", "anchor %s is empty on one side and should have been consumed", a.ID)
		}
	}

	for _, it := range l.items {
		want := l.rectOf(it.Group)
		if want != it.Rect {
			report.add("item-rect-stale", "item %s rect %s does not match its anchor group's %s", it.ID, it.Rect, want)
		}
		if !it.Placeholder {
			if it.Rect.W < it.MinSize.W || it.Rect.H < it.MinSize.H {
				report.add("item-below-min", "item %s rect %s is smaller than its minimum %v", it.ID, it.Rect, it.MinSize)
			}
		}
	}

	for _, axis := range [2]Axis{Vertical, Horizontal} {
		if l.size.Length(axis) < l.minSize.Length(axis) {
			report.add("container-below-min", "container length %d on axis %s is below minimum %d", l.size.Length(axis), axis, l.minSize.Length(axis))
		}
	}

	return report
}
