package engine

// dropIndicatorMinLength is the fallback edge length used when the caller
// has no preference for how much of the target cell an insertion preview
// should consume (SPEC_FULL.md §4.4.3).
const dropIndicatorMinLength = 100

// DropRect computes the rectangle a drag-and-drop insertion indicator
// should occupy for location relative to relativeTo (or the whole content
// area if relativeTo is nil), given the lengths the indicator would reserve
// on either side of the eventual split.
func (l *Layout) DropRect(location Location, relativeTo *Item, side1Length, side2Length int) Rect {
	var ref Rect
	if relativeTo != nil {
		ref = relativeTo.Rect
	} else {
		ref = l.contentRect()
	}

	total := side1Length + side2Length
	if total <= 0 {
		total = dropIndicatorMinLength
		side1Length, side2Length = total/2, total-total/2
	}

	switch location {
	case LocationLeft:
		x := maxInt(0, ref.X-side1Length)
		return Rect{X: x, Y: ref.Y, W: total, H: ref.H}
	case LocationTop:
		y := maxInt(0, ref.Y-side1Length)
		return Rect{X: ref.X, Y: y, W: ref.W, H: total}
	case LocationRight:
		x := minInt(ref.Right()+1-side1Length+l.sepThickness, l.size.W-total-l.staticThickness)
		return Rect{X: x, Y: ref.Y, W: total, H: ref.H}
	case LocationBottom:
		y := minInt(ref.Bottom()+1-side1Length+l.sepThickness, l.size.H-total-l.staticThickness)
		return Rect{X: ref.X, Y: y, W: ref.W, H: total}
	default:
		return Rect{}
	}
}
