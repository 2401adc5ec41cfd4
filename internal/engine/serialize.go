package engine

import (
	"fmt"
	"log/slog"
)

// AnchorGroupRecord is the persisted form of an AnchorGroup, spelled out by
// field name so the JSON stays readable across restores.
type AnchorGroupRecord struct {
	LeftID   string `json:"left_id"`
	TopID    string `json:"top_id"`
	RightID  string `json:"right_id"`
	BottomID string `json:"bottom_id"`
}

// AnchorRecord is the persisted form of one Anchor.
type AnchorRecord struct {
	ID                 string   `json:"id"`
	Axis               string   `json:"axis"`
	Kind               string   `json:"kind"`
	Position           int      `json:"position"`
	PositionPercentage float64  `json:"position_percentage"`
	FromID             string   `json:"from_id"`
	ToID               string   `json:"to_id"`
	FollowsID          string   `json:"follows_id,omitempty"`
	Side1ItemIDs       []string `json:"side1_item_ids,omitempty"`
	Side2ItemIDs       []string `json:"side2_item_ids,omitempty"`
}

// ItemRecord is the persisted form of one Item. It carries FrameKey but
// never the live Frame: a restored record's items have no attached frame
// until the caller calls AttachFrame for each one.
type ItemRecord struct {
	ID            string            `json:"id"`
	Geometry      Rect              `json:"geometry"`
	MinSize       Size              `json:"min_size"`
	IsPlaceholder bool              `json:"is_placeholder"`
	FrameKey      string            `json:"frame_key,omitempty"`
	Title         string            `json:"title,omitempty"`
	RefCount      int               `json:"ref_count"`
	AnchorGroup   AnchorGroupRecord `json:"anchor_group"`
}

// LayoutRecord is the full persisted form of a Layout (SPEC_FULL.md §6).
type LayoutRecord struct {
	Size               Size           `json:"size"`
	MinSize            Size           `json:"min_size"`
	SeparatorThickness int            `json:"separator_thickness"`
	StaticThickness    int            `json:"static_thickness"`
	HardFloor          Size           `json:"hard_floor"`
	Anchors            []AnchorRecord `json:"anchors"`
	Items              []ItemRecord   `json:"items"`
}

// Serialize snapshots the layout's full graph into a LayoutRecord, ready
// for a caller to marshal with encoding/json.
func (l *Layout) Serialize() LayoutRecord {
	rec := LayoutRecord{
		Size:               l.size,
		MinSize:            l.minSize,
		SeparatorThickness: l.sepThickness,
		StaticThickness:    l.staticThickness,
		HardFloor:          l.hardFloor,
	}

	for _, a := range l.anchors {
		ar := AnchorRecord{
			ID:                 string(a.ID),
			Axis:               a.Axis.String(),
			Kind:               kindToString(a.Kind),
			Position:           a.Position,
			PositionPercentage: a.posPercent,
			FromID:             string(a.FromID),
			ToID:               string(a.ToID),
		}
		if a.Follows != "" {
			ar.FollowsID = string(a.Follows)
		}
		for _, id := range a.Side1 {
			ar.Side1ItemIDs = append(ar.Side1ItemIDs, string(id))
		}
		for _, id := range a.Side2 {
			ar.Side2ItemIDs = append(ar.Side2ItemIDs, string(id))
		}
		rec.Anchors = append(rec.Anchors, ar)
	}

	for _, it := range l.items {
		ir := ItemRecord{
			ID:            string(it.ID),
			Geometry:      it.Rect,
			MinSize:       it.MinSize,
			IsPlaceholder: it.Placeholder,
			FrameKey:      it.FrameKey,
			Title:         it.Title,
			RefCount:      it.RefCount,
			AnchorGroup: AnchorGroupRecord{
				LeftID:   string(it.Group.Left),
				TopID:    string(it.Group.Top),
				RightID:  string(it.Group.Right),
				BottomID: string(it.Group.Bottom),
			},
		}
		rec.Items = append(rec.Items, ir)
	}

	return rec
}

// Deserialize rebuilds a Layout from a LayoutRecord in the order
// SPEC_FULL.md §6 prescribes: anchors first (so every id resolves), then
// items, then follower links, then a single redistribution pass. If
// quiescent is true, caps' callbacks are suppressed until that final pass,
// so a caller restoring many frames at once sees one batch of geometry
// notifications instead of one per anchor.
func Deserialize(rec LayoutRecord, caps Capabilities, quiescent bool, logger *slog.Logger) (*Layout, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Layout{
		size:            rec.Size,
		minSize:         rec.MinSize,
		anchors:         map[AnchorID]*Anchor{},
		items:           map[ItemID]*Item{},
		frameIndex:      map[string]ItemID{},
		sepThickness:    rec.SeparatorThickness,
		staticThickness: rec.StaticThickness,
		hardFloor:       rec.HardFloor,
		log:             logger,
	}
	if quiescent {
		l.caps = Capabilities{}
	} else {
		l.caps = caps
	}

	for _, ar := range rec.Anchors {
		kind, err := kindFromString(ar.Kind)
		if err != nil {
			return nil, err
		}
		axis, err := axisFromString(ar.Axis)
		if err != nil {
			return nil, err
		}
		a := &Anchor{
			ID:         AnchorID(ar.ID),
			Axis:       axis,
			Kind:       kind,
			Position:   ar.Position,
			posPercent: ar.PositionPercentage,
			FromID:     AnchorID(ar.FromID),
			ToID:       AnchorID(ar.ToID),
		}
		l.anchors[a.ID] = a
		switch kind {
		case KindStaticLeft:
			l.staticLeftID = a.ID
		case KindStaticTop:
			l.staticTopID = a.ID
		case KindStaticRight:
			l.staticRightID = a.ID
		case KindStaticBottom:
			l.staticBottomID = a.ID
		}
	}

	if l.staticLeftID == "" || l.staticTopID == "" || l.staticRightID == "" || l.staticBottomID == "" {
		return nil, fmt.Errorf("multisplitter: layout record is missing one or more static anchors: %w", ErrMalformedRecord)
	}

	for _, ar := range rec.Anchors {
		a := l.anchors[AnchorID(ar.ID)]
		if err := requireAnchor(l, AnchorID(ar.FromID)); err != nil {
			return nil, err
		}
		if err := requireAnchor(l, AnchorID(ar.ToID)); err != nil {
			return nil, err
		}
		if err := requireAnchor(l, AnchorID(ar.FollowsID)); err != nil {
			return nil, err
		}
		for _, id := range ar.Side1ItemIDs {
			a.Side1 = append(a.Side1, ItemID(id))
		}
		for _, id := range ar.Side2ItemIDs {
			a.Side2 = append(a.Side2, ItemID(id))
		}
	}

	for _, ir := range rec.Items {
		group := AnchorGroup{
			Left:   AnchorID(ir.AnchorGroup.LeftID),
			Top:    AnchorID(ir.AnchorGroup.TopID),
			Right:  AnchorID(ir.AnchorGroup.RightID),
			Bottom: AnchorID(ir.AnchorGroup.BottomID),
		}
		for _, id := range []AnchorID{group.Left, group.Top, group.Right, group.Bottom} {
			if err := requireAnchor(l, id); err != nil {
				return nil, err
			}
		}
		it := &Item{
			ID:          ItemID(ir.ID),
			Rect:        ir.Geometry,
			MinSize:     ir.MinSize,
			Placeholder: ir.IsPlaceholder,
			FrameKey:    ir.FrameKey,
			Title:       ir.Title,
			RefCount:    ir.RefCount,
			Group:       group,
		}
		l.items[it.ID] = it
		if it.FrameKey != "" {
			l.frameIndex[it.FrameKey] = it.ID
		}
	}

	for _, a := range l.anchors {
		for _, id := range a.Side1 {
			if err := requireItem(l, id); err != nil {
				return nil, err
			}
		}
		for _, id := range a.Side2 {
			if err := requireItem(l, id); err != nil {
				return nil, err
			}
		}
	}

	for _, ar := range rec.Anchors {
		if ar.FollowsID != "" {
			l.anchors[AnchorID(ar.ID)].Follows = AnchorID(ar.FollowsID)
		}
	}

	l.recomputeMinSize()
	l.redistribute()

	if quiescent {
		l.caps = caps
		l.commitAll()
	}
	return l, nil
}

// requireAnchor reports ErrNotFound if id is non-empty but does not resolve
// to an anchor already built from the record. An empty id is never an error
// here: FromID/ToID are validated for presence by Anchor.Valid, not here.
func requireAnchor(l *Layout, id AnchorID) error {
	if id == "" {
		return nil
	}
	if _, ok := l.anchors[id]; !ok {
		return fmt.Errorf("multisplitter: anchor id %q: %w", id, ErrNotFound)
	}
	return nil
}

// requireItem reports ErrNotFound if id is non-empty but does not resolve to
// an item already built from the record.
func requireItem(l *Layout, id ItemID) error {
	if id == "" {
		return nil
	}
	if _, ok := l.items[id]; !ok {
		return fmt.Errorf("multisplitter: item id %q: %w", id, ErrNotFound)
	}
	return nil
}

func kindToString(k AnchorKind) string {
	switch k {
	case KindStaticLeft:
		return "static_left"
	case KindStaticTop:
		return "static_top"
	case KindStaticRight:
		return "static_right"
	case KindStaticBottom:
		return "static_bottom"
	default:
		return "dynamic"
	}
}

func kindFromString(s string) (AnchorKind, error) {
	switch s {
	case "dynamic":
		return KindDynamic, nil
	case "static_left":
		return KindStaticLeft, nil
	case "static_top":
		return KindStaticTop, nil
	case "static_right":
		return KindStaticRight, nil
	case "static_bottom":
		return KindStaticBottom, nil
	default:
		return 0, fmt.Errorf("multisplitter: unknown anchor kind %q: %w", s, ErrMalformedRecord)
	}
}

func axisFromString(s string) (Axis, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("multisplitter: unknown axis %q: %w", s, ErrMalformedRecord)
	}
}
