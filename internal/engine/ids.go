package engine

import "github.com/google/uuid"

// newAnchorID mints a stable id for a new Anchor. Ids are random UUIDs, so
// they are not reused within a Layout's lifetime. They key the Layout's
// arenas and are what endpoint and side-list references hold, so graph
// traversal goes through them; Serialize writes them out unchanged
// (SPEC_FULL.md §3, "stable ID").
func newAnchorID() AnchorID {
	return AnchorID(uuid.NewString())
}

func newItemID() ItemID {
	return ItemID(uuid.NewString())
}
