package tui

import (
	"time"

	"github.com/treykane/multisplitter/internal/engine"
)

// demoHardFloor is the minimum cell size enforced for every frame in the
// demo, in terminal cells rather than the pixel-scale defaults engine.
// LayoutConfig otherwise falls back to.
var demoHardFloor = engine.Size{W: 8, H: 3}

// Layout constants mirror the demo's visual defaults; the actual container
// size tracks the terminal and is re-applied to the engine on every resize.
const (
	// StatusRows is the number of terminal rows reserved for the status and
	// help line at the bottom of the screen.
	StatusRows = 2

	// MinContainerWidth and MinContainerHeight are floors applied before
	// the terminal size is handed to the engine, so a tiny terminal never
	// produces a degenerate container.
	MinContainerWidth  = 20
	MinContainerHeight = 10
)

// WatchDebounce coalesces bursts of filesystem events (editors often emit
// several writes per save) into a single reload.
const WatchDebounce = 200 * time.Millisecond

// autosaveInterval is how often the running demo snapshots its layout to
// disk, in addition to the explicit ctrl+s save key.
const autosaveInterval = 30 * time.Second
