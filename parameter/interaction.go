package parameter

import "time"

// Pointer gesture configuration
const (
	// ClickThreshold is total drag displacement in cells below which a
	// press/release pair is reclassified as a click
	ClickThreshold = 4.0

	// HoverHitScale widens node hit radii for hover (forgiving)
	HoverHitScale = 1.6

	// ClickHitScale is the hit radius scale for exact clicks
	ClickHitScale = 1.0

	// HoverDebounce delays hover notification so continuous pointer
	// movement does not recompute the coverage net every event
	HoverDebounce = 60 * time.Millisecond
)
