package parameter

import "time"

// Label layout configuration
const (
	// MaxLabels caps how many labels are placed per frame
	MaxLabels = 48

	// HoverDecayWindow keeps recently hovered nodes in a boosted
	// priority band so their labels do not flicker out the moment the
	// pointer leaves
	HoverDecayWindow = 1500 * time.Millisecond

	// HoverLockThreshold is cursor movement in cells required to release
	// the hover lock after a label appears under a stationary cursor
	HoverLockThreshold = 3.0
)

// Priority bands for label candidates
// Bands are disjoint and strictly ordered so a candidate in a higher
// band can never be displaced by any combination of lower bonuses
const (
	PrioritySelected     = 1 << 24
	PriorityHovered      = 1 << 22
	PrioritySelectionNet = 1 << 20
	PriorityHoverNet     = 1 << 18
	PriorityRecentHover  = 1 << 16
)
