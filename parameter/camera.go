package parameter

import "time"

// Camera configuration
const (
	// ZoomMin is the lowest zoom level in screen cells per world unit
	ZoomMin = 0.01

	// ZoomMax is the highest zoom level in screen cells per world unit
	ZoomMax = 200.0

	// WheelZoomStep is the zoom multiplier applied per wheel tick
	WheelZoomStep = 1.2

	// FitPadding is the margin in cells kept around content by FitToContent
	FitPadding = 4.0

	// FocusZoom is the zoom level targeted when animating to a node
	FocusZoom = 6.0

	// FocusDuration is the length of the animated camera transition
	FocusDuration = 450 * time.Millisecond
)
