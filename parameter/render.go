package parameter

// Render configuration
const (
	// NodeSizeBase is the minimum node size in world units
	NodeSizeBase = 0.6

	// NodeSizeDegree scales node size by degree/maxDegree on top of base
	NodeSizeDegree = 1.8

	// CellAspect compensates for terminal cells being roughly twice as
	// tall as they are wide; horizontal distances are scaled by it when
	// rasterizing circles
	CellAspect = 0.5

	// ArrowPullback is the extra gap in world units between an arrow tip
	// and the target node boundary
	ArrowPullback = 0.15

	// DimAlpha is the opacity of edges outside any coverage net
	DimAlpha = 0.25

	// FrameInterval is the target frame period in milliseconds
	FrameIntervalMs = 16
)
