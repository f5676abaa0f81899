package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seliware/genremap/parameter"
)

// ArrowInstance describes one arrow head: a shared glyph template
// positioned per visible directed edge. The tip is pulled back from the
// target center by the node's visual radius so it meets the boundary.
type ArrowInstance struct {
	Target     r2.Vec // target endpoint in world space
	Dir        r2.Vec // normalized source-to-target direction
	Color      RGBA
	TargetSize float64 // target node size in world units
}

// Renderer owns the position and color arrays for the three draw
// passes. Positions are static per dataset; colors, sizes and arrows
// are replaced whenever selection, hover, theme or settings change.
type Renderer struct {
	buf *Buffer

	nodePos []r2.Vec
	edgePos []r2.Vec // two entries per edge

	nodeColor []RGBA
	nodeSize  []float64
	edgeColor []RGBA // two entries per edge, distinct per-endpoint tint
	arrows    []ArrowInstance
}

// NewRenderer creates a renderer drawing into buf
func NewRenderer(buf *Buffer) *Renderer {
	return &Renderer{buf: buf}
}

// SetNodePositions uploads static node positions, once per dataset
func (r *Renderer) SetNodePositions(pos []r2.Vec) { r.nodePos = pos }

// SetEdgePositions uploads static edge endpoints, two per edge
func (r *Renderer) SetEdgePositions(pos []r2.Vec) { r.edgePos = pos }

// SetNodeColors replaces the per-node tint array
func (r *Renderer) SetNodeColors(c []RGBA) { r.nodeColor = c }

// SetNodeSizes replaces the per-node size array (world units)
func (r *Renderer) SetNodeSizes(s []float64) { r.nodeSize = s }

// SetEdgeColors replaces the per-endpoint edge tint array, two per edge
func (r *Renderer) SetEdgeColors(c []RGBA) { r.edgeColor = c }

// SetArrows replaces the arrow instance array
func (r *Renderer) SetArrows(a []ArrowInstance) { r.arrows = a }

// Render executes the three passes in fixed order regardless of whether
// anything changed: edges, arrow heads, then nodes last so they occlude
// the rest. zoom is the effective zoom in cells per world unit.
func (r *Renderer) Render(view [9]float64, bg RGB, arrowScale, zoom float64) {
	r.buf.Clear(bg)
	r.renderEdges(view)
	r.renderArrows(view, arrowScale, zoom)
	r.renderNodes(view, zoom)
}

// project maps a world point through the clip-space view matrix into
// cell coordinates
func (r *Renderer) project(view [9]float64, p r2.Vec) (float64, float64) {
	clipX := view[0]*p.X + view[3]*p.Y + view[6]
	clipY := view[1]*p.X + view[4]*p.Y + view[7]
	sx := (clipX + 1) / 2 * float64(r.buf.Width())
	sy := (1 - clipY) / 2 * float64(r.buf.Height())
	return sx, sy
}

func (r *Renderer) renderEdges(view [9]float64) {
	n := len(r.edgePos) / 2
	if c := len(r.edgeColor) / 2; c < n {
		n = c
	}
	w := float64(r.buf.Width())
	h := float64(r.buf.Height())

	for i := 0; i < n; i++ {
		c0 := r.edgeColor[2*i]
		c1 := r.edgeColor[2*i+1]
		if c0.A <= 0 && c1.A <= 0 {
			continue
		}
		x0, y0 := r.project(view, r.edgePos[2*i])
		x1, y1 := r.project(view, r.edgePos[2*i+1])

		// cheap reject when the whole segment is far off screen
		const margin = 64
		if (x0 < -margin && x1 < -margin) || (x0 > w+margin && x1 > w+margin) ||
			(y0 < -margin && y1 < -margin) || (y0 > h+margin && y1 > h+margin) {
			continue
		}
		r.drawLine(x0, y0, x1, y1, c0, c1)
	}
}

// drawLine steps along the segment lerping the endpoint colors
func (r *Renderer) drawLine(x0, y0, x1, y1 float64, c0, c1 RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := Lerp(c0, c1, t)
		if c.A <= 0 {
			continue
		}
		x := int(math.Round(x0 + (x1-x0)*t))
		y := int(math.Round(y0 + (y1-y0)*t))
		r.buf.SetBg(x, y, c.RGB, BlendAlpha, c.A)
	}
}

// arrowRunes covers the eight directions, index 0 pointing right and
// increasing clockwise in screen space
var arrowRunes = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

func (r *Renderer) renderArrows(view [9]float64, arrowScale, zoom float64) {
	if arrowScale <= 0 {
		return
	}
	for _, a := range r.arrows {
		// zero-length direction cannot be normalized, skip the instance
		if a.Dir.X == 0 && a.Dir.Y == 0 {
			continue
		}
		if a.Color.A <= 0 {
			continue
		}
		dir := r2.Unit(a.Dir)
		pullback := a.TargetSize*0.5 + parameter.ArrowPullback
		tip := r2.Sub(a.Target, r2.Scale(pullback, dir))

		sx, sy := r.project(view, tip)
		x := int(math.Round(sx))
		y := int(math.Round(sy))

		// world Y and screen Y both grow downward, no angle flip needed
		octant := int(math.Round(math.Atan2(dir.Y, dir.X)/(math.Pi/4))) % 8
		if octant < 0 {
			octant += 8
		}
		alpha := a.Color.A * math.Min(arrowScale, 1)
		bg := r.buf.At(x, y).Bg
		r.buf.SetRune(x, y, arrowRunes[octant], bg.Blend(a.Color.RGB, alpha))
	}
}

func (r *Renderer) renderNodes(view [9]float64, zoom float64) {
	n := len(r.nodePos)
	if c := len(r.nodeColor); c < n {
		n = c
	}
	if c := len(r.nodeSize); c < n {
		n = c
	}

	for i := 0; i < n; i++ {
		c := r.nodeColor[i]
		if c.A <= 0 {
			continue
		}
		sx, sy := r.project(view, r.nodePos[i])
		radius := r.nodeSize[i] * 0.5 * zoom
		r.drawCircle(sx, sy, radius, c)
	}
}

// drawCircle fills an anti-aliased disc; horizontal distances are
// compressed by the cell aspect so discs look round in a terminal
func (r *Renderer) drawCircle(cx, cy, radius float64, c RGBA) {
	if radius <= 0 {
		return
	}
	ry := int(math.Ceil(radius + 0.5))
	rx := int(math.Ceil((radius + 0.5) / parameter.CellAspect))
	icx := int(math.Round(cx))
	icy := int(math.Round(cy))

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			d := math.Hypot(float64(dx)*parameter.CellAspect, float64(dy))
			// smoothed radial cutoff
			cov := radius + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov >= 1 {
				cov = 1
				// node interiors occlude arrow glyphs drawn earlier
				r.buf.SetRune(icx+dx, icy+dy, 0, RGBBlack)
			}
			r.buf.SetBg(icx+dx, icy+dy, c.RGB, BlendAlpha, c.A*cov)
		}
	}
}
