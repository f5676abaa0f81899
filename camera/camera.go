// Package camera maintains the 2D view state: world-space center, zoom,
// canvas size and viewport offset, plus the affine transforms between
// world and screen space and an optional animated transition.
package camera

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seliware/genremap/clock"
	"github.com/seliware/genremap/parameter"
)

// Camera is an owned state struct; only the UI thread touches it
type Camera struct {
	Center r2.Vec
	Zoom   float64 // screen cells per world unit, clamped [ZoomMin, ZoomMax]

	CanvasW float64
	CanvasH float64

	// Offset compensates for a docked side panel: it shifts the visual
	// projection center by half its value on each axis, not the scale
	OffsetX float64
	OffsetY float64

	clk  clock.Provider
	anim *animation
}

type animation struct {
	fromCenter r2.Vec
	toCenter   r2.Vec
	fromZoom   float64
	toZoom     float64
	start      time.Time
	duration   time.Duration
}

// New creates a camera at the world origin with unit zoom
func New(clk clock.Provider) *Camera {
	return &Camera{
		Zoom: 1,
		clk:  clk,
	}
}

// Resize updates the canvas dimensions in cells
func (c *Camera) Resize(w, h float64) {
	c.CanvasW = math.Max(w, 0)
	c.CanvasH = math.Max(h, 0)
}

// SetOffset updates the viewport offset; negative values are clamped
func (c *Camera) SetOffset(x, y float64) {
	c.OffsetX = math.Max(x, 0)
	c.OffsetY = math.Max(y, 0)
}

// Pan moves the view by a screen-space delta. Any running animation is
// cancelled by the direct interaction.
func (c *Camera) Pan(dx, dy float64) {
	c.anim = nil
	c.Center.X -= dx / c.Zoom
	c.Center.Y -= dy / c.Zoom
}

// ZoomAt multiplies zoom by factor anchored at a screen point: the world
// point under (sx, sy) stays under it after the change
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	c.anim = nil
	before := c.ScreenToWorld(sx, sy)
	c.Zoom = clampZoom(c.Zoom * factor)
	after := c.ScreenToWorld(sx, sy)
	c.Center = r2.Add(c.Center, r2.Sub(before, after))
}

// LookAt moves the view instantly. A zoom <= 0 keeps the current zoom.
func (c *Camera) LookAt(x, y, zoom float64) {
	c.anim = nil
	c.Center = r2.Vec{X: x, Y: y}
	if zoom > 0 {
		c.Zoom = clampZoom(zoom)
	}
}

// AnimateTo starts an ease-out-cubic transition to the target view
func (c *Camera) AnimateTo(x, y, zoom float64, duration time.Duration) {
	if duration <= 0 {
		c.LookAt(x, y, zoom)
		return
	}
	c.anim = &animation{
		fromCenter: c.Center,
		toCenter:   r2.Vec{X: x, Y: y},
		fromZoom:   c.Zoom,
		toZoom:     clampZoom(zoom),
		start:      c.clk.Now(),
		duration:   duration,
	}
}

// CancelAnimation stops any in-flight transition, leaving the view at
// its current interpolated state
func (c *Camera) CancelAnimation() {
	c.anim = nil
}

// Animating reports whether a transition is in flight
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// Tick advances the animation by wall-clock elapsed time and returns
// whether it is still running. Safe to call with zero elapsed time.
func (c *Camera) Tick() bool {
	a := c.anim
	if a == nil {
		return false
	}
	t := float64(c.clk.Now().Sub(a.start)) / float64(a.duration)
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		c.Center = a.toCenter
		c.Zoom = a.toZoom
		c.anim = nil
		return false
	}
	// ease-out-cubic
	e := 1 - math.Pow(1-t, 3)
	c.Center = r2.Add(a.fromCenter, r2.Scale(e, r2.Sub(a.toCenter, a.fromCenter)))
	c.Zoom = a.fromZoom + (a.toZoom-a.fromZoom)*e
	return true
}

// FitToContent centers on the bounding box of positions and picks the
// largest zoom that keeps the whole box inside the viewport minus the
// offset, with padding cells of margin on every side
func (c *Camera) FitToContent(positions []r2.Vec, padding float64) {
	c.anim = nil
	if len(positions) == 0 {
		return
	}

	min := positions[0]
	max := positions[0]
	for _, p := range positions[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	c.Center = r2.Scale(0.5, r2.Add(min, max))

	availW := c.CanvasW - c.OffsetX - 2*padding
	availH := c.CanvasH - c.OffsetY - 2*padding
	extentX := max.X - min.X
	extentY := max.Y - min.Y

	zoom := math.Inf(1)
	if extentX > 0 && availW > 0 {
		zoom = math.Min(zoom, availW/extentX)
	}
	if extentY > 0 && availH > 0 {
		zoom = math.Min(zoom, availH/extentY)
	}
	if !math.IsInf(zoom, 1) {
		c.Zoom = clampZoom(zoom)
	}
}

// ScreenToWorld inverse-projects a screen point
func (c *Camera) ScreenToWorld(sx, sy float64) r2.Vec {
	return r2.Vec{
		X: (sx-c.centerX())/c.Zoom + c.Center.X,
		Y: (sy-c.centerY())/c.Zoom + c.Center.Y,
	}
}

// WorldToScreen projects a world point
func (c *Camera) WorldToScreen(p r2.Vec) (sx, sy float64) {
	sx = (p.X-c.Center.X)*c.Zoom + c.centerX()
	sy = (p.Y-c.Center.Y)*c.Zoom + c.centerY()
	return sx, sy
}

// ViewMatrix returns the column-major 3x3 matrix mapping world space
// directly to clip space [-1,1], flipping the vertical axis
func (c *Camera) ViewMatrix() [9]float64 {
	w := math.Max(c.CanvasW, 1)
	h := math.Max(c.CanvasH, 1)
	sxx := 2 * c.Zoom / w
	syy := -2 * c.Zoom / h
	tx := -c.Center.X*sxx + (2*c.centerX()/w - 1)
	ty := -c.Center.Y*syy + (1 - 2*c.centerY()/h)
	return [9]float64{
		sxx, 0, 0,
		0, syy, 0,
		tx, ty, 1,
	}
}

// VisibleBounds inverse-projects the canvas corners to a world-space
// axis-aligned box
func (c *Camera) VisibleBounds() (min, max r2.Vec) {
	a := c.ScreenToWorld(0, 0)
	b := c.ScreenToWorld(c.CanvasW, c.CanvasH)
	min = r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	max = r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
	return min, max
}

// centerX is the projection center: canvas midpoint shifted by half the
// offset so content stays centered in the undocked area
func (c *Camera) centerX() float64 {
	return c.CanvasW/2 + c.OffsetX/2
}

func (c *Camera) centerY() float64 {
	return c.CanvasH/2 + c.OffsetY/2
}

func clampZoom(z float64) float64 {
	if z < parameter.ZoomMin {
		return parameter.ZoomMin
	}
	if z > parameter.ZoomMax {
		return parameter.ZoomMax
	}
	return z
}
