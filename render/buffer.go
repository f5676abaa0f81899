// Package render rasterizes the graph into an RGB cell framebuffer in
// three fixed passes (edges, arrow heads, nodes) every frame, then
// flushes it to a tcell screen. No dirty tracking: at this dataset's
// scale a full redraw is cheaper than invalidation bookkeeping.
package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one framebuffer element
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a cell framebuffer with compositing operations
type Buffer struct {
	cells  []Cell
	width  int
	height int
	fill   Cell
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{fill: Cell{Bg: RGBBlack}}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *Buffer) Height() int { return b.height }

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(b.fill.Bg)
}

// Clear resets all cells to the background using exponential copy
func (b *Buffer) Clear(bg RGB) {
	b.fill = Cell{Bg: bg}
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.fill
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// At returns the cell at (x, y); the zero Cell out of bounds
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg composites a background color with the given blend mode
func (b *Buffer) SetBg(x, y int, c RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	switch mode {
	case BlendReplace:
		dst.Bg = c
	case BlendAlpha:
		dst.Bg = dst.Bg.Blend(c, alpha)
	case BlendAdd:
		dst.Bg = dst.Bg.Add(c)
	case BlendMax:
		dst.Bg = dst.Bg.Max(c)
	}
}

// SetRune places a glyph with its foreground color, keeping the
// background already composited at that cell
func (b *Buffer) SetRune(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// Flush writes the framebuffer to the screen; the caller shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
