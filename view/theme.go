package view

import (
	"github.com/seliware/genremap/graph"
	"github.com/seliware/genremap/render"
)

// Theme holds the view's palette
type Theme struct {
	Background render.RGB

	// EdgeColor is the base tint per edge type
	EdgeColor [graph.EdgeTypeCount]render.RGB

	Node      render.RGB
	Selected  render.RGB
	Hovered   render.RGB
	LabelFg   render.RGB
	LabelDim  render.RGB
	FadeColor render.RGB // ramp target for deep hops and dimmed state
}

// DefaultTheme is a dark palette; derivative edges amber, subgenres
// teal, fusions violet
func DefaultTheme() Theme {
	return Theme{
		Background: render.RGB{R: 16, G: 16, B: 24},
		EdgeColor: [graph.EdgeTypeCount]render.RGB{
			graph.Derivative:  {R: 224, G: 160, B: 48},
			graph.Subgenre:    {R: 64, G: 192, B: 176},
			graph.FusionGenre: {R: 168, G: 112, B: 224},
		},
		Node:      render.RGB{R: 200, G: 200, B: 210},
		Selected:  render.RGB{R: 255, G: 232, B: 120},
		Hovered:   render.RGB{R: 120, G: 220, B: 255},
		LabelFg:   render.RGB{R: 230, G: 230, B: 235},
		LabelDim:  render.RGB{R: 140, G: 140, B: 150},
		FadeColor: render.RGB{R: 60, G: 60, B: 76},
	}
}
