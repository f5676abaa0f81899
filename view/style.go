package view

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seliware/genremap/graph"
	"github.com/seliware/genremap/parameter"
	"github.com/seliware/genremap/render"
)

// restyle rebuilds the dynamic renderer arrays (node colors and sizes,
// per-endpoint edge colors, arrow instances) from the current
// selection, hover, nets, theme and settings. Called only when one of
// those changed; positions stay as uploaded at mount.
func (v *GraphView) restyle() {
	g := v.g
	visible := v.settings.VisibleMask()
	maxDist := v.settings.MaxInfluenceDistance
	if maxDist < 1 {
		maxDist = 1
	}
	netsActive := v.selNet != nil || v.hovNet != nil

	sizes := make([]float64, len(g.Nodes))
	for i := range g.Nodes {
		d := 0.0
		if g.MaxDegree > 0 {
			d = float64(len(g.Nodes[i].Edges)) / float64(g.MaxDegree)
		}
		sizes[i] = parameter.NodeSizeBase + parameter.NodeSizeDegree*d
	}

	nodeColors := make([]render.RGBA, len(g.Nodes))
	for i := range g.Nodes {
		nodeColors[i] = v.nodeColor(g.Nodes[i].ID, netsActive, maxDist)
	}

	edgeColors := make([]render.RGBA, 2*len(g.Edges))
	arrows := make([]render.ArrowInstance, 0, len(g.Edges))
	for i, e := range g.Edges {
		if !visible[e.Type] || !g.ValidEdge(e) {
			continue // both endpoint alphas stay zero, no arrow
		}
		target := v.edgeColor(int32(i), e.Type, netsActive, maxDist)
		// darker source end gives each edge a direction gradient
		source := render.RGBA{
			RGB: render.Ramp(target.RGB, v.theme.Background, 0.45),
			A:   target.A * 0.8,
		}
		edgeColors[2*i] = source
		edgeColors[2*i+1] = target

		src := g.Nodes[e.Source].Pos
		dst := g.Nodes[e.Target].Pos
		dir := r2.Sub(dst, src)
		if dir.X == 0 && dir.Y == 0 {
			continue // degenerate edge, no direction to draw
		}
		arrows = append(arrows, render.ArrowInstance{
			Target:     dst,
			Dir:        dir,
			Color:      target,
			TargetSize: sizes[e.Target],
		})
	}

	v.sizes = sizes
	v.ren.SetNodeSizes(sizes)
	v.ren.SetNodeColors(nodeColors)
	v.ren.SetEdgeColors(edgeColors)
	v.ren.SetArrows(arrows)
}

func (v *GraphView) nodeColor(id graph.NodeID, netsActive bool, maxDist int) render.RGBA {
	th := &v.theme
	switch {
	case id == v.selected:
		return render.RGBA{RGB: th.Selected, A: 1}
	case id == v.hovered:
		return render.RGBA{RGB: th.Hovered, A: 1}
	case v.selNet.IsImmediate(id) || v.hovNet.IsImmediate(id):
		// direct connections are always shown at full strength
		return render.RGBA{RGB: th.Node, A: 1}
	}
	if hop, ok := v.selNet.NodeHop(id); ok {
		t := hopFade(hop, maxDist)
		return render.RGBA{RGB: render.Ramp(th.Node, th.FadeColor, 0.6*t), A: 0.95 - 0.35*t}
	}
	if hop, ok := v.hovNet.NodeHop(id); ok {
		t := hopFade(hop, maxDist)
		return render.RGBA{RGB: render.Ramp(th.Node, th.FadeColor, 0.6*t), A: 0.85 - 0.35*t}
	}
	if netsActive {
		return render.RGBA{RGB: th.Node, A: parameter.DimAlpha}
	}
	return render.RGBA{RGB: th.Node, A: 0.8}
}

func (v *GraphView) edgeColor(ei int32, ty graph.EdgeType, netsActive bool, maxDist int) render.RGBA {
	base := v.theme.EdgeColor[ty]
	if hop, ok := v.selNet.EdgeHop(ei); ok {
		t := hopFade(hop, maxDist)
		return render.RGBA{RGB: render.Ramp(base, v.theme.FadeColor, 0.7*t), A: 0.95 - 0.45*t}
	}
	if hop, ok := v.hovNet.EdgeHop(ei); ok {
		t := hopFade(hop, maxDist)
		return render.RGBA{RGB: render.Ramp(base, v.theme.FadeColor, 0.7*t), A: 0.85 - 0.4*t}
	}
	if netsActive {
		return render.RGBA{RGB: render.Ramp(base, v.theme.FadeColor, 0.8), A: parameter.DimAlpha}
	}
	return render.RGBA{RGB: base, A: 0.55}
}

// hopFade maps a hop count onto [0,1]: direct edges stay saturated,
// budget-distance ones fade the most
func hopFade(hop, maxDist int) float64 {
	if maxDist <= 1 || hop <= 1 {
		return 0
	}
	t := float64(hop-1) / float64(maxDist-1)
	if t > 1 {
		t = 1
	}
	return t
}
