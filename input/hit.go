package input

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seliware/genremap/graph"
)

// Hit returns the nearest node whose visual radius contains the world
// point, or graph.None. A node's radius is its stored size times 0.5
// times scale; pass a larger scale for hover forgiveness than for exact
// clicks. Linear scan, acceptable at this dataset's scale.
func Hit(g *graph.Graph, sizes []float64, pt r2.Vec, scale float64) graph.NodeID {
	best := graph.None
	bestDist := 0.0

	for i := range g.Nodes {
		if i >= len(sizes) {
			break
		}
		d := r2.Sub(pt, g.Nodes[i].Pos)
		distSq := d.X*d.X + d.Y*d.Y
		r := sizes[i] * 0.5 * scale
		if distSq >= r*r {
			continue
		}
		if best == graph.None || distSq < bestDist {
			best = g.Nodes[i].ID
			bestDist = distSq
		}
	}
	return best
}
