// Package coverage computes influence nets: the nodes and edges
// reachable from a start node within a hop budget, following edges only
// in their stored source-to-target direction. Immediate neighbours are
// tracked separately and ignore both direction and budget.
package coverage

import (
	"github.com/seliware/genremap/graph"
)

// Net is the result of a coverage computation. NodeDistance maps a node
// to the first hop at which it was reached (start node at 0);
// EdgeDistance maps an edge index to the hop at which it reached a new
// node. Immediate holds the start node plus every node touching any
// visible edge incident to it, in either direction.
type Net struct {
	Start        graph.NodeID
	NodeDistance map[graph.NodeID]int
	EdgeDistance map[int32]int
	Immediate    map[graph.NodeID]struct{}
}

// NodeHop returns the hop distance of id, false when outside the net
func (n *Net) NodeHop(id graph.NodeID) (int, bool) {
	if n == nil {
		return 0, false
	}
	d, ok := n.NodeDistance[id]
	return d, ok
}

// EdgeHop returns the hop at which edge index ei was traversed
func (n *Net) EdgeHop(ei int32) (int, bool) {
	if n == nil {
		return 0, false
	}
	d, ok := n.EdgeDistance[ei]
	return d, ok
}

// IsImmediate reports whether id touches the start node directly
func (n *Net) IsImmediate(id graph.NodeID) bool {
	if n == nil {
		return false
	}
	_, ok := n.Immediate[id]
	return ok
}

// Contains reports whether id is anywhere in the net
func (n *Net) Contains(id graph.NodeID) bool {
	_, ok := n.NodeHop(id)
	return ok
}

// Compute runs a multi-frontier BFS from start. Edges are followed
// forward only and must have a visible type; edges between two
// already-visited nodes are not recorded. Frontiers are slices, so for a
// fixed graph and mask the output is exactly reproducible.
func Compute(g *graph.Graph, start graph.NodeID, visible [graph.EdgeTypeCount]bool, maxHops int) *Net {
	net := &Net{
		Start:        start,
		NodeDistance: make(map[graph.NodeID]int),
		EdgeDistance: make(map[int32]int),
		Immediate:    make(map[graph.NodeID]struct{}),
	}

	startNode, ok := g.Node(start)
	if !ok {
		return net
	}

	net.NodeDistance[start] = 0
	immediate(g, startNode, visible, net.Immediate)

	frontier := []graph.NodeID{start}
	for hop := 1; hop <= maxHops && len(frontier) > 0; hop++ {
		var next []graph.NodeID
		for _, id := range frontier {
			n, ok := g.Node(id)
			if !ok {
				continue
			}
			for _, ei := range n.Edges {
				if ei < 0 || int(ei) >= len(g.Edges) {
					continue
				}
				e := g.Edges[ei]
				if !visible[e.Type] || !g.ValidEdge(e) {
					continue
				}
				// influence flows forward only
				if e.Source != id {
					continue
				}
				if _, seen := net.NodeDistance[e.Target]; seen {
					continue
				}
				net.NodeDistance[e.Target] = hop
				net.EdgeDistance[ei] = hop
				next = append(next, e.Target)
			}
		}
		frontier = next
	}

	return net
}

// immediate fills out the direction-agnostic, budget-independent
// neighbour set: start plus every node on a visible edge incident to it
func immediate(g *graph.Graph, start *graph.Node, visible [graph.EdgeTypeCount]bool, out map[graph.NodeID]struct{}) {
	out[start.ID] = struct{}{}
	for _, ei := range start.Edges {
		if ei < 0 || int(ei) >= len(g.Edges) {
			continue
		}
		e := g.Edges[ei]
		if !visible[e.Type] || !g.ValidEdge(e) {
			continue
		}
		if e.Source == start.ID {
			out[e.Target] = struct{}{}
		} else {
			out[e.Source] = struct{}{}
		}
	}
}

// FromPath builds a net from an externally supplied ordered node path,
// highlighting it directionally instead of the default radial net. Node
// k sits at distance k; the forward visible edge between consecutive
// path nodes is recorded at the later node's distance. The immediate set
// is that of the first path node.
func FromPath(g *graph.Graph, path []graph.NodeID, visible [graph.EdgeTypeCount]bool) *Net {
	net := &Net{
		Start:        graph.None,
		NodeDistance: make(map[graph.NodeID]int),
		EdgeDistance: make(map[int32]int),
		Immediate:    make(map[graph.NodeID]struct{}),
	}
	if len(path) == 0 {
		return net
	}
	net.Start = path[0]

	for i, id := range path {
		if _, ok := g.Node(id); !ok {
			continue
		}
		if _, seen := net.NodeDistance[id]; !seen {
			net.NodeDistance[id] = i
		}
	}

	if first, ok := g.Node(path[0]); ok {
		immediate(g, first, visible, net.Immediate)
	}

	for i := 0; i+1 < len(path); i++ {
		from, ok := g.Node(path[i])
		if !ok {
			continue
		}
		for _, ei := range from.Edges {
			if ei < 0 || int(ei) >= len(g.Edges) {
				continue
			}
			e := g.Edges[ei]
			if !visible[e.Type] || !g.ValidEdge(e) {
				continue
			}
			if e.Source == path[i] && e.Target == path[i+1] {
				net.EdgeDistance[ei] = i + 1
				break
			}
		}
	}

	return net
}
