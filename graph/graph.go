// Package graph holds the immutable genre graph: nodes with precomputed
// world positions and directed typed edges. The viewer never mutates it
// after load.
package graph

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// NodeID identifies a node by its index into Graph.Nodes
type NodeID int32

// None marks the absence of a node (no selection, no hover, hit miss)
const None NodeID = -1

// EdgeType is the relationship carried by a directed edge
type EdgeType uint8

const (
	Derivative EdgeType = iota
	Subgenre
	FusionGenre

	// EdgeTypeCount is the size of the closed edge type set
	EdgeTypeCount = 3
)

// String returns the dataset name of the edge type
func (t EdgeType) String() string {
	switch t {
	case Derivative:
		return "Derivative"
	case Subgenre:
		return "Subgenre"
	case FusionGenre:
		return "FusionGenre"
	default:
		return "Unknown"
	}
}

// ParseEdgeType maps a dataset type tag to an EdgeType
func ParseEdgeType(s string) (EdgeType, error) {
	switch s {
	case "Derivative":
		return Derivative, nil
	case "Subgenre":
		return Subgenre, nil
	case "FusionGenre":
		return FusionGenre, nil
	default:
		return 0, fmt.Errorf("unknown edge type %q", s)
	}
}

// Node is a genre with its display label, layout position and incident
// edge indices. Edges holds indices into Graph.Edges for both directions.
type Node struct {
	ID    NodeID
	Label string
	Pos   r2.Vec
	Edges []int32
}

// Edge is a directed typed link between two nodes
type Edge struct {
	Source NodeID
	Target NodeID
	Type   EdgeType
}

// Graph is the loaded dataset. MaxDegree is the highest incident edge
// count across all nodes, used only for visual scaling.
type Graph struct {
	Nodes     []Node
	Edges     []Edge
	MaxDegree int
}

// Node returns the node for id, or false when id is out of range
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.Nodes) {
		return nil, false
	}
	return &g.Nodes[id], true
}

// Degree returns the incident edge count for id, 0 when out of range
func (g *Graph) Degree(id NodeID) int {
	n, ok := g.Node(id)
	if !ok {
		return 0
	}
	return len(n.Edges)
}

// ValidEdge reports whether both endpoints are in range
func (g *Graph) ValidEdge(e Edge) bool {
	return e.Source >= 0 && int(e.Source) < len(g.Nodes) &&
		e.Target >= 0 && int(e.Target) < len(g.Nodes)
}

// Validate counts edges with out-of-range endpoints. Dangling edges are
// survivable (they are skipped during traversal and hit testing) so the
// count is reported rather than an error raised per edge.
func (g *Graph) Validate() (dangling int) {
	for _, e := range g.Edges {
		if !g.ValidEdge(e) {
			dangling++
		}
	}
	return dangling
}
