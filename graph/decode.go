package graph

import (
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r2"
)

// wireNode mirrors the dataset JSON node object. Node ids are implicit
// array indices.
type wireNode struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Edges []int32 `json:"edges"`
}

type wireEdge struct {
	Source NodeID `json:"source"`
	Target NodeID `json:"target"`
	Type   string `json:"ty"`
}

type wireGraph struct {
	Nodes     []wireNode `json:"nodes"`
	Edges     []wireEdge `json:"edges"`
	MaxDegree int        `json:"max_degree"`
}

// Decode reads a dataset from r. Edges with an unknown type tag are
// rejected; edges with out-of-range endpoints are kept (downstream
// consumers skip them) so that edge indices in node adjacency lists stay
// aligned with the file. MaxDegree is recomputed when the file omits it.
func Decode(r io.Reader) (*Graph, error) {
	var w wireGraph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	g := &Graph{
		Nodes:     make([]Node, len(w.Nodes)),
		Edges:     make([]Edge, len(w.Edges)),
		MaxDegree: w.MaxDegree,
	}

	for i, wn := range w.Nodes {
		g.Nodes[i] = Node{
			ID:    NodeID(i),
			Label: wn.Label,
			Pos:   r2.Vec{X: wn.X, Y: wn.Y},
			Edges: wn.Edges,
		}
	}

	for i, we := range w.Edges {
		ty, err := ParseEdgeType(we.Type)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		g.Edges[i] = Edge{Source: we.Source, Target: we.Target, Type: ty}
	}

	// Drop adjacency entries pointing past the edge array; they cannot
	// be traversed and would otherwise need bounds checks everywhere.
	for i := range g.Nodes {
		edges := g.Nodes[i].Edges[:0]
		for _, ei := range g.Nodes[i].Edges {
			if ei >= 0 && int(ei) < len(g.Edges) {
				edges = append(edges, ei)
			}
		}
		g.Nodes[i].Edges = edges
	}

	if g.MaxDegree == 0 {
		for i := range g.Nodes {
			if d := len(g.Nodes[i].Edges); d > g.MaxDegree {
				g.MaxDegree = d
			}
		}
	}

	return g, nil
}
