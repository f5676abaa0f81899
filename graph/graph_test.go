package graph

import (
	"strings"
	"testing"
)

func TestParseEdgeType(t *testing.T) {
	tests := []struct {
		in      string
		want    EdgeType
		wantErr bool
	}{
		{"Derivative", Derivative, false},
		{"Subgenre", Subgenre, false},
		{"FusionGenre", FusionGenre, false},
		{"Remix", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEdgeType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEdgeType(%q) error = %v", tt.in, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseEdgeType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEdgeTypeStringRoundTrip(t *testing.T) {
	for _, ty := range []EdgeType{Derivative, Subgenre, FusionGenre} {
		back, err := ParseEdgeType(ty.String())
		if err != nil || back != ty {
			t.Errorf("round trip of %v failed: %v, %v", ty, back, err)
		}
	}
}

const sampleData = `{
	"nodes": [
		{"label": "Blues", "x": 0, "y": 0, "edges": [0, 1]},
		{"label": "Rock", "x": 3.5, "y": -2, "edges": [0]},
		{"label": "Jazz", "x": -1, "y": 4, "edges": [1]}
	],
	"edges": [
		{"source": 0, "target": 1, "ty": "Derivative"},
		{"source": 0, "target": 2, "ty": "Subgenre"}
	]
}`

func TestDecode(t *testing.T) {
	g, err := Decode(strings.NewReader(sampleData))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(g.Nodes) != 3 || len(g.Edges) != 2 {
		t.Fatalf("got %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	if g.Nodes[1].Label != "Rock" || g.Nodes[1].Pos.X != 3.5 || g.Nodes[1].Pos.Y != -2 {
		t.Errorf("node 1 decoded as %+v", g.Nodes[1])
	}
	if g.Nodes[0].ID != 0 || g.Nodes[2].ID != 2 {
		t.Error("node ids must be array indices")
	}
	if g.Edges[1].Type != Subgenre {
		t.Errorf("edge 1 type = %v", g.Edges[1].Type)
	}
	// max_degree absent from the file, recomputed from adjacency
	if g.MaxDegree != 2 {
		t.Errorf("MaxDegree = %d, want 2", g.MaxDegree)
	}
}

func TestDecodeUnknownEdgeType(t *testing.T) {
	data := `{"nodes": [], "edges": [{"source": 0, "target": 0, "ty": "Mashup"}]}`
	if _, err := Decode(strings.NewReader(data)); err == nil {
		t.Fatal("unknown edge type should fail decode")
	}
}

func TestDecodeDropsOutOfRangeAdjacency(t *testing.T) {
	data := `{
		"nodes": [{"label": "A", "x": 0, "y": 0, "edges": [0, 7, -1]}],
		"edges": [{"source": 0, "target": 0, "ty": "Derivative"}]
	}`
	g, err := Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(g.Nodes[0].Edges) != 1 || g.Nodes[0].Edges[0] != 0 {
		t.Errorf("adjacency = %v, want [0]", g.Nodes[0].Edges)
	}
}

func TestNodeLookup(t *testing.T) {
	g, err := Decode(strings.NewReader(sampleData))
	if err != nil {
		t.Fatal(err)
	}

	if n, ok := g.Node(2); !ok || n.Label != "Jazz" {
		t.Errorf("Node(2) = %v, %v", n, ok)
	}
	for _, id := range []NodeID{None, 3, -5} {
		if _, ok := g.Node(id); ok {
			t.Errorf("Node(%d) should miss", id)
		}
		if g.Degree(id) != 0 {
			t.Errorf("Degree(%d) should be 0", id)
		}
	}
	if g.Degree(0) != 2 {
		t.Errorf("Degree(0) = %d, want 2", g.Degree(0))
	}
}

func TestValidate(t *testing.T) {
	g, err := Decode(strings.NewReader(sampleData))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Validate(); got != 0 {
		t.Errorf("clean graph reported %d dangling edges", got)
	}

	g.Edges = append(g.Edges, Edge{Source: 0, Target: 99, Type: Derivative})
	if got := g.Validate(); got != 1 {
		t.Errorf("Validate = %d, want 1", got)
	}
}
