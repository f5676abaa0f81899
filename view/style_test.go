package view

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seliware/genremap/clock"
	"github.com/seliware/genremap/graph"
	"github.com/seliware/genremap/parameter"
)

// chainGraph is a straight influence chain 0 -> 1 -> 2 -> 3
func chainGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: 0, Label: "Blues", Pos: r2.Vec{X: 0, Y: 0}, Edges: []int32{0}},
			{ID: 1, Label: "Rock", Pos: r2.Vec{X: 4, Y: 0}, Edges: []int32{0, 1}},
			{ID: 2, Label: "Metal", Pos: r2.Vec{X: 8, Y: 0}, Edges: []int32{1, 2}},
			{ID: 3, Label: "Doom", Pos: r2.Vec{X: 12, Y: 0}, Edges: []int32{2}},
		},
		Edges: []graph.Edge{
			{Source: 0, Target: 1, Type: graph.Derivative},
			{Source: 1, Target: 2, Type: graph.Derivative},
			{Source: 2, Target: 3, Type: graph.Derivative},
		},
		MaxDegree: 2,
	}
}

func mountChainView(t *testing.T) *GraphView {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 24)

	v, err := Mount(sim, chainGraph(), DefaultSettings(), clock.NewMock(time.Unix(0, 0)), nil)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return v
}

func TestEdgeOpacityFallsWithHopDistance(t *testing.T) {
	v := mountChainView(t)
	v.SetSelected(0) // net at distance 2 covers edges 0 and 1

	maxDist := v.settings.MaxInfluenceDistance
	hop1 := v.edgeColor(0, graph.Derivative, true, maxDist)
	hop2 := v.edgeColor(1, graph.Derivative, true, maxDist)
	outside := v.edgeColor(2, graph.Derivative, true, maxDist)

	if hop1.A <= hop2.A {
		t.Errorf("hop-1 edge alpha %v not above hop-2 alpha %v", hop1.A, hop2.A)
	}
	if hop2.A <= outside.A {
		t.Errorf("hop-2 edge alpha %v not above dimmed alpha %v", hop2.A, outside.A)
	}
	if outside.A != parameter.DimAlpha {
		t.Errorf("edge outside the net has alpha %v, want the dim alpha", outside.A)
	}
}

func TestImmediateNeighboursAtFullStrength(t *testing.T) {
	v := mountChainView(t)
	v.SetSelected(0)

	maxDist := v.settings.MaxInfluenceDistance
	if got := v.nodeColor(0, true, maxDist); got.A != 1 || got.RGB != v.theme.Selected {
		t.Errorf("selected node color = %+v, want full-strength selection tint", got)
	}
	if got := v.nodeColor(1, true, maxDist); got.A != 1 || got.RGB != v.theme.Node {
		t.Errorf("immediate neighbour color = %+v, want full-strength node tint", got)
	}

	hop2 := v.nodeColor(2, true, maxDist)
	if hop2.A >= 1 {
		t.Errorf("hop-2 node alpha = %v, want below full strength", hop2.A)
	}
	if got := v.nodeColor(3, true, maxDist); got.A != parameter.DimAlpha {
		t.Errorf("node outside the net has alpha %v, want the dim alpha", got.A)
	}
}
