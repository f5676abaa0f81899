// Package label places a bounded, non-overlapping set of node labels
// each frame. Candidates are split into four strictly ordered tiers and
// packed greedily, so a label from a higher tier is never evicted by a
// lower one; a time-decayed recent-hover tier keeps labels from
// flickering as the pointer moves away.
package label

import (
	"math"
	"sort"
	"time"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/seliware/genremap/camera"
	"github.com/seliware/genremap/clock"
	"github.com/seliware/genremap/coverage"
	"github.com/seliware/genremap/graph"
	"github.com/seliware/genremap/parameter"
)

// Tier orders label candidates; lower values always place first
type Tier uint8

const (
	TierSelectedNet Tier = iota
	TierHoverNet
	TierRecent
	TierOther
	tierCount
)

// Rect is a half-open cell rectangle [X0,X1) x [Y0,Y1)
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Overlaps reports whether two rectangles intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// contains tests a point in cell space
func (r Rect) contains(x, y float64) bool {
	return x >= float64(r.X0) && x < float64(r.X1) && y >= float64(r.Y0) && y < float64(r.Y1)
}

// Placed is one accepted label
type Placed struct {
	Node graph.NodeID
	Text string
	X, Y int // text origin in cells
	Rect Rect
	Tier Tier

	// Emphasis is degree relative to the graph maximum, for styling
	Emphasis float64
}

// Frame is the per-frame input to Layout
type Frame struct {
	Graph        *graph.Graph
	Camera       *camera.Camera
	Selected     graph.NodeID
	Hovered      graph.NodeID
	SelectionNet *coverage.Net
	HoverNet     *coverage.Net
	MaxLabels    int
}

type candidate struct {
	node     graph.NodeID
	priority int
}

// Engine holds the cross-frame state: the recent-hover set and the
// hover lock that stops a label appearing under a stationary cursor
// from re-triggering hover
type Engine struct {
	clk    clock.Provider
	recent map[graph.NodeID]time.Time

	prevPlaced map[graph.NodeID]Rect

	cursorX, cursorY float64
	lockNode         graph.NodeID
	lockX, lockY     float64
	lockActive       bool
}

// NewEngine creates a label engine
func NewEngine(clk clock.Provider) *Engine {
	return &Engine{
		clk:        clk,
		recent:     make(map[graph.NodeID]time.Time),
		prevPlaced: make(map[graph.NodeID]Rect),
		lockNode:   graph.None,
	}
}

// NoteCursor records pointer movement. Moving past the lock threshold
// releases the hover lock.
func (e *Engine) NoteCursor(x, y float64) {
	e.cursorX, e.cursorY = x, y
	if e.lockActive && math.Hypot(x-e.lockX, y-e.lockY) > parameter.HoverLockThreshold {
		e.lockActive = false
		e.lockNode = graph.None
	}
}

// SuppressHover reports whether a hover on id must be ignored because
// its label just appeared under the stationary cursor
func (e *Engine) SuppressHover(id graph.NodeID) bool {
	return e.lockActive && id == e.lockNode
}

// Layout produces this frame's label set. Candidates outside the camera
// bounds are culled; the rest are partitioned into tiers, sorted by
// priority descending and packed greedily up to f.MaxLabels.
func (e *Engine) Layout(f Frame) []Placed {
	now := e.clk.Now()
	if f.Hovered != graph.None {
		e.recent[f.Hovered] = now
	}
	for id, t := range e.recent {
		if now.Sub(t) > parameter.HoverDecayWindow {
			delete(e.recent, id)
		}
	}

	min, max := f.Camera.VisibleBounds()

	var tiers [tierCount][]candidate
	for i := range f.Graph.Nodes {
		n := &f.Graph.Nodes[i]
		if n.Label == "" {
			continue
		}
		if n.Pos.X < min.X || n.Pos.X > max.X || n.Pos.Y < min.Y || n.Pos.Y > max.Y {
			continue
		}
		tier, pri := e.classify(f, n)
		tiers[tier] = append(tiers[tier], candidate{node: n.ID, priority: pri})
	}

	maxLabels := f.MaxLabels
	if maxLabels <= 0 {
		maxLabels = parameter.MaxLabels
	}

	placed := make([]Placed, 0, maxLabels)
	rects := make([]Rect, 0, maxLabels)

	for tier := Tier(0); tier < tierCount; tier++ {
		cands := tiers[tier]
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].priority != cands[b].priority {
				return cands[a].priority > cands[b].priority
			}
			return cands[a].node < cands[b].node
		})

		for _, c := range cands {
			if len(placed) >= maxLabels {
				break
			}
			n, ok := f.Graph.Node(c.node)
			if !ok {
				continue
			}
			p := e.place(f, n, tier)
			overlap := false
			for _, r := range rects {
				if p.Rect.Overlaps(r) {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			placed = append(placed, p)
			rects = append(rects, p.Rect)
		}
	}

	e.updateLock(placed)
	return placed
}

// classify computes the tier and the banded priority. The bands are
// disjoint, so higher classifications can never be outscored by sums of
// lower ones.
func (e *Engine) classify(f Frame, n *graph.Node) (Tier, int) {
	pri := len(n.Edges)

	inSelNet := n.ID == f.Selected || f.SelectionNet.Contains(n.ID)
	inHovNet := n.ID == f.Hovered || f.HoverNet.Contains(n.ID)
	_, isRecent := e.recent[n.ID]

	if n.ID == f.Selected {
		pri += parameter.PrioritySelected
	}
	if n.ID == f.Hovered {
		pri += parameter.PriorityHovered
	}
	if f.SelectionNet.Contains(n.ID) {
		pri += parameter.PrioritySelectionNet
	}
	if f.HoverNet.Contains(n.ID) {
		pri += parameter.PriorityHoverNet
	}
	if isRecent {
		pri += parameter.PriorityRecentHover
	}

	switch {
	case inSelNet:
		return TierSelectedNet, pri
	case inHovNet:
		return TierHoverNet, pri
	case isRecent:
		return TierRecent, pri
	default:
		return TierOther, pri
	}
}

// place derives the screen rectangle from character count; the rect is
// inflated by one cell horizontally so neighbouring labels keep a gap
func (e *Engine) place(f Frame, n *graph.Node, tier Tier) Placed {
	sx, sy := f.Camera.WorldToScreen(n.Pos)
	x := int(math.Round(sx)) + 2
	y := int(math.Round(sy))
	w := runewidth.StringWidth(n.Label)

	emphasis := 0.0
	if f.Graph.MaxDegree > 0 {
		emphasis = float64(len(n.Edges)) / float64(f.Graph.MaxDegree)
	}

	return Placed{
		Node:     n.ID,
		Text:     n.Label,
		X:        x,
		Y:        y,
		Rect:     Rect{X0: x - 1, Y0: y, X1: x + w + 1, Y1: y + 1},
		Tier:     tier,
		Emphasis: emphasis,
	}
}

// updateLock engages the hover lock when a label that was absent last
// frame now sits directly under the cursor
func (e *Engine) updateLock(placed []Placed) {
	next := make(map[graph.NodeID]Rect, len(placed))
	for _, p := range placed {
		next[p.Node] = p.Rect
		if e.lockActive {
			continue
		}
		if _, was := e.prevPlaced[p.Node]; was {
			continue
		}
		if p.Rect.contains(e.cursorX, e.cursorY) {
			e.lockActive = true
			e.lockNode = p.Node
			e.lockX, e.lockY = e.cursorX, e.cursorY
		}
	}
	e.prevPlaced = next
}
