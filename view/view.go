// Package view wires the camera, renderer, coverage nets, label engine
// and gesture machine into a single graph view running a continuous
// frame loop on one goroutine. All state mutation happens on that
// goroutine; timers post closures back into it.
package view

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seliware/genremap/camera"
	"github.com/seliware/genremap/clock"
	"github.com/seliware/genremap/coverage"
	"github.com/seliware/genremap/graph"
	"github.com/seliware/genremap/input"
	"github.com/seliware/genremap/label"
	"github.com/seliware/genremap/parameter"
	"github.com/seliware/genremap/render"
	"github.com/seliware/genremap/sound"
)

// GraphView orchestrates the interactive graph display
type GraphView struct {
	g      *graph.Graph
	screen tcell.Screen
	clk    clock.Provider
	log    *slog.Logger

	cam        *camera.Camera
	buf        *render.Buffer
	ren        *render.Renderer
	labels     *label.Engine
	gesture    *input.Machine
	translator input.TCellTranslator

	theme    Theme
	settings Settings
	audio    *sound.Player

	selected graph.NodeID
	hovered  graph.NodeID
	focused  graph.NodeID
	selNet   *coverage.Net
	hovNet   *coverage.Net

	sizes      []float64
	styleDirty bool

	hoverDebounce debounce
	post          chan func()
	quit          chan struct{}

	// OnSelect fires after the selection changes, with graph.None on clear
	OnSelect func(graph.NodeID)
	// OnHover fires after a debounced hover change
	OnHover func(graph.NodeID)
}

// Mount builds a view onto an initialized screen. The screen must
// already be acquired; callers treat acquisition failure as fatal since
// there is no fallback renderer.
func Mount(screen tcell.Screen, g *graph.Graph, settings Settings, clk clock.Provider, logger *slog.Logger) (*GraphView, error) {
	if screen == nil {
		return nil, errors.New("view: no screen to mount on")
	}
	if clk == nil {
		clk = clock.NewMonotonic()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	screen.EnableMouse()
	w, h := screen.Size()

	cam := camera.New(clk)
	cam.Resize(float64(w), float64(h))
	cam.SetOffset(float64(settings.SidePanelWidth), 0)

	buf := render.NewBuffer(w, h)
	ren := render.NewRenderer(buf)

	v := &GraphView{
		g:        g,
		screen:   screen,
		clk:      clk,
		log:      logger,
		cam:      cam,
		buf:      buf,
		ren:      ren,
		labels:   label.NewEngine(clk),
		theme:    DefaultTheme(),
		settings: settings,
		selected: graph.None,
		hovered:  graph.None,
		focused:  graph.None,
		post:     make(chan func(), 16),
		quit:     make(chan struct{}),
	}
	v.gesture = input.NewMachine(cam)

	v.uploadStatic()
	cam.FitToContent(nodePositions(g), parameter.FitPadding)
	// style arrays exist before the first frame so hit testing works
	// for events arriving ahead of the first tick
	v.restyle()

	if dangling := g.Validate(); dangling > 0 {
		logger.Warn("dataset has dangling edges", "count", dangling)
	}

	audio, err := sound.NewPlayer(settings.Sound)
	if err != nil {
		// audio is a garnish, the view runs without it
		logger.Warn("audio initialization failed", "error", err)
	}
	v.audio = audio

	return v, nil
}

// uploadStatic pushes the per-dataset position arrays; they never
// change afterwards
func (v *GraphView) uploadStatic() {
	v.ren.SetNodePositions(nodePositions(v.g))

	edgePos := make([]r2.Vec, 2*len(v.g.Edges))
	for i, e := range v.g.Edges {
		if !v.g.ValidEdge(e) {
			continue // left at origin; restyle keeps its alpha at zero
		}
		edgePos[2*i] = v.g.Nodes[e.Source].Pos
		edgePos[2*i+1] = v.g.Nodes[e.Target].Pos
	}
	v.ren.SetEdgePositions(edgePos)
}

func nodePositions(g *graph.Graph) []r2.Vec {
	pos := make([]r2.Vec, len(g.Nodes))
	for i := range g.Nodes {
		pos[i] = g.Nodes[i].Pos
	}
	return pos
}

// Run drives the frame loop until a quit key or Stop. The caller owns
// screen teardown.
func (v *GraphView) Run() error {
	ticker := time.NewTicker(parameter.FrameIntervalMs * time.Millisecond)
	defer ticker.Stop()
	defer v.audio.Close()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-v.quit:
			return nil
		case fn := <-v.post:
			fn()
		case ev := <-events:
			if !v.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.frame()
		}
	}
}

// Stop ends the frame loop from another goroutine
func (v *GraphView) Stop() {
	select {
	case <-v.quit:
	default:
		close(v.quit)
	}
}

func (v *GraphView) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		v.cam.Resize(float64(w), float64(h))
		v.buf.Resize(w, h)
		v.screen.Sync()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEscape:
			v.SetSelected(graph.None)
		case ev.Rune() == 'f':
			v.cam.FitToContent(nodePositions(v.g), parameter.FitPadding)
		}

	case *tcell.EventMouse:
		for _, pe := range v.translator.Translate(ev) {
			v.handlePointer(pe)
		}
	}
	return true
}

func (v *GraphView) handlePointer(pe input.PointerEvent) {
	switch pe.Kind {
	case input.PointerDown:
		// a direct interaction stops any animated transition and any
		// pending hover so the gesture is never masked by stale state
		v.cam.CancelAnimation()
		v.hoverDebounce.cancel()
	case input.PointerMove:
		v.labels.NoteCursor(pe.X, pe.Y)
	}

	intent := v.gesture.Process(pe)
	if intent == nil {
		return
	}

	switch intent.Type {
	case input.IntentClick:
		v.hoverDebounce.cancel()
		world := v.cam.ScreenToWorld(intent.X, intent.Y)
		v.SetSelected(input.Hit(v.g, v.sizes, world, parameter.ClickHitScale))

	case input.IntentHover:
		world := v.cam.ScreenToWorld(intent.X, intent.Y)
		hit := input.Hit(v.g, v.sizes, world, parameter.HoverHitScale)
		if v.labels.SuppressHover(hit) || hit == v.hovered {
			// the newest position wins; a hover still pending for an
			// older position must not fire after the cursor moved on
			v.hoverDebounce.cancel()
			return
		}
		v.hoverDebounce.schedule(parameter.HoverDebounce, func() {
			v.post <- func() { v.applyHover(hit) }
		})
	}
}

// SetSelected changes the selection and recomputes its coverage net.
// When the settings carry an explicit highlight path it replaces the
// radial net.
func (v *GraphView) SetSelected(id graph.NodeID) {
	v.selected = id
	switch {
	case id == graph.None:
		v.selNet = nil
	case len(v.settings.HighlightPath) > 0:
		v.selNet = coverage.FromPath(v.g, v.settings.HighlightPath, v.settings.VisibleMask())
	default:
		v.selNet = coverage.Compute(v.g, id, v.settings.VisibleMask(), v.settings.MaxInfluenceDistance)
	}
	v.styleDirty = true

	if id != graph.None {
		v.audio.Select()
		if v.settings.ZoomOnSelect {
			v.animateToNode(id)
		}
	}
	if v.OnSelect != nil {
		v.OnSelect(id)
	}
}

// SetHovered changes the hover immediately, bypassing the debounce
func (v *GraphView) SetHovered(id graph.NodeID) {
	v.hoverDebounce.cancel()
	v.applyHover(id)
}

// Focus selects a node programmatically and always animates to it
func (v *GraphView) Focus(id graph.NodeID) {
	v.focused = id
	v.SetSelected(id)
	if id != graph.None {
		v.animateToNode(id)
	}
}

// SetSettings applies new preferences and recomputes the active nets
func (v *GraphView) SetSettings(s Settings) {
	v.settings = s
	v.cam.SetOffset(float64(s.SidePanelWidth), 0)
	v.SetSelected(v.selected)
	if v.hovered != graph.None {
		v.hovNet = coverage.Compute(v.g, v.hovered, s.VisibleMask(), s.MaxInfluenceDistance)
	}
	v.styleDirty = true
}

// Selected returns the current selection, graph.None when empty
func (v *GraphView) Selected() graph.NodeID { return v.selected }

// Hovered returns the current debounced hover, graph.None when empty
func (v *GraphView) Hovered() graph.NodeID { return v.hovered }

func (v *GraphView) applyHover(id graph.NodeID) {
	if id == v.hovered {
		return
	}
	v.hovered = id
	if id == graph.None {
		v.hovNet = nil
	} else {
		v.hovNet = coverage.Compute(v.g, id, v.settings.VisibleMask(), v.settings.MaxInfluenceDistance)
		v.audio.Hover()
	}
	v.styleDirty = true
	if v.OnHover != nil {
		v.OnHover(id)
	}
}

func (v *GraphView) animateToNode(id graph.NodeID) {
	n, ok := v.g.Node(id)
	if !ok {
		return
	}
	zoom := v.cam.Zoom
	if zoom < parameter.FocusZoom {
		zoom = parameter.FocusZoom
	}
	v.cam.AnimateTo(n.Pos.X, n.Pos.Y, zoom, parameter.FocusDuration)
}

// frame redraws unconditionally: tick the camera, restyle if state
// changed, run the three render passes, lay out labels, flush
func (v *GraphView) frame() {
	v.cam.Tick()
	if v.styleDirty {
		v.restyle()
		v.styleDirty = false
	}

	v.ren.Render(v.cam.ViewMatrix(), v.theme.Background, v.settings.ArrowScale, v.cam.Zoom)

	if v.settings.ShowLabels {
		v.drawLabels()
	}

	v.buf.Flush(v.screen)
	v.screen.Show()
}

func (v *GraphView) drawLabels() {
	placed := v.labels.Layout(label.Frame{
		Graph:        v.g,
		Camera:       v.cam,
		Selected:     v.selected,
		Hovered:      v.hovered,
		SelectionNet: v.selNet,
		HoverNet:     v.hovNet,
		MaxLabels:    parameter.MaxLabels,
	})

	for _, p := range placed {
		fg := v.labelColor(p)
		x := p.X
		for _, r := range p.Text {
			v.buf.SetRune(x, p.Y, r, fg)
			x += runewidth.RuneWidth(r)
		}
	}
}

func (v *GraphView) labelColor(p label.Placed) render.RGB {
	switch {
	case p.Node == v.selected:
		return v.theme.Selected
	case p.Node == v.hovered:
		return v.theme.Hovered
	case p.Tier == label.TierOther:
		return v.theme.LabelDim
	default:
		return v.theme.LabelFg
	}
}
