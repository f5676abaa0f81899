package input

import (
	"math"

	"github.com/seliware/genremap/camera"
	"github.com/seliware/genremap/parameter"
)

// GestureState is the machine's current gesture
type GestureState uint8

const (
	StateIdle GestureState = iota
	StateDragging
	StatePinching
)

type pointer struct {
	id   int
	x, y float64
}

// Machine is the pointer gesture state machine. It drives the camera
// directly (pan, anchored zoom) and emits Intents for clicks and hovers.
type Machine struct {
	cam   *camera.Camera
	state GestureState

	// drag accumulation; a release below the click threshold is a click
	dragDist     float64
	lastX, lastY float64

	// active pointers, at most two tracked
	pointers []pointer

	// pinch tracking
	pinchDist float64
	pinchMidX float64
	pinchMidY float64
}

// NewMachine creates a gesture machine driving cam
func NewMachine(cam *camera.Camera) *Machine {
	return &Machine{
		cam:      cam,
		pointers: make([]pointer, 0, 2),
	}
}

// State returns the current gesture state
func (m *Machine) State() GestureState {
	return m.state
}

// Process consumes one pointer event and returns a semantic intent, or
// nil when the gesture is still in progress
func (m *Machine) Process(ev PointerEvent) *Intent {
	switch ev.Kind {
	case PointerDown:
		return m.processDown(ev)
	case PointerUp:
		return m.processUp(ev)
	case PointerMove:
		return m.processMove(ev)
	case PointerWheel:
		return m.processWheel(ev)
	}
	return nil
}

func (m *Machine) processDown(ev PointerEvent) *Intent {
	m.setPointer(ev.ID, ev.X, ev.Y)

	switch len(m.pointers) {
	case 1:
		m.state = StateDragging
		m.dragDist = 0
		m.lastX, m.lastY = ev.X, ev.Y
	case 2:
		m.state = StatePinching
		m.pinchDist = m.pointerDistance()
		m.pinchMidX, m.pinchMidY = m.pointerMidpoint()
	}
	return nil
}

func (m *Machine) processUp(ev PointerEvent) *Intent {
	wasState := m.state
	m.removePointer(ev.ID)

	switch len(m.pointers) {
	case 0:
		m.state = StateIdle
		if wasState == StateDragging && m.dragDist < parameter.ClickThreshold {
			return &Intent{Type: IntentClick, X: ev.X, Y: ev.Y}
		}
	case 1:
		// Pinch collapsing to one finger resumes dragging with the
		// accumulated distance pre-seeded past the click threshold, so
		// lifting the second finger can never register a click
		m.state = StateDragging
		m.dragDist = parameter.ClickThreshold + 1
		m.lastX, m.lastY = m.pointers[0].x, m.pointers[0].y
	}
	return nil
}

func (m *Machine) processMove(ev PointerEvent) *Intent {
	switch m.state {
	case StateIdle:
		// non-dragging mouse move is a hover probe
		return &Intent{Type: IntentHover, X: ev.X, Y: ev.Y}

	case StateDragging:
		dx := ev.X - m.lastX
		dy := ev.Y - m.lastY
		m.lastX, m.lastY = ev.X, ev.Y
		m.dragDist += math.Hypot(dx, dy)
		m.cam.Pan(dx, dy)
		m.setPointer(ev.ID, ev.X, ev.Y)

	case StatePinching:
		m.setPointer(ev.ID, ev.X, ev.Y)
		dist := m.pointerDistance()
		midX, midY := m.pointerMidpoint()
		// zoom about the previous midpoint, then translate with the
		// midpoint so the content keeps tracking both fingers
		if m.pinchDist > 0 && dist > 0 {
			m.cam.ZoomAt(m.pinchMidX, m.pinchMidY, dist/m.pinchDist)
		}
		m.cam.Pan(midX-m.pinchMidX, midY-m.pinchMidY)
		m.pinchDist = dist
		m.pinchMidX, m.pinchMidY = midX, midY
	}
	return nil
}

func (m *Machine) processWheel(ev PointerEvent) *Intent {
	factor := math.Pow(parameter.WheelZoomStep, ev.WheelDelta)
	m.cam.ZoomAt(ev.X, ev.Y, factor)
	return nil
}

func (m *Machine) setPointer(id int, x, y float64) {
	for i := range m.pointers {
		if m.pointers[i].id == id {
			m.pointers[i].x, m.pointers[i].y = x, y
			return
		}
	}
	if len(m.pointers) < 2 {
		m.pointers = append(m.pointers, pointer{id: id, x: x, y: y})
	}
}

func (m *Machine) removePointer(id int) {
	for i := range m.pointers {
		if m.pointers[i].id == id {
			m.pointers = append(m.pointers[:i], m.pointers[i+1:]...)
			return
		}
	}
}

func (m *Machine) pointerDistance() float64 {
	if len(m.pointers) < 2 {
		return 0
	}
	return math.Hypot(m.pointers[1].x-m.pointers[0].x, m.pointers[1].y-m.pointers[0].y)
}

func (m *Machine) pointerMidpoint() (float64, float64) {
	if len(m.pointers) < 2 {
		return 0, 0
	}
	return (m.pointers[0].x + m.pointers[1].x) / 2, (m.pointers[0].y + m.pointers[1].y) / 2
}
