// Package input turns raw pointer events into camera motion and
// semantic intents (click, hover) through an explicit gesture state
// machine, and provides node hit testing.
package input

// PointerKind is the raw event class
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
	PointerWheel
)

// PointerEvent is a backend-independent pointer event. Mouse events use
// pointer id 0; touch backends assign one id per finger so the machine
// can track a two-finger pinch.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	X    float64
	Y    float64

	// WheelDelta is wheel ticks, positive toward zoom in
	WheelDelta float64
}

// IntentType classifies the machine's output
type IntentType uint8

const (
	IntentClick IntentType = iota
	IntentHover
)

// Intent is a semantic gesture result to be acted on by the caller. The
// caller hit-tests the position and, for hover, debounces.
type Intent struct {
	Type IntentType
	X    float64
	Y    float64
}
