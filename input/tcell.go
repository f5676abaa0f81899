package input

import (
	"github.com/gdamore/tcell/v2"
)

// TCellTranslator converts tcell mouse events into PointerEvents. tcell
// reports a button mask per event, so presses and releases are derived
// by diffing against the previous mask. Terminals have no touch; the
// pinch path of the machine is reachable only from other backends and
// from tests.
type TCellTranslator struct {
	lastButtons tcell.ButtonMask
}

// Translate maps one tcell mouse event to zero or more pointer events
func (t *TCellTranslator) Translate(ev *tcell.EventMouse) []PointerEvent {
	x, y := ev.Position()
	fx, fy := float64(x), float64(y)
	buttons := ev.Buttons()

	var out []PointerEvent

	if buttons&tcell.WheelUp != 0 {
		out = append(out, PointerEvent{Kind: PointerWheel, X: fx, Y: fy, WheelDelta: 1})
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, PointerEvent{Kind: PointerWheel, X: fx, Y: fy, WheelDelta: -1})
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := t.lastButtons&tcell.Button1 != 0
	t.lastButtons = buttons

	switch {
	case pressed && !wasPressed:
		out = append(out, PointerEvent{Kind: PointerDown, X: fx, Y: fy})
	case !pressed && wasPressed:
		out = append(out, PointerEvent{Kind: PointerUp, X: fx, Y: fy})
	default:
		out = append(out, PointerEvent{Kind: PointerMove, X: fx, Y: fy})
	}

	return out
}
