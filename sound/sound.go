// Package sound plays short generated cue tones for selection and
// hover. Audio is optional: initialization failure or a disabled
// setting turns every call into a no-op, never an error for the view.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces the cue tones
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker when enabled. The returned error is
// informational; the player is always usable.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// Select plays the selection cue
func (p *Player) Select() {
	p.tone(660, 60*time.Millisecond)
}

// Hover plays the softer hover cue
func (p *Player) Hover() {
	p.tone(880, 25*time.Millisecond)
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
