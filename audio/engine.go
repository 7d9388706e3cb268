package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/paddle-duel/event"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays short tones for resolver events through the system
// speaker. Initialization failure is non-fatal: the engine stays silent
// and every call becomes a no-op.
type Engine struct {
	ready bool
}

// NewEngine initializes the speaker with a 100ms buffer
func NewEngine() (*Engine, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return &Engine{}, err
	}
	return &Engine{ready: true}, nil
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e.ready {
		speaker.Close()
	}
}

// Handle plays the tone for each resolver event in order
func (e *Engine) Handle(events []event.Event) {
	if !e.ready {
		return
	}
	for _, ev := range events {
		freq, dur := toneFor(ev.Type)
		e.play(freq, dur)
	}
}

// toneFor maps a resolver outcome to pitch and duration
func toneFor(t event.Type) (freq float64, dur time.Duration) {
	switch t {
	case event.TypePaddleBounce:
		return 880, 50 * time.Millisecond
	case event.TypeWallBounce:
		return 440, 50 * time.Millisecond
	case event.TypeGoal:
		return 220, 300 * time.Millisecond
	}
	return 440, 50 * time.Millisecond
}

func (e *Engine) play(freq float64, dur time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}
