package engine

import (
	"github.com/lixenwraith/paddle-duel/core"
	"github.com/lixenwraith/paddle-duel/input"
)

// Collider is any static rectangular body the ball can strike.
// The resolver type-switches on the concrete type: a *Paddle selects
// the randomized bounce, anything else the plain wall reflection.
type Collider interface {
	Bounds() core.Rect
}

// Ball is the single moving circular body
type Ball struct {
	Kin    core.Kinetic
	Radius int64
}

// ResetToCenter puts the ball back at the court origin, keeping velocity
func (b *Ball) ResetToCenter() {
	b.Kin.PreciseX = 0
	b.Kin.PreciseY = 0
}

// Paddle is a player-controlled collider. Identity is fixed at setup;
// only the y position mutates afterwards.
type Paddle struct {
	Kin          core.Kinetic
	HalfW, HalfH int64
	Up, Down     input.Key
}

func (p *Paddle) Bounds() core.Rect {
	return core.Rect{X: p.Kin.PreciseX, Y: p.Kin.PreciseY, HalfW: p.HalfW, HalfH: p.HalfH}
}

// Wall is a static plain collider
type Wall struct {
	Rect core.Rect
}

func (w *Wall) Bounds() core.Rect {
	return w.Rect
}
