package engine

import (
	"github.com/lixenwraith/paddle-duel/core"
	"github.com/lixenwraith/paddle-duel/event"
	"github.com/lixenwraith/paddle-duel/input"
	"github.com/lixenwraith/paddle-duel/physics"
	"github.com/lixenwraith/paddle-duel/vmath"
)

// World owns the full session state: one ball, two paddles, the static
// wall frame, and the score. All mutation happens in Step's single
// sequential pass; there is no concurrent access to any of it.
type World struct {
	Ball    *Ball
	Paddles [2]*Paddle // [0] left, [1] right
	Walls   []*Wall
	Score   core.Score
	Events  *event.Queue

	colliders   []Collider
	resolver    Resolver
	paddleSpeed int64
	frame       uint64
}

// NewWorld builds the court from cfg. Walls are placed once at setup:
// left/right verticals at ±offset and top/bottom horizontals, each
// spanning the derived wall length so corners are closed.
func NewWorld(cfg Config, rng RandSource) *World {
	w := &World{
		Ball: &Ball{
			Kin: core.Kinetic{
				VelX: cfg.BallInitialVelX,
				VelY: cfg.BallInitialVelY,
			},
			Radius: cfg.BallRadius,
		},
		Events:      event.NewQueue(),
		paddleSpeed: cfg.PaddleSpeed,
		resolver: Resolver{
			Policy:     cfg.Policy,
			Spread:     cfg.Spread,
			Speed:      cfg.BallSpeed,
			Scoring:    cfg.Scoring,
			WallOffset: cfg.WallOffset,
			Rand:       rng,
		},
	}

	w.Paddles[0] = &Paddle{
		Kin:   core.Kinetic{PreciseX: -cfg.PaddleOffset},
		HalfW: cfg.PaddleHalfWidth,
		HalfH: cfg.PaddleHalfHeight,
		Up:    cfg.LeftUp,
		Down:  cfg.LeftDown,
	}
	w.Paddles[1] = &Paddle{
		Kin:   core.Kinetic{PreciseX: cfg.PaddleOffset},
		HalfW: cfg.PaddleHalfWidth,
		HalfH: cfg.PaddleHalfHeight,
		Up:    cfg.RightUp,
		Down:  cfg.RightDown,
	}
	w.colliders = append(w.colliders, w.Paddles[0], w.Paddles[1])

	if cfg.Walls {
		halfT := cfg.WallThickness >> 1
		halfL := cfg.WallOffset + halfT // wall length = 2*offset + thickness
		w.Walls = []*Wall{
			{Rect: core.Rect{X: -cfg.WallOffset, HalfW: halfT, HalfH: halfL}},
			{Rect: core.Rect{X: cfg.WallOffset, HalfW: halfT, HalfH: halfL}},
			{Rect: core.Rect{Y: cfg.WallOffset, HalfW: halfL, HalfH: halfT}},
			{Rect: core.Rect{Y: -cfg.WallOffset, HalfW: halfL, HalfH: halfT}},
		}
		for _, wall := range w.Walls {
			w.colliders = append(w.colliders, wall)
		}
	}

	return w
}

// Step runs one frame: integrate, actuate paddles, resolve collisions.
// The order is load-bearing: paddle movement must be visible to this
// frame's collision test, and integration must precede resolution so the
// resolver reacts to the just-updated ball position. dt is Q32.32 seconds.
func (w *World) Step(keys input.Pressed, dt int64) {
	w.frame++

	physics.Integrate(&w.Ball.Kin, dt)
	for _, p := range w.Paddles {
		physics.Integrate(&p.Kin, dt)
	}

	step := vmath.Mul(w.paddleSpeed, dt)
	for _, p := range w.Paddles {
		// Both directions may apply in one frame; opposite keys cancel.
		// No clamping: a paddle can be driven past the court bounds.
		if keys.Held(p.Up) {
			p.Kin.PreciseY += step
		}
		if keys.Held(p.Down) {
			p.Kin.PreciseY -= step
		}
	}

	w.resolver.Resolve(w.Ball, w.colliders, &w.Score, w.Events, w.frame)
}

// Frame returns the number of completed steps
func (w *World) Frame() uint64 {
	return w.frame
}
