package engine

import (
	"github.com/lixenwraith/paddle-duel/core"
	"github.com/lixenwraith/paddle-duel/event"
	"github.com/lixenwraith/paddle-duel/physics"
	"github.com/lixenwraith/paddle-duel/vmath"
)

// BouncePolicy selects the collision response
type BouncePolicy uint8

const (
	// BounceAngled gives paddles a randomized exit angle at fixed speed
	// and plain colliders a vertical reflection
	BounceAngled BouncePolicy = iota
	// BounceInvert negates the full velocity vector on any collider
	// (the earliest court variant, no walls or score)
	BounceInvert
)

// RandSource produces uniform Q32.32 values in [0, Scale).
// *vmath.FastRand satisfies it; tests inject fixed sequences.
type RandSource interface {
	Unit() int64
}

// Resolver reacts to ball/collider overlap once per frame.
// State is re-evaluated from scratch each frame; re-entrant bounces are
// prevented by stopping after the first overlapping collider, not by
// any cooldown flag.
type Resolver struct {
	Policy BouncePolicy
	// Spread is the half-range of the paddle bounce angle in rotation units
	Spread int64
	// Speed is the fixed ball speed restored on paddle bounce
	Speed int64
	// Scoring enables goal detection on the wall reflection path
	Scoring bool
	// WallOffset is the horizontal goal boundary
	WallOffset int64
	Rand       RandSource
}

// Resolve tests the ball against colliders in enumeration order and
// applies the response for the first overlap found. At most one collision
// is resolved per call; with no overlap the ball is untouched.
func (r *Resolver) Resolve(ball *Ball, colliders []Collider, score *core.Score, queue *event.Queue, frame uint64) {
	for _, c := range colliders {
		rect := c.Bounds()
		if !vmath.CircleIntersectsRect(
			ball.Kin.PreciseX, ball.Kin.PreciseY, ball.Radius,
			rect.X, rect.Y, rect.HalfW, rect.HalfH,
		) {
			continue
		}

		side := core.SideRight
		if ball.Kin.PreciseX < rect.X {
			side = core.SideLeft
		}

		if r.Policy == BounceInvert {
			physics.Invert(&ball.Kin)
			queue.Push(event.Event{Type: bounceType(c), Side: side, Frame: frame})
			break
		}

		switch c.(type) {
		case *Paddle:
			physics.SetHeading(&ball.Kin, r.Speed, r.bounceAngle(side))
			queue.Push(event.Event{Type: event.TypePaddleBounce, Side: side, Frame: frame})
		default:
			physics.ReflectY(&ball.Kin)
			queue.Push(event.Event{Type: event.TypeWallBounce, Side: side, Frame: frame})
			if r.Scoring && r.crossedBoundary(ball) {
				ball.ResetToCenter()
				score.Add(side)
				queue.Push(event.Event{Type: event.TypeGoal, Side: side, Frame: frame})
			}
		}
		break
	}
}

// bounceAngle draws a uniform angle in (-Spread, +Spread), flipped
// toward the far court half by adding π when the hit is on the left side
func (r *Resolver) bounceAngle(side core.Side) int64 {
	angle := vmath.Mul(r.Rand.Unit(), 2*r.Spread) - r.Spread
	if side == core.SideLeft {
		angle += vmath.HalfTurn
	}
	return angle
}

// crossedBoundary reports whether the ball's horizontal extent passed
// the outer wall offset on either side
func (r *Resolver) crossedBoundary(ball *Ball) bool {
	return ball.Kin.PreciseX-ball.Radius < -r.WallOffset ||
		ball.Kin.PreciseX+ball.Radius > r.WallOffset
}

func bounceType(c Collider) event.Type {
	if _, ok := c.(*Paddle); ok {
		return event.TypePaddleBounce
	}
	return event.TypeWallBounce
}
