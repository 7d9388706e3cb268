package engine

import (
	"github.com/lixenwraith/paddle-duel/constant"
	"github.com/lixenwraith/paddle-duel/input"
)

// Config fixes the court's numeric constants at session start.
// All values are Q32.32 court units.
type Config struct {
	PaddleSpeed      int64
	PaddleOffset     int64
	PaddleHalfWidth  int64
	PaddleHalfHeight int64

	BallRadius      int64
	BallSpeed       int64
	BallInitialVelX int64
	BallInitialVelY int64

	WallThickness int64
	WallOffset    int64

	Policy  BouncePolicy
	Spread  int64
	Scoring bool
	// Walls false reproduces the earliest court variant: paddles only
	Walls bool

	LeftUp, LeftDown   input.Key
	RightUp, RightDown input.Key
}

// DefaultConfig is the richest variant: walls, scoring, angled bounce
func DefaultConfig() Config {
	return Config{
		PaddleSpeed:      constant.PaddleSpeed,
		PaddleOffset:     constant.PaddleOffset,
		PaddleHalfWidth:  constant.PaddleHalfWidth,
		PaddleHalfHeight: constant.PaddleHalfHeight,

		BallRadius:      constant.BallRadius,
		BallSpeed:       constant.BallSpeed,
		BallInitialVelX: constant.BallInitialVelX,
		BallInitialVelY: constant.BallInitialVelY,

		WallThickness: constant.WallThickness,
		WallOffset:    constant.WallOffset,

		Policy:  BounceAngled,
		Spread:  constant.BounceSpread,
		Scoring: true,
		Walls:   true,

		LeftUp:    input.KeyW,
		LeftDown:  input.KeyS,
		RightUp:   input.KeyArrowUp,
		RightDown: input.KeyArrowDown,
	}
}

// ClassicConfig is the earliest variant: no walls, no score,
// full-vector inversion on any collision
func ClassicConfig() Config {
	cfg := DefaultConfig()
	cfg.Policy = BounceInvert
	cfg.Scoring = false
	cfg.Walls = false
	return cfg
}
