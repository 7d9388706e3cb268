package constant

import "github.com/lixenwraith/paddle-duel/vmath"

// Pre-computed Q32.32 physics constants
// Initialized once, used by the engine to avoid repeated FromFloat calls
var (
	PaddleSpeed      = vmath.FromFloat(PaddleSpeedFloat)
	PaddleOffset     = vmath.FromFloat(PaddleOffsetFloat)
	PaddleHalfWidth  = vmath.FromFloat(PaddleHalfWidthFloat)
	PaddleHalfHeight = vmath.FromFloat(PaddleHalfHeightFloat)

	BallRadius      = vmath.FromFloat(BallRadiusFloat)
	BallSpeed       = vmath.FromFloat(BallSpeedFloat)
	BallInitialVelX = vmath.FromFloat(BallInitialVelXFloat)
	BallInitialVelY = vmath.FromFloat(BallInitialVelYFloat)

	WallThickness = vmath.FromFloat(WallThicknessFloat)
	WallOffset    = vmath.FromFloat(WallOffsetFloat)
	WallLength    = vmath.FromFloat(WallLengthFloat)

	// BounceSpread is the half-range of the randomized paddle bounce
	// angle: draws land in (-π/4, π/4) before side orientation
	BounceSpread = int64(vmath.EighthTurn)
)
