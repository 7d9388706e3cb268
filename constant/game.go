package constant

import "time"

const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a key press counts as held.
	// Terminals report presses only, so hold detection rides on autorepeat.
	KeyHoldWindow = 150 * time.Millisecond
)

// Court geometry and motion, in court units
const (
	PaddleSpeedFloat      = 200.0
	PaddleOffsetFloat     = 200.0
	PaddleHalfWidthFloat  = 5.0
	PaddleHalfHeightFloat = 25.0

	BallRadiusFloat = 10.0
	// BallSpeedFloat is the fixed speed restored on every paddle bounce
	BallSpeedFloat       = 200.0
	BallInitialVelXFloat = 100.0
	BallInitialVelYFloat = 100.0

	WallThicknessFloat = 10.0
	WallOffsetFloat    = 220.0
	// WallLengthFloat spans the court plus both corner overlaps
	WallLengthFloat = 2*WallOffsetFloat + WallThicknessFloat
)
