package core

type Kinetic struct {
	// PreciseX and PreciseY are sub-cell court coordinates in Q32.32 format
	PreciseX, PreciseY int64
	// VelX and VelY represent velocity in court units per second (Q32.32)
	VelX, VelY int64
}
