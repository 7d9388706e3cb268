package core

// Rect is an axis-aligned rectangle given by center and half-extents (Q32.32)
type Rect struct {
	X, Y         int64
	HalfW, HalfH int64
}
