package vmath

import "math"

// RotateVector rotates vector by angle using the Sin/Cos LUT
// angle is in rotation units where Scale = 2π
func RotateVector(x, y, angle int64) (rx, ry int64) {
	cos := Cos(angle)
	sin := Sin(angle)
	rx = Mul(x, cos) - Mul(y, sin)
	ry = Mul(x, sin) + Mul(y, cos)
	return rx, ry
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y int64) int64 {
	return Mul(x, x) + Mul(y, y)
}

// Magnitude returns Euclidean length sqrt(x² + y²)
// Computed through float64 for accuracy; not for hot paths
func Magnitude(x, y int64) int64 {
	fx, fy := ToFloat(x), ToFloat(y)
	return FromFloat(math.Hypot(fx, fy))
}

// ReflectAxisY returns velocity reflected off a horizontal surface
// Use for top/bottom boundary collision
func ReflectAxisY(velX, velY int64) (int64, int64) {
	return velX, -velY
}

// ReflectAxisX returns velocity reflected off a vertical surface
func ReflectAxisX(velX, velY int64) (int64, int64) {
	return -velX, velY
}

// InvertVector negates both components
func InvertVector(x, y int64) (int64, int64) {
	return -x, -y
}
