package vmath

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned
// rectangle given by center and half-extents. Touching counts as overlap.
// The circle center is clamped to the rectangle to find the nearest point,
// then the squared distance is compared against r².
func CircleIntersectsRect(cx, cy, r, rectX, rectY, halfW, halfH int64) bool {
	nx := Clamp(cx, rectX-halfW, rectX+halfW)
	ny := Clamp(cy, rectY-halfH, rectY+halfH)
	dx := cx - nx
	dy := cy - ny
	return Mul(dx, dx)+Mul(dy, dy) <= Mul(r, r)
}
