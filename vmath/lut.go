package vmath

import "math"

const (
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// SinLUT and CosLUT hold Q32.32 samples over one full rotation
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64
)

func init() {
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Sin(rad) * ScaleF)
		CosLUT[i] = int64(math.Cos(rad) * ScaleF)
	}
}

// Sin returns sine of an angle in rotation units (Scale = 2π)
func Sin(angle int64) int64 {
	return SinLUT[(angle>>(Shift-10))&LUTMask]
}

// Cos returns cosine of an angle in rotation units (Scale = 2π)
func Cos(angle int64) int64 {
	return CosLUT[(angle>>(Shift-10))&LUTMask]
}
