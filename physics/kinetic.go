package physics

import (
	"github.com/lixenwraith/paddle-duel/core"
	"github.com/lixenwraith/paddle-duel/vmath"
)

// Integrate advances position by velocity over dt: p = p + v*dt
// dt is Q32.32 seconds. Zero velocity is a valid steady state.
func Integrate(k *core.Kinetic, dt int64) {
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
}

// ReflectY negates the vertical velocity component, leaving x untouched
func ReflectY(k *core.Kinetic) {
	k.VelX, k.VelY = vmath.ReflectAxisY(k.VelX, k.VelY)
}

// Invert negates the full velocity vector
func Invert(k *core.Kinetic) {
	k.VelX, k.VelY = vmath.InvertVector(k.VelX, k.VelY)
}

// SetHeading sets velocity to the given speed rotated by angle
// (rotation units, Scale = 2π). Angle zero points along +x.
func SetHeading(k *core.Kinetic, speed, angle int64) {
	k.VelX, k.VelY = vmath.RotateVector(speed, 0, angle)
}
