package physics

import (
	"testing"

	"github.com/lixenwraith/paddle-duel/core"
	"github.com/lixenwraith/paddle-duel/vmath"
)

// TestIntegrateLinearity verifies integrating by t1 then t2 lands on the
// same position as a single step of t1+t2 when no collision intervenes
func TestIntegrateLinearity(t *testing.T) {
	t1 := vmath.FromFloat(0.25)
	t2 := vmath.FromFloat(0.75)

	split := core.Kinetic{VelX: vmath.FromInt(3), VelY: vmath.FromInt(-2)}
	whole := split

	Integrate(&split, t1)
	Integrate(&split, t2)
	Integrate(&whole, t1+t2)

	if split.PreciseX != whole.PreciseX || split.PreciseY != whole.PreciseY {
		t.Errorf("Expected (%v, %v), got (%v, %v)",
			vmath.ToFloat(whole.PreciseX), vmath.ToFloat(whole.PreciseY),
			vmath.ToFloat(split.PreciseX), vmath.ToFloat(split.PreciseY))
	}
	if split.PreciseX != vmath.FromInt(3) || split.PreciseY != vmath.FromInt(-2) {
		t.Errorf("Expected one second of travel to cover (3, -2), got (%v, %v)",
			vmath.ToFloat(split.PreciseX), vmath.ToFloat(split.PreciseY))
	}
}

// TestIntegrateZeroVelocity verifies zero velocity is a steady state
func TestIntegrateZeroVelocity(t *testing.T) {
	k := core.Kinetic{PreciseX: vmath.FromInt(7), PreciseY: vmath.FromInt(-9)}
	Integrate(&k, vmath.FromInt(10))
	if k.PreciseX != vmath.FromInt(7) || k.PreciseY != vmath.FromInt(-9) {
		t.Errorf("Expected position unchanged, got (%v, %v)",
			vmath.ToFloat(k.PreciseX), vmath.ToFloat(k.PreciseY))
	}
}

// TestReflectY verifies only the vertical component is negated
func TestReflectY(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(100), VelY: vmath.FromInt(80)}
	ReflectY(&k)
	if k.VelX != vmath.FromInt(100) || k.VelY != vmath.FromInt(-80) {
		t.Errorf("Expected (100, -80), got (%v, %v)",
			vmath.ToFloat(k.VelX), vmath.ToFloat(k.VelY))
	}
}

// TestInvert verifies both components are negated
func TestInvert(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(100), VelY: vmath.FromInt(100)}
	Invert(&k)
	if k.VelX != vmath.FromInt(-100) || k.VelY != vmath.FromInt(-100) {
		t.Errorf("Expected (-100, -100), got (%v, %v)",
			vmath.ToFloat(k.VelX), vmath.ToFloat(k.VelY))
	}
}

// TestSetHeading verifies angle zero points the velocity along +x at
// exactly the requested speed
func TestSetHeading(t *testing.T) {
	var k core.Kinetic
	SetHeading(&k, vmath.FromInt(200), 0)
	if k.VelX != vmath.FromInt(200) || k.VelY != 0 {
		t.Errorf("Expected (200, 0), got (%v, %v)",
			vmath.ToFloat(k.VelX), vmath.ToFloat(k.VelY))
	}

	SetHeading(&k, vmath.FromInt(200), vmath.HalfTurn)
	if k.VelX != vmath.FromInt(-200) || k.VelY != 0 {
		t.Errorf("Expected (-200, 0), got (%v, %v)",
			vmath.ToFloat(k.VelX), vmath.ToFloat(k.VelY))
	}
}
