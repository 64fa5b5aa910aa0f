package controller

import "github.com/go-gl/mathgl/mgl32"

// VerticalMotion is the jump/gravity state.
type VerticalMotion struct {
	VelocityY float32
	Jumping   bool
}

// Jump starts a jump unless one is already in progress. It reports whether
// the jump was taken.
func (v *VerticalMotion) Jump(strength float32) bool {
	if v.Jumping {
		return false
	}
	v.VelocityY = strength
	v.Jumping = true
	return true
}

// Step accumulates one step of gravity and returns the new height, landing
// on eyeHeight when it would sink below it.
func (v *VerticalMotion) Step(y, gravity, eyeHeight float32) float32 {
	v.VelocityY += gravity

	next := y + v.VelocityY
	if next < eyeHeight {
		next = eyeHeight
		v.VelocityY = 0
		v.Jumping = false
	}
	return next
}

// Displacement returns the horizontal move for one step of intent at the
// given speed, in world space.
func Displacement(rig *Rig, intent mgl32.Vec2, speed float32) mgl32.Vec3 {
	back, side := rig.horizontalBasis()
	return back.Mul(-intent.Y() * speed).Add(side.Mul(-intent.X() * speed))
}
