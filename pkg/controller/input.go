package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// InputState is everything the event handlers write between frames.
//
// Joystick is an analog vector within the unit circle. Look is the transient
// pointer delta, cleared once applied.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Running  bool

	Joystick mgl32.Vec2
	Look     mgl32.Vec2
}

// ResolveMovementIntent turns the input state into a rig-local intent
// vector, x to the right and y forward.
//
// A non-zero joystick overrides the digital keys entirely and is returned
// as is, so partial deflection keeps its magnitude. Digital keys are
// normalized so diagonals are no faster than a single axis.
func ResolveMovementIntent(in InputState) mgl32.Vec2 {
	if math32.Abs(in.Joystick.X())+math32.Abs(in.Joystick.Y()) > 0 {
		return in.Joystick
	}

	var v mgl32.Vec2
	if in.Forward {
		v[1]++
	}
	if in.Backward {
		v[1]--
	}
	if in.Right {
		v[0]++
	}
	if in.Left {
		v[0]--
	}

	l := math32.Sqrt(v.Dot(v))
	if l == 0 {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / l)
}

// ClampAnalog limits v to the unit circle, keeping its direction.
func ClampAnalog(v mgl32.Vec2) mgl32.Vec2 {
	l := math32.Sqrt(v.Dot(v))
	if l <= 1 {
		return v
	}
	return v.Mul(1 / l)
}

// setKey records a digital key transition. Jump is an edge, not a held
// state, and is handled by the caller.
func (in *InputState) setKey(k Key, down bool) {
	switch k {
	case KeyForward:
		in.Forward = down
	case KeyBackward:
		in.Backward = down
	case KeyLeft:
		in.Left = down
	case KeyRight:
		in.Right = down
	case KeyRun:
		in.Running = down
	}
}
