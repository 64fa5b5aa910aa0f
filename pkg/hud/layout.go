// Package hud lays out the on-screen movement controls and answers which
// control a pointer is over.
package hud

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walker/pkg/controller"
)

// Layout proportions relative to the shorter window side
const (
	joystickRadiusScale = 0.15
	buttonSizeScale     = 0.12
	marginScale         = 0.05
)

// Circle is a round control.
type Circle struct {
	Center mgl32.Vec2
	Radius float32
}

// Contains reports whether p is inside the circle.
func (c Circle) Contains(p mgl32.Vec2) bool {
	return p.Sub(c.Center).Len() <= c.Radius
}

// Rect is an axis-aligned button in window pixels.
type Rect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Contains reports whether p is inside the rectangle.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Layout places the joystick in the bottom-left corner and the jump and run
// buttons in the bottom-right corner. It implements controller.HUD.
type Layout struct {
	Joystick Circle
	Jump     Rect
	Run      Rect
}

// NewLayout builds a layout for a window of the given size.
func NewLayout(width, height int) *Layout {
	l := &Layout{}
	l.Resize(width, height)
	return l
}

// Resize recomputes control positions for a new window size.
func (l *Layout) Resize(width, height int) {
	w, h := float32(width), float32(height)
	short := w
	if h < short {
		short = h
	}

	margin := short * marginScale
	radius := short * joystickRadiusScale
	size := short * buttonSizeScale

	l.Joystick = Circle{
		Center: mgl32.Vec2{margin + radius, h - margin - radius},
		Radius: radius,
	}
	l.Jump = Rect{
		Min: mgl32.Vec2{w - margin - size, h - margin - size},
		Max: mgl32.Vec2{w - margin, h - margin},
	}
	l.Run = Rect{
		Min: mgl32.Vec2{l.Jump.Min.X() - margin - size, l.Jump.Min.Y()},
		Max: mgl32.Vec2{l.Jump.Min.X() - margin, l.Jump.Max.Y()},
	}
}

// RegionAt implements controller.HUD.
func (l *Layout) RegionAt(p mgl32.Vec2) controller.Region {
	switch {
	case l.Joystick.Contains(p):
		return controller.RegionJoystick
	case l.Jump.Contains(p):
		return controller.RegionJump
	case l.Run.Contains(p):
		return controller.RegionRun
	}
	return controller.RegionNone
}

// JoystickVector implements controller.HUD. The knob is held inside the
// joystick circle, so the result never exceeds unit length. Screen y grows
// downwards, so pushing up gives positive (forward) y.
func (l *Layout) JoystickVector(p mgl32.Vec2) mgl32.Vec2 {
	r := l.Joystick.Radius
	if r <= 0 {
		return mgl32.Vec2{}
	}

	d := p.Sub(l.Joystick.Center)
	if n := d.Len(); n > r {
		d = d.Mul(r / n)
	}
	return mgl32.Vec2{d.X() / r, -d.Y() / r}
}
