package controller

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTouchBindingsTable(t *testing.T) {
	var tb TouchBindings
	at := mgl32.Vec2{}

	if !tb.Bind(RoleJoystick, 1, at) {
		t.Fatal("bind joystick to 1 failed")
	}
	if tb.Bind(RoleJoystick, 2, at) {
		t.Fatal("joystick bound twice")
	}
	if tb.Bind(RoleRun, 1, at) {
		t.Fatal("touch 1 bound to a second role")
	}
	if !tb.Bind(RoleRun, 2, at) || !tb.Bind(RoleDragLook, 3, at) {
		t.Fatal("free roles refused")
	}
	if tb.Bind(RoleNone, 4, at) {
		t.Fatal("RoleNone accepted")
	}

	if role, ok := tb.Release(1); !ok || role != RoleJoystick {
		t.Fatalf("Release(1) = %v, %v", role, ok)
	}
	if tb.Bound(RoleJoystick) {
		t.Fatal("joystick still bound after release")
	}
	if _, ok := tb.Release(1); ok {
		t.Fatal("released touch 1 twice")
	}
	if !tb.Bind(RoleJoystick, 4, at) {
		t.Fatal("joystick not reusable after release")
	}
}

func TestTouchMoveDelta(t *testing.T) {
	var tb TouchBindings
	tb.Bind(RoleDragLook, 7, mgl32.Vec2{10, 10})

	role, delta, ok := tb.Move(7, mgl32.Vec2{13, 6})
	if !ok || role != RoleDragLook || delta != (mgl32.Vec2{3, -4}) {
		t.Fatalf("Move() = %v, %v, %v", role, delta, ok)
	}
	if _, _, ok := tb.Move(8, mgl32.Vec2{}); ok {
		t.Fatal("move of unbound touch reported ok")
	}
}

func TestTouchJoystickIsExclusive(t *testing.T) {
	c := New(DefaultConfig(), WithHUD(mockHUD{}))
	rig := c.Rig()

	c.TouchStart(1, mgl32.Vec2{50, 0})
	if got := c.Input().Joystick; got != (mgl32.Vec2{0, 1}) {
		t.Fatalf("joystick = %v, want (0, 1)", got)
	}

	// The second joystick touch becomes drag-look and cannot steer the stick.
	c.TouchStart(2, mgl32.Vec2{60, 50})
	if role, _ := c.touches.RoleOf(2); role != RoleDragLook {
		t.Fatalf("second joystick touch bound to %v, want drag-look", role)
	}
	c.TouchMove(2, mgl32.Vec2{80, 50})
	if got := c.Input().Joystick; got != (mgl32.Vec2{0, 1}) {
		t.Fatalf("second touch moved joystick to %v", got)
	}
	if rig.Yaw == 0 {
		t.Fatal("drag-look fallback did not turn the rig")
	}

	// A third joystick touch finds both roles taken and is ignored.
	c.TouchStart(3, mgl32.Vec2{10, 10})
	if _, ok := c.touches.RoleOf(3); ok {
		t.Fatal("third joystick touch was bound")
	}

	c.TouchEnd(1)
	if got := c.Input().Joystick; got != (mgl32.Vec2{}) {
		t.Fatalf("joystick after release = %v", got)
	}
}

func TestTouchRegions(t *testing.T) {
	c := New(DefaultConfig(), WithHUD(mockHUD{}))

	c.TouchStart(1, mgl32.Vec2{150, 0})
	if !c.Vertical().Jumping {
		t.Fatal("jump region did not jump")
	}
	if _, ok := c.touches.RoleOf(1); ok {
		t.Fatal("jump touch bound a role")
	}

	c.TouchStart(2, mgl32.Vec2{250, 0})
	if !c.Running() {
		t.Fatal("run region did not hold run")
	}
	c.TouchEnd(2)
	if c.Running() {
		t.Fatal("run still held after release")
	}

	c.TouchStart(3, mgl32.Vec2{500, 500})
	c.TouchMove(3, mgl32.Vec2{500, 520})
	if c.Rig().Camera.Pitch >= 0 {
		t.Fatalf("dragging down should pitch down, pitch = %v", c.Rig().Camera.Pitch)
	}
}

func TestTouchJoystickMovesRig(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg, WithHUD(mockHUD{}))

	c.TouchStart(1, mgl32.Vec2{50, 50})
	c.TouchMove(1, mgl32.Vec2{50, 25}) // half forward
	c.Update(1.0 / 60)

	want := cfg.SpawnPosition().Add(mgl32.Vec3{0, 0, -cfg.BaseSpeed * 0.5})
	got := c.Rig().Position
	if !approx(got.X(), want.X()) || !approx(got.Z(), want.Z()) {
		t.Fatalf("position = %v, want %v", got, want)
	}
	if v := c.Velocity(); !approx(v.X(), cfg.BaseSpeed*0.5) {
		t.Fatalf("horizontal velocity = %v, want %v", v.X(), cfg.BaseSpeed*0.5)
	}
}

func TestAnalogIgnoredWhileTouchOwnsJoystick(t *testing.T) {
	c := New(DefaultConfig(), WithHUD(mockHUD{}))

	c.Analog(mgl32.Vec2{0.2, 0.2})
	if got := c.Input().Joystick; got != (mgl32.Vec2{0.2, 0.2}) {
		t.Fatalf("analog joystick = %v", got)
	}

	c.TouchStart(1, mgl32.Vec2{100 - 1, 50})
	c.Analog(mgl32.Vec2{-1, 0})
	if got := c.Input().Joystick; got.X() < 0 {
		t.Fatalf("analog overrode touch joystick: %v", got)
	}
}
