package controller

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewPlacesRigAtSpawn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn = Spawn{X: 3, Z: 4}
	c := New(cfg)

	if got := c.Rig().Position; got != (mgl32.Vec3{3, cfg.EyeHeight, 4}) {
		t.Fatalf("rig position = %v", got)
	}
	if !c.IsGrounded() {
		t.Fatal("new rig not grounded")
	}
}

func TestIdleUpdateKeepsRigStill(t *testing.T) {
	c := New(DefaultConfig())
	start := c.Rig().Position

	for i := 0; i < 120; i++ {
		c.Update(1.0 / 60)
	}
	if c.Rig().Position != start {
		t.Fatalf("idle rig drifted to %v", c.Rig().Position)
	}
	if v := c.Velocity(); v != (mgl32.Vec2{}) {
		t.Fatalf("idle velocity = %v", v)
	}
}

func TestVelocityQuery(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	c.KeyDown(KeyForward)
	c.KeyDown(KeyLeft)
	c.KeyDown(KeyRun)
	c.Update(1.0 / 60)

	v := c.Velocity()
	if !approx(v.X(), cfg.BaseSpeed*cfg.RunMultiplier) {
		t.Fatalf("horizontal velocity = %v, want %v", v.X(), cfg.BaseSpeed*cfg.RunMultiplier)
	}
	if v.Y() != 0 {
		t.Fatalf("vertical velocity = %v on the ground", v.Y())
	}

	c.Jump()
	if v := c.Velocity(); v.Y() != cfg.JumpStrength {
		t.Fatalf("vertical velocity after jump = %v", v.Y())
	}
}

func TestVelocityReportsLastStep(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg)
	c.KeyDown(KeyForward)
	c.Update(1.0 / 60)

	// Pressing run between frames does not change the step already taken.
	c.KeyDown(KeyRun)
	if v := c.Velocity(); !approx(v.X(), cfg.BaseSpeed) {
		t.Fatalf("horizontal velocity = %v, want %v", v.X(), cfg.BaseSpeed)
	}

	c.Update(1.0 / 60)
	if v := c.Velocity(); !approx(v.X(), cfg.BaseSpeed*cfg.RunMultiplier) {
		t.Fatalf("horizontal velocity = %v, want %v", v.X(), cfg.BaseSpeed*cfg.RunMultiplier)
	}

	c.Reset()
	if v := c.Velocity(); v != (mgl32.Vec2{}) {
		t.Fatalf("velocity after reset = %v", v)
	}
}

func TestDisposeRemovesListeners(t *testing.T) {
	keyboard := newMockSource()
	pointer := newMockSource()

	for i := 0; i < 10; i++ {
		c := New(DefaultConfig(), WithSources(keyboard, pointer))
		if len(keyboard.listeners) != 1 || len(pointer.listeners) != 1 {
			t.Fatalf("cycle %d: listeners = %d, %d", i, len(keyboard.listeners), len(pointer.listeners))
		}
		c.Dispose()
		c.Dispose()
		if len(keyboard.listeners) != 0 || len(pointer.listeners) != 0 {
			t.Fatalf("cycle %d: leaked listeners %d, %d", i, len(keyboard.listeners), len(pointer.listeners))
		}
	}
}

func TestSourceEventsReachController(t *testing.T) {
	src := newMockSource()
	c := New(DefaultConfig(), WithSources(src))
	defer c.Dispose()

	src.keyDown(KeyForward)
	src.keyDown(KeyJump)
	if !c.Input().Forward {
		t.Fatal("forward key not delivered")
	}
	if !c.Vertical().Jumping {
		t.Fatal("jump key not delivered")
	}
	if c.Rig().Position != c.Config().SpawnPosition() {
		t.Fatal("event handler moved the rig")
	}
}

func TestReset(t *testing.T) {
	c := New(DefaultConfig())
	c.KeyDown(KeyForward)
	for i := 0; i < 10; i++ {
		c.Update(1.0 / 60)
	}
	c.Jump()
	c.PointerMove(mgl32.Vec2{30, 0})
	yaw := c.Rig().Yaw

	c.Reset()
	if c.Rig().Position != c.Config().SpawnPosition() {
		t.Fatalf("position after reset = %v", c.Rig().Position)
	}
	if c.Rig().Camera.Position != (mgl32.Vec3{}) || c.HeadBobOffset() != (mgl32.Vec3{}) {
		t.Fatalf("head-bob survived reset: %v", c.Rig().Camera.Position)
	}
	if c.Vertical() != (VerticalMotion{}) {
		t.Fatalf("vertical state after reset = %+v", c.Vertical())
	}
	if c.Rig().Yaw != yaw {
		t.Fatal("reset changed orientation")
	}
}
