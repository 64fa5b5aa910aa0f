// Package controller implements a first-person walking rig: input fusion,
// mouse/touch look, per-step kinematics with jump and gravity, box collision
// against static obstacles, head-bob and boundary regeneration.
//
// Event handlers only write input state and orientation. Position is
// written by Update alone, once per frame.
package controller

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Controller drives a Rig from input events and a per-frame Update.
type Controller struct {
	cfg Config
	rig *Rig

	input    InputState
	vertical VerticalMotion
	bob      HeadBob
	touches  TouchBindings
	filter   CollisionFilter

	// intent and speed used by the last Update
	intent mgl32.Vec2
	speed  float32

	// held counts per key; several bindings may map to the same key
	held [keyCount]int

	world World
	hud   HUD
	log   logrus.FieldLogger

	sources     []InputSource
	unsubscribe []func()
}

// New creates a controller with its rig at the configured spawn point and
// subscribes it to any sources given in opts.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		rig:    NewRig(cfg.SpawnPosition()),
		bob:    NewHeadBob(cfg.HeadBob),
		filter: CollisionFilter{Radius: cfg.PlayerRadius},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		c.log = discard
	}

	for _, src := range c.sources {
		c.unsubscribe = append(c.unsubscribe, src.Subscribe(c))
	}
	return c
}

// Update runs one integration pass. deltaTime is in seconds and only
// advances the head-bob phase.
func (c *Controller) Update(deltaTime float32) {
	c.bob.Undo(&c.rig.Camera)

	intent := c.MovementIntent()
	running := c.Running()
	c.intent = intent
	c.speed = c.cfg.Speed(running)

	prev := c.rig.Position
	move := Displacement(c.rig, intent, c.speed)
	height := c.vertical.Step(prev.Y(), c.cfg.Gravity, c.cfg.EyeHeight)

	next := mgl32.Vec3{prev.X() + move.X(), height, prev.Z() + move.Z()}
	if c.world != nil {
		next = c.filter.Reject(prev, next, c.world.Obstacles())
	}
	c.rig.Position = next

	moving := intent.X() != 0 || intent.Y() != 0
	c.bob.Apply(&c.rig.Camera, deltaTime, c.IsGrounded(), moving, running)

	c.checkBoundary()
}

// MovementIntent resolves the current input state into an intent vector.
func (c *Controller) MovementIntent() mgl32.Vec2 {
	return ResolveMovementIntent(c.input)
}

// Running reports whether either the run key or the run touch is held.
func (c *Controller) Running() bool {
	return c.input.Running || c.touches.Bound(RoleRun)
}

// Jump starts a jump if the rig is not already in one.
func (c *Controller) Jump() {
	if c.vertical.Jump(c.cfg.JumpStrength) {
		c.log.Debug("jump")
	}
}

// IsGrounded reports whether the rig stands exactly at eye height.
func (c *Controller) IsGrounded() bool {
	return c.rig.Position.Y() == c.cfg.EyeHeight
}

// Velocity returns the horizontal speed the last Update moved at and the
// vertical velocity.
func (c *Controller) Velocity() mgl32.Vec2 {
	return mgl32.Vec2{c.intent.Len() * c.speed, c.vertical.VelocityY}
}

// Reset puts the rig at spawn and clears vertical motion and head-bob.
// Orientation is kept.
func (c *Controller) Reset() {
	c.bob.Undo(&c.rig.Camera)
	c.bob = NewHeadBob(c.cfg.HeadBob)
	c.vertical = VerticalMotion{}
	c.intent = mgl32.Vec2{}
	c.speed = 0
	c.rig.Position = c.cfg.SpawnPosition()
}

// Dispose drops every input subscription. It is safe to call more than once.
func (c *Controller) Dispose() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
	c.sources = nil
	c.touches.Reset()
	c.input = InputState{}
	c.held = [keyCount]int{}
}

// Rig returns the controlled rig.
func (c *Controller) Rig() *Rig {
	return c.rig
}

// Input returns a copy of the current input state.
func (c *Controller) Input() InputState {
	return c.input
}

// Vertical returns the jump/gravity state.
func (c *Controller) Vertical() VerticalMotion {
	return c.vertical
}

// HeadBobOffset returns the offset currently applied to the camera.
func (c *Controller) HeadBobOffset() mgl32.Vec3 {
	return c.bob.Offset()
}

// Config returns the controller tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// look applies and clears the pending look delta.
func (c *Controller) look() {
	ApplyLook(c.rig, c.input.Look, c.cfg.LookSensitivity)
	c.input.Look = mgl32.Vec2{}
}

// KeyDown implements Listener. A key stays down until every binding that
// pressed it has been released.
func (c *Controller) KeyDown(k Key) {
	if k == KeyJump {
		c.Jump()
		return
	}
	if k < 0 || k >= keyCount {
		return
	}
	c.held[k]++
	c.input.setKey(k, true)
}

// KeyUp implements Listener.
func (c *Controller) KeyUp(k Key) {
	if k == KeyJump || k < 0 || k >= keyCount {
		return
	}
	if c.held[k] > 0 {
		c.held[k]--
	}
	c.input.setKey(k, c.held[k] > 0)
}

// PointerMove implements Listener.
func (c *Controller) PointerMove(delta mgl32.Vec2) {
	c.input.Look = c.input.Look.Add(delta)
	c.look()
}

// Analog implements Listener. It is ignored while a touch owns the joystick.
// Vectors longer than one are scaled back onto the unit circle.
func (c *Controller) Analog(v mgl32.Vec2) {
	if c.touches.Bound(RoleJoystick) {
		return
	}
	c.input.Joystick = ClampAnalog(v)
}

// TouchStart implements Listener. The touch is bound by the control it
// starts on: joystick, run, or drag-look for anything else. A jump touch
// fires once and binds nothing. A joystick touch that finds the joystick
// taken falls back to drag-look.
func (c *Controller) TouchStart(id int, at mgl32.Vec2) {
	region := RegionNone
	if c.hud != nil {
		region = c.hud.RegionAt(at)
	}

	switch region {
	case RegionJump:
		c.Jump()
	case RegionRun:
		c.touches.Bind(RoleRun, id, at)
	case RegionJoystick:
		if c.touches.Bind(RoleJoystick, id, at) {
			c.input.Joystick = c.hud.JoystickVector(at)
			return
		}
		c.touches.Bind(RoleDragLook, id, at)
	default:
		c.touches.Bind(RoleDragLook, id, at)
	}
}

// TouchMove implements Listener.
func (c *Controller) TouchMove(id int, at mgl32.Vec2) {
	role, delta, ok := c.touches.Move(id, at)
	if !ok {
		return
	}

	switch role {
	case RoleJoystick:
		c.input.Joystick = c.hud.JoystickVector(at)
	case RoleDragLook:
		c.input.Look = c.input.Look.Add(delta)
		c.look()
	}
}

// TouchEnd implements Listener.
func (c *Controller) TouchEnd(id int) {
	role, ok := c.touches.Release(id)
	if ok && role == RoleJoystick {
		c.input.Joystick = mgl32.Vec2{}
	}
}
