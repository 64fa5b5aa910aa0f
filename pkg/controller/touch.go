package controller

import "github.com/go-gl/mathgl/mgl32"

// Role is what a bound touch drives.
type Role int

const (
	RoleNone Role = iota
	RoleJoystick
	RoleDragLook
	RoleRun
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleJoystick:
		return "joystick"
	case RoleDragLook:
		return "drag-look"
	case RoleRun:
		return "run"
	}
	return "none"
}

// Region is an on-screen control a pointer can start on.
type Region int

const (
	RegionNone Region = iota
	RegionJoystick
	RegionJump
	RegionRun
)

// HUD is the UI layer that owns the on-screen controls. Points are in
// window pixels with y pointing down.
type HUD interface {
	// RegionAt returns the control under p, or RegionNone.
	RegionAt(p mgl32.Vec2) Region
	// JoystickVector maps a point to a joystick deflection, x right and y
	// forward, each within [-1, 1].
	JoystickVector(p mgl32.Vec2) mgl32.Vec2
}

type touchSlot struct {
	bound bool
	id    int
	last  mgl32.Vec2
}

// TouchBindings maps touch identifiers to roles. Each role is either unbound
// or bound to exactly one identifier; an identifier holds at most one role.
type TouchBindings struct {
	slots [roleCount]touchSlot
}

// Bind binds id to role. It fails when the role is taken or id already
// drives another role.
func (t *TouchBindings) Bind(role Role, id int, at mgl32.Vec2) bool {
	if role <= RoleNone || role >= roleCount {
		return false
	}
	if t.slots[role].bound {
		return false
	}
	if _, ok := t.RoleOf(id); ok {
		return false
	}
	t.slots[role] = touchSlot{bound: true, id: id, last: at}
	return true
}

// RoleOf returns the role bound to id.
func (t *TouchBindings) RoleOf(id int) (Role, bool) {
	for r := RoleNone + 1; r < roleCount; r++ {
		if t.slots[r].bound && t.slots[r].id == id {
			return r, true
		}
	}
	return RoleNone, false
}

// Bound reports whether role has a touch.
func (t *TouchBindings) Bound(role Role) bool {
	if role <= RoleNone || role >= roleCount {
		return false
	}
	return t.slots[role].bound
}

// Move records a new position for id and returns the delta since the last
// one.
func (t *TouchBindings) Move(id int, to mgl32.Vec2) (Role, mgl32.Vec2, bool) {
	role, ok := t.RoleOf(id)
	if !ok {
		return RoleNone, mgl32.Vec2{}, false
	}
	delta := to.Sub(t.slots[role].last)
	t.slots[role].last = to
	return role, delta, true
}

// Release unbinds id and returns the role it held.
func (t *TouchBindings) Release(id int) (Role, bool) {
	role, ok := t.RoleOf(id)
	if !ok {
		return RoleNone, false
	}
	t.slots[role] = touchSlot{}
	return role, true
}

// Reset releases every role.
func (t *TouchBindings) Reset() {
	t.slots = [roleCount]touchSlot{}
}
