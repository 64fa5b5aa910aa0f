package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	localBack  = mgl32.Vec3{0, 0, 1}
	localFront = mgl32.Vec3{0, 0, -1}
	pitchAxis  = mgl32.Vec3{1, 0, 0}
)

// Camera is the rig's child transform. Position is relative to the rig and
// only ever carries the head-bob offset.
type Camera struct {
	Position mgl32.Vec3
	Pitch    float32
}

// Rig is the player's body: a position and a yaw around the world up axis,
// with the camera attached as a child.
type Rig struct {
	Position mgl32.Vec3
	Yaw      float32
	Camera   Camera
}

// NewRig creates a rig at the given position facing -Z.
func NewRig(position mgl32.Vec3) *Rig {
	return &Rig{Position: position}
}

// Up returns the rig's up vector.
func (r *Rig) Up() mgl32.Vec3 {
	return worldUp
}

// Rotation returns the rig's yaw as a quaternion.
func (r *Rig) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(r.Yaw, r.Up())
}

// CameraRotation returns the camera's world rotation (rig yaw then pitch).
func (r *Rig) CameraRotation() mgl32.Quat {
	return r.Rotation().Mul(mgl32.QuatRotate(r.Camera.Pitch, pitchAxis))
}

// EyePosition returns the camera's world position.
func (r *Rig) EyePosition() mgl32.Vec3 {
	return r.Position.Add(r.Rotation().Rotate(r.Camera.Position))
}

// LookDirection returns the direction the camera faces in world space.
func (r *Rig) LookDirection() mgl32.Vec3 {
	return r.CameraRotation().Rotate(localFront)
}

// horizontalBasis returns the rig's local +Z axis flattened onto the XZ
// plane, and the side vector back x up. Intent y moves against back and
// intent x moves against side, which makes positive intent forward/right.
func (r *Rig) horizontalBasis() (back, side mgl32.Vec3) {
	b := r.Rotation().Rotate(localBack)
	b[1] = 0
	back = normalizeOrZero(b)
	side = normalizeOrZero(back.Cross(r.Up()))
	return back, side
}

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := math32.Sqrt(v.Dot(v))
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
