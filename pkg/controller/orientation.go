package controller

import "github.com/go-gl/mathgl/mgl32"

// ApplyLook rotates the rig by a pointer delta in device pixels. Yaw goes on
// the rig, pitch on the camera, clamped to straight up/down.
func ApplyLook(rig *Rig, delta mgl32.Vec2, sensitivity float32) {
	rig.Yaw -= delta.X() * sensitivity
	rig.Camera.Pitch = mgl32.Clamp(rig.Camera.Pitch-delta.Y()*sensitivity, MinPitch, MaxPitch)
}
