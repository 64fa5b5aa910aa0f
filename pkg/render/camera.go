package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walker/pkg/controller"
)

// Camera turns the controller's rig into view and projection matrices
type Camera struct {
	rig *controller.Rig

	// Projection
	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera that looks through rig's eye
func NewCamera(rig *controller.Rig, fov float32, width, height int) *Camera {
	camera := &Camera{
		rig:    rig,
		fov:    mgl32.Clamp(fov, MinFOV, MaxFOV),
		width:  width,
		height: height,
	}
	camera.updateProjectionMatrix()
	return camera
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, nearPlane, farPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := c.rig.EyePosition()
	up := c.rig.CameraRotation().Rotate(mgl32.Vec3{0, 1, 0})
	return mgl32.LookAtV(eye, eye.Add(c.rig.LookDirection()), up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the eye position
func (c *Camera) Position() mgl32.Vec3 {
	return c.rig.EyePosition()
}

// HandleMouseScroll zooms by narrowing or widening the field of view
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov = mgl32.Clamp(c.fov-float32(yoffset), MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}
