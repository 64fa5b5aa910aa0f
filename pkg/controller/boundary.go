package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OutOfBounds reports whether p lies outside the square [-boundary, boundary]
// on X or Z.
func OutOfBounds(p mgl32.Vec3, boundary float32) bool {
	return math32.Abs(p.X()) > boundary || math32.Abs(p.Z()) > boundary
}

// checkBoundary regenerates the world and puts the rig back at spawn when it
// has left the playable square. It fires on every frame the rig is outside.
func (c *Controller) checkBoundary() {
	if !OutOfBounds(c.rig.Position, c.cfg.Boundary) {
		return
	}

	c.log.WithField("position", c.rig.Position).Debug("rig left the boundary, regenerating")
	if c.world != nil {
		if err := c.world.Regenerate(); err != nil {
			c.log.WithError(err).Warn("world regeneration failed, resetting position only")
		}
	}
	c.Reset()
}
