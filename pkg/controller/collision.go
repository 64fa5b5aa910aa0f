package controller

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Obstacle is a static axis-aligned box owned by the world.
type Obstacle struct {
	Position   mgl32.Vec3
	HalfExtent float32
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() cube.BBox {
	h, p := o.HalfExtent, o.Position
	return cube.Box(p[0]-h, p[1]-h, p[2]-h, p[0]+h, p[1]+h, p[2]+h)
}

// World is the map collaborator: it owns the obstacle set and can replace it.
type World interface {
	Obstacles() []Obstacle
	Regenerate() error
}

// CollisionFilter rejects moves that put the player's square footprint
// inside any obstacle's footprint. There is no sliding: a rejected move
// leaves the rig where it was.
type CollisionFilter struct {
	Radius float32
}

// Collides reports whether a player at pos overlaps any obstacle on both
// the X and Z axes.
func (f CollisionFilter) Collides(pos mgl32.Vec3, obstacles []Obstacle) bool {
	player := cube.Box(pos[0]-f.Radius, pos[1], pos[2]-f.Radius, pos[0]+f.Radius, pos[1], pos[2]+f.Radius)
	for _, o := range obstacles {
		if overlapsXZ(player, o.Box()) {
			return true
		}
	}
	return false
}

// Reject returns proposed if it is free, otherwise previous. The whole frame
// is discarded, height included.
func (f CollisionFilter) Reject(previous, proposed mgl32.Vec3, obstacles []Obstacle) mgl32.Vec3 {
	if !f.Collides(proposed, obstacles) {
		return proposed
	}
	return previous
}

func overlapsXZ(a, b cube.BBox) bool {
	return a.Min().X() < b.Max().X() && a.Max().X() > b.Min().X() &&
		a.Min().Z() < b.Max().Z() && a.Max().Z() > b.Min().Z()
}
