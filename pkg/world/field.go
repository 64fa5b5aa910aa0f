// Package world holds the obstacle field the player walks through.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walker/pkg/controller"
)

// ErrCrowded is returned when the field could not fit every obstacle outside
// the spawn clearing.
var ErrCrowded = errors.New("obstacle field too crowded")

// attemptsPerObstacle bounds rejection sampling around the spawn clearing
const attemptsPerObstacle = 32

// Config controls obstacle generation.
type Config struct {
	ObstacleCount int     `yaml:"obstacle_count"`
	HalfExtent    float32 `yaml:"half_extent"`
	// Spread is the half-width of the square obstacles are scattered in.
	Spread float32 `yaml:"spread"`
	// ClearRadius keeps obstacle footprints this far from spawn on X or Z.
	// A player whose radius is at most ClearRadius always fits at spawn.
	ClearRadius float32 `yaml:"clear_radius"`
	// Seed fixes the layout sequence; zero picks one from the clock.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the default field layout.
func DefaultConfig() Config {
	return Config{
		ObstacleCount: 60,
		HalfExtent:    0.5,
		Spread:        35,
		ClearRadius:   3,
	}
}

// Field is a set of unit boxes resting on the ground. It implements
// controller.World.
type Field struct {
	cfg        Config
	spawn      mgl32.Vec2
	rng        *rand.Rand
	obstacles  []controller.Obstacle
	generation int
}

// NewField creates a field and lays out the first set of obstacles.
func NewField(cfg Config, spawn mgl32.Vec2) (*Field, error) {
	if cfg.ObstacleCount < 0 {
		return nil, fmt.Errorf("obstacle count %d is negative", cfg.ObstacleCount)
	}
	if cfg.HalfExtent <= 0 || cfg.Spread <= 0 {
		return nil, fmt.Errorf("half extent %v and spread %v must be positive", cfg.HalfExtent, cfg.Spread)
	}
	if cfg.ClearRadius < 0 {
		return nil, fmt.Errorf("clear radius %v is negative", cfg.ClearRadius)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	f := &Field{
		cfg:   cfg,
		spawn: spawn,
		rng:   rand.New(rand.NewSource(seed)),
	}
	if err := f.Regenerate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Obstacles returns the current layout.
func (f *Field) Obstacles() []controller.Obstacle {
	return f.obstacles
}

// Generation counts how many layouts have been produced.
func (f *Field) Generation() int {
	return f.generation
}

// Regenerate replaces the layout with a fresh random one. If the clearing
// leaves too little room the partial layout is kept and ErrCrowded is
// returned.
func (f *Field) Regenerate() error {
	obstacles := make([]controller.Obstacle, 0, f.cfg.ObstacleCount)
	keepOut := f.cfg.ClearRadius + f.cfg.HalfExtent

	for attempts := 0; len(obstacles) < f.cfg.ObstacleCount && attempts < f.cfg.ObstacleCount*attemptsPerObstacle; attempts++ {
		// Random position within the spread
		pos := mgl32.Vec2{
			(f.rng.Float32()*2.0 - 1.0) * f.cfg.Spread,
			(f.rng.Float32()*2.0 - 1.0) * f.cfg.Spread,
		}
		// Square clearing, the same footprint test the collision filter uses
		if d := pos.Sub(f.spawn); math32.Abs(d.X()) < keepOut && math32.Abs(d.Y()) < keepOut {
			continue
		}

		obstacles = append(obstacles, controller.Obstacle{
			Position:   mgl32.Vec3{pos.X(), f.cfg.HalfExtent, pos.Y()},
			HalfExtent: f.cfg.HalfExtent,
		})
	}

	f.obstacles = obstacles
	f.generation++

	if len(obstacles) < f.cfg.ObstacleCount {
		return fmt.Errorf("placed %d of %d obstacles: %w", len(obstacles), f.cfg.ObstacleCount, ErrCrowded)
	}
	return nil
}
