package controller

import "github.com/go-gl/mathgl/mgl32"

// HeadBobConfig tunes the camera bob waveform.
type HeadBobConfig struct {
	Frequency  float32 `yaml:"frequency"`
	AmplitudeX float32 `yaml:"amplitude_x"`
	AmplitudeY float32 `yaml:"amplitude_y"`
	// RunRate scales how fast the walk phase advances while running.
	RunRate float32 `yaml:"run_rate"`
}

// Spawn is the horizontal point the rig is placed at on construction and
// after leaving the boundary.
type Spawn struct {
	X float32 `yaml:"x"`
	Z float32 `yaml:"z"`
}

// Config holds the controller tuning.
type Config struct {
	BaseSpeed       float32       `yaml:"base_speed"`
	RunMultiplier   float32       `yaml:"run_multiplier"`
	JumpStrength    float32       `yaml:"jump_strength"`
	Gravity         float32       `yaml:"gravity"`
	EyeHeight       float32       `yaml:"eye_height"`
	LookSensitivity float32       `yaml:"look_sensitivity"`
	PlayerRadius    float32       `yaml:"player_radius"`
	Boundary        float32       `yaml:"boundary"`
	Spawn           Spawn         `yaml:"spawn"`
	HeadBob         HeadBobConfig `yaml:"head_bob"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		BaseSpeed:       DefaultBaseSpeed,
		RunMultiplier:   DefaultRunMultiplier,
		JumpStrength:    DefaultJumpStrength,
		Gravity:         DefaultGravity,
		EyeHeight:       DefaultEyeHeight,
		LookSensitivity: DefaultLookSensitivity,
		PlayerRadius:    DefaultPlayerRadius,
		Boundary:        DefaultBoundary,
		HeadBob: HeadBobConfig{
			Frequency:  DefaultBobFrequency,
			AmplitudeX: DefaultBobAmplitudeX,
			AmplitudeY: DefaultBobAmplitudeY,
			RunRate:    DefaultBobRunRate,
		},
	}
}

// Speed returns the per-step horizontal speed.
func (c Config) Speed(running bool) float32 {
	if running {
		return c.BaseSpeed * c.RunMultiplier
	}
	return c.BaseSpeed
}

// SpawnPosition returns the spawn point at eye height.
func (c Config) SpawnPosition() mgl32.Vec3 {
	return mgl32.Vec3{c.Spawn.X, c.EyeHeight, c.Spawn.Z}
}
