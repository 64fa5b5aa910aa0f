package controller

import "math"

// Movement constants. Speed, gravity and jump strength are per integration
// step, tuned for a nominal 60 Hz tick; only the head-bob phase follows the
// frame delta time.
const (
	DefaultBaseSpeed     = 0.1
	DefaultRunMultiplier = 1.8
	DefaultJumpStrength  = 0.12
	DefaultGravity       = -0.005
	DefaultEyeHeight     = 1.6

	DefaultLookSensitivity = 0.002
	DefaultPlayerRadius    = 0.4
	DefaultBoundary        = 40.0
)

// Head-bob constants
const (
	DefaultBobFrequency  = 10.0
	DefaultBobAmplitudeX = 0.05
	DefaultBobAmplitudeY = 0.08
	DefaultBobRunRate    = 1.5
)

// Pitch limits in radians
const (
	MaxPitch = math.Pi / 2
	MinPitch = -math.Pi / 2
)

// Key is a semantic movement key. Platform bindings translate physical keys
// and buttons into these.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyRun
	KeyJump
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRun:
		return "run"
	case KeyJump:
		return "jump"
	}
	return "unknown"
}
