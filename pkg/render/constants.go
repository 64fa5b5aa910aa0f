package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walker/pkg/controller"
)

// Key constants for keyboard input
const (
	KeyEscape        = glfw.KeyEscape
	KeyTogglePointer = glfw.KeyC
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
)

// keyBindings maps physical keys to movement keys
var keyBindings = map[glfw.Key]controller.Key{
	glfw.KeyW:          controller.KeyForward,
	glfw.KeyUp:         controller.KeyForward,
	glfw.KeyS:          controller.KeyBackward,
	glfw.KeyDown:       controller.KeyBackward,
	glfw.KeyA:          controller.KeyLeft,
	glfw.KeyLeft:       controller.KeyLeft,
	glfw.KeyD:          controller.KeyRight,
	glfw.KeyRight:      controller.KeyRight,
	glfw.KeyLeftShift:  controller.KeyRun,
	glfw.KeyRightShift: controller.KeyRun,
	glfw.KeySpace:      controller.KeyJump,
}

// Gamepad bindings
const (
	gamepadJump = glfw.ButtonA
	gamepadRun  = glfw.ButtonLeftThumb
)

// mousePointerID is the touch id the left mouse button emulates
const mousePointerID = 0

// Camera constants
const (
	MinFOV = 30.0
	MaxFOV = 100.0

	nearPlane = 0.1
	farPlane  = 500.0
)

// Scene colors
var (
	skyColor      = mgl32.Vec4{0.02, 0.02, 0.06, 1.0}
	groundColor   = mgl32.Vec3{0.18, 0.22, 0.2}
	obstacleColor = mgl32.Vec3{0.75, 0.55, 0.35}
	lightDir      = mgl32.Vec3{-0.4, -1.0, -0.3}
)
