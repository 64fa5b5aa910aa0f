package render

import (
	"openglhelper"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walker/pkg/controller"
	"github.com/sirupsen/logrus"
)

// Input is a controller.InputSource fed by GLFW. Keys map through
// keyBindings, cursor motion is relative look while the pointer is locked,
// and the left mouse button emulates a single touch otherwise. A gamepad is
// polled once per frame.
//
// GLFW callbacks are only installed while at least one listener is
// subscribed.
type Input struct {
	window   *openglhelper.Window
	log      logrus.FieldLogger
	deadzone float32

	listeners map[int]controller.Listener
	nextID    int

	// Mouse state
	lastCursor  mgl32.Vec2
	firstMouse  bool
	pointerDown bool

	// Gamepad state
	padPresent bool
	padJump    bool
	padRun     bool
	padStick   mgl32.Vec2
}

// NewInput creates an input source for window
func NewInput(window *openglhelper.Window, deadzone float32, log logrus.FieldLogger) *Input {
	return &Input{
		window:     window,
		log:        log,
		deadzone:   deadzone,
		listeners:  make(map[int]controller.Listener),
		firstMouse: true,
	}
}

// Subscribe implements controller.InputSource
func (in *Input) Subscribe(l controller.Listener) func() {
	if len(in.listeners) == 0 {
		in.install()
	}

	id := in.nextID
	in.nextID++
	in.listeners[id] = l

	return func() {
		if _, ok := in.listeners[id]; !ok {
			return
		}
		delete(in.listeners, id)
		if len(in.listeners) == 0 {
			in.uninstall()
		}
	}
}

func (in *Input) install() {
	w := in.window.GLFWWindow()
	w.SetKeyCallback(in.keyCallback)
	w.SetCursorPosCallback(in.cursorPosCallback)
	w.SetMouseButtonCallback(in.mouseButtonCallback)
}

func (in *Input) uninstall() {
	w := in.window.GLFWWindow()
	w.SetKeyCallback(nil)
	w.SetCursorPosCallback(nil)
	w.SetMouseButtonCallback(nil)
	in.pointerDown = false
}

func (in *Input) each(fn func(l controller.Listener)) {
	for _, l := range in.listeners {
		fn(l)
	}
}

// SetPointerLocked locks or releases the pointer. Any emulated touch in
// progress ends.
func (in *Input) SetPointerLocked(locked bool) {
	in.endPointerTouch()
	in.window.SetMouseCaptured(locked)
	in.pointerLockChanged()
}

// TogglePointerLock flips the pointer lock.
func (in *Input) TogglePointerLock() {
	in.endPointerTouch()
	in.window.ToggleMouseCaptured()
	in.pointerLockChanged()
}

func (in *Input) endPointerTouch() {
	if in.pointerDown {
		in.pointerDown = false
		in.each(func(l controller.Listener) { l.TouchEnd(mousePointerID) })
	}
}

func (in *Input) pointerLockChanged() {
	in.firstMouse = true
	in.log.WithField("locked", in.window.IsMouseCaptured()).Info("pointer lock changed")
}

// Callback functions
func (in *Input) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == Press {
		switch key {
		case KeyEscape:
			if in.window.IsMouseCaptured() {
				in.SetPointerLocked(false)
			} else {
				in.window.SetShouldClose(true)
			}
			return
		case KeyTogglePointer:
			in.TogglePointerLock()
			return
		}
	}

	k, ok := keyBindings[key]
	if !ok {
		return
	}
	switch action {
	case Press:
		in.each(func(l controller.Listener) { l.KeyDown(k) })
	case Release:
		in.each(func(l controller.Listener) { l.KeyUp(k) })
	}
}

func (in *Input) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	pos := mgl32.Vec2{float32(xpos), float32(ypos)}

	if in.window.IsMouseCaptured() {
		if in.firstMouse {
			in.lastCursor = pos
			in.firstMouse = false
			return
		}

		delta := pos.Sub(in.lastCursor)
		in.lastCursor = pos
		in.each(func(l controller.Listener) { l.PointerMove(delta) })
		return
	}

	if in.pointerDown {
		in.each(func(l controller.Listener) { l.TouchMove(mousePointerID, pos) })
	}
}

func (in *Input) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || in.window.IsMouseCaptured() {
		return
	}

	switch action {
	case Press:
		in.pointerDown = true
		pos := in.window.CursorPos()
		in.each(func(l controller.Listener) { l.TouchStart(mousePointerID, pos) })
	case Release:
		if !in.pointerDown {
			return
		}
		in.pointerDown = false
		in.each(func(l controller.Listener) { l.TouchEnd(mousePointerID) })
	}
}

// Poll reads the gamepad and forwards stick, jump and run changes. Call it
// once per frame before the controller update.
func (in *Input) Poll() {
	state, ok := in.window.Gamepad()
	if ok != in.padPresent {
		in.padPresent = ok
		if ok {
			in.log.WithField("name", in.window.GamepadName()).Info("gamepad connected")
		} else {
			in.log.Info("gamepad disconnected")
			in.releasePad()
		}
	}
	if !ok {
		return
	}

	stick := applyDeadzone(mgl32.Vec2{state.Axes[glfw.AxisLeftX], -state.Axes[glfw.AxisLeftY]}, in.deadzone)
	if stick != in.padStick {
		in.padStick = stick
		in.each(func(l controller.Listener) { l.Analog(stick) })
	}

	jump := state.Buttons[gamepadJump] == Press
	if jump && !in.padJump {
		in.each(func(l controller.Listener) { l.KeyDown(controller.KeyJump) })
	}
	in.padJump = jump

	run := state.Buttons[gamepadRun] == Press
	if run != in.padRun {
		in.padRun = run
		if run {
			in.each(func(l controller.Listener) { l.KeyDown(controller.KeyRun) })
		} else {
			in.each(func(l controller.Listener) { l.KeyUp(controller.KeyRun) })
		}
	}
}

func (in *Input) releasePad() {
	if in.padStick != (mgl32.Vec2{}) {
		in.padStick = mgl32.Vec2{}
		in.each(func(l controller.Listener) { l.Analog(mgl32.Vec2{}) })
	}
	if in.padRun {
		in.padRun = false
		in.each(func(l controller.Listener) { l.KeyUp(controller.KeyRun) })
	}
	in.padJump = false
}

// applyDeadzone zeroes sticks resting near the center and keeps the rest
// within the unit circle
func applyDeadzone(v mgl32.Vec2, deadzone float32) mgl32.Vec2 {
	if v.Len() < deadzone {
		return mgl32.Vec2{}
	}
	return controller.ClampAnalog(v)
}
