package controller

import "github.com/go-gl/mathgl/mgl32"

// Listener receives input events. Controller implements it.
type Listener interface {
	KeyDown(k Key)
	KeyUp(k Key)
	// PointerMove is a relative movement while the pointer is locked.
	PointerMove(delta mgl32.Vec2)
	TouchStart(id int, at mgl32.Vec2)
	TouchMove(id int, at mgl32.Vec2)
	TouchEnd(id int)
	// Analog is a hardware stick; zero means centered.
	Analog(v mgl32.Vec2)
}

// InputSource delivers events to a listener until the returned function is
// called.
type InputSource interface {
	Subscribe(l Listener) (unsubscribe func())
}
