package controller

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

type mockWorld struct {
	obstacles     []Obstacle
	regenerations int
	err           error
}

func (w *mockWorld) Obstacles() []Obstacle {
	return w.obstacles
}

func (w *mockWorld) Regenerate() error {
	w.regenerations++
	return w.err
}

var errRegenerate = errors.New("regenerate failed")

// mockHUD lays the controls out left to right along x:
// joystick [0,100), jump [100,200), run [200,300), nothing beyond.
type mockHUD struct{}

func (mockHUD) RegionAt(p mgl32.Vec2) Region {
	switch {
	case p.X() < 0:
		return RegionNone
	case p.X() < 100:
		return RegionJoystick
	case p.X() < 200:
		return RegionJump
	case p.X() < 300:
		return RegionRun
	}
	return RegionNone
}

func (mockHUD) JoystickVector(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		mgl32.Clamp((p.X()-50)/50, -1, 1),
		mgl32.Clamp((50-p.Y())/50, -1, 1),
	}
}

type mockSource struct {
	next      int
	listeners map[int]Listener
}

func newMockSource() *mockSource {
	return &mockSource{listeners: make(map[int]Listener)}
}

func (s *mockSource) Subscribe(l Listener) func() {
	id := s.next
	s.next++
	s.listeners[id] = l
	return func() {
		delete(s.listeners, id)
	}
}

func (s *mockSource) keyDown(k Key) {
	for _, l := range s.listeners {
		l.KeyDown(k)
	}
}
