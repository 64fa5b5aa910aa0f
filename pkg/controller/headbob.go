package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// HeadBob produces the walking camera offset. The offset lives on the camera
// only and is taken back off at the start of every frame.
type HeadBob struct {
	cfg      HeadBobConfig
	walkTime float32
	offset   mgl32.Vec3
}

// NewHeadBob creates a head-bob synthesizer.
func NewHeadBob(cfg HeadBobConfig) HeadBob {
	return HeadBob{cfg: cfg}
}

// Undo removes last frame's offset from the camera.
func (h *HeadBob) Undo(cam *Camera) {
	cam.Position = cam.Position.Sub(h.offset)
	h.offset = mgl32.Vec3{}
}

// Apply advances the walk phase and adds a fresh offset while grounded and
// moving; otherwise it resets the phase and leaves the camera alone.
//
// X swings at the full frequency, Y is |sin| at half frequency, which gives
// two vertical bumps per side-to-side stride.
func (h *HeadBob) Apply(cam *Camera, deltaTime float32, grounded, moving, running bool) {
	if !grounded || !moving {
		h.walkTime = 0
		return
	}

	rate := float32(1)
	if running {
		rate = h.cfg.RunRate
	}
	h.walkTime += deltaTime * rate

	phase := h.walkTime * h.cfg.Frequency
	h.offset = mgl32.Vec3{
		math32.Sin(phase) * h.cfg.AmplitudeX,
		math32.Abs(math32.Sin(phase*0.5)) * h.cfg.AmplitudeY,
		0,
	}
	cam.Position = cam.Position.Add(h.offset)
}

// Offset returns the offset currently applied to the camera.
func (h *HeadBob) Offset() mgl32.Vec3 {
	return h.offset
}

// WalkTime returns the walk phase accumulator.
func (h *HeadBob) WalkTime() float32 {
	return h.walkTime
}
