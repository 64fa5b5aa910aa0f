package render

import (
	"embed"
	"fmt"
	"openglhelper"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-walker/pkg/config"
	"github.com/leterax/go-walker/pkg/controller"
	"github.com/leterax/go-walker/pkg/hud"
	"github.com/leterax/go-walker/pkg/world"
	"github.com/sirupsen/logrus"
)

//go:embed shaders/*
var shaderFS embed.FS

// Renderer owns the window and drives the frame loop: input, controller
// update, draw.
type Renderer struct {
	window     *openglhelper.Window
	camera     *Camera
	input      *Input
	layout     *hud.Layout
	controller *controller.Controller
	field      *world.Field
	log        logrus.FieldLogger

	sceneShader *openglhelper.Shader
	cube        *openglhelper.Mesh
	ground      *openglhelper.Mesh
	fogDistance float32

	// Timing
	lastFrameTime float64
	deltaTime     float32
	frames        int
	fpsTimer      float64
	fps           int

	isClosed bool
}

// NewRenderer creates the window, the obstacle field and the controller
// described by cfg
func NewRenderer(cfg *config.Config, log logrus.FieldLogger) (*Renderer, error) {
	// Create window
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.WithField("gl", window.GLVersion()).Info("window created")

	r := &Renderer{
		window:      window,
		log:         log,
		fogDistance: cfg.Controller.Boundary * 1.5,
	}

	// Load shader
	shader, err := openglhelper.LoadShaderFromFS(shaderFS, "shaders/scene.vert", "shaders/scene.frag")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.sceneShader = shader
	r.cube = openglhelper.NewCube()
	r.ground = openglhelper.NewPlane(cfg.Controller.Boundary * 2)

	spawn := cfg.Controller.SpawnPosition()
	field, err := world.NewField(cfg.World, mgl32.Vec2{spawn.X(), spawn.Z()})
	if err != nil {
		r.Cleanup()
		return nil, fmt.Errorf("failed to generate world: %w", err)
	}
	r.field = field
	log.WithField("obstacles", len(field.Obstacles())).Info("world generated")

	width, height := window.Size()
	r.layout = hud.NewLayout(width, height)
	r.input = NewInput(window, cfg.Input.GamepadDeadzone, log.WithField("component", "input"))
	r.controller = controller.New(cfg.Controller,
		controller.WithWorld(field),
		controller.WithHUD(r.layout),
		controller.WithSources(r.input),
		controller.WithLogger(log.WithField("component", "controller")),
	)
	r.camera = NewCamera(r.controller.Rig(), cfg.Window.FOV, width, height)

	// Set up callbacks
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)
	window.GLFWWindow().SetSizeCallback(r.sizeCallback)

	return r, nil
}

// SetPointerLocked locks or releases the mouse pointer
func (r *Renderer) SetPointerLocked(locked bool) {
	r.input.SetPointerLocked(locked)
}

// render draws the ground and every obstacle
func (r *Renderer) render() {
	r.window.Clear(skyColor)

	r.sceneShader.Use()
	r.sceneShader.SetMat4("view", r.camera.ViewMatrix())
	r.sceneShader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.sceneShader.SetVec3("viewPos", r.camera.Position())
	r.sceneShader.SetVec3("lightDir", lightDir)
	r.sceneShader.SetVec3("fogColor", skyColor.Vec3())
	r.sceneShader.SetFloat("fogDistance", r.fogDistance)

	r.sceneShader.SetMat4("model", mgl32.Ident4())
	r.sceneShader.SetVec3("objectColor", groundColor)
	r.ground.Draw()

	r.sceneShader.SetVec3("objectColor", obstacleColor)
	for _, o := range r.field.Obstacles() {
		size := 2 * o.HalfExtent
		model := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
			Mul4(mgl32.Scale3D(size, size, size))
		r.sceneShader.SetMat4("model", model)
		r.cube.Draw()
	}
}

// updateTitle refreshes the window title once per second with frame rate
// and movement state
func (r *Renderer) updateTitle(now float64) {
	r.frames++
	if now-r.fpsTimer < 1.0 {
		return
	}
	r.fps = r.frames
	r.frames = 0
	r.fpsTimer = now

	v := r.controller.Velocity()
	r.window.SetTitle(fmt.Sprintf("Go-Walker | %d FPS | speed %.2f | vy %.3f | grounded %t | layout %d",
		r.fps, v.X(), v.Y(), r.controller.IsGrounded(), r.field.Generation()))
}

// Run starts the main loop and returns once the window is closed
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()
	r.fpsTimer = r.lastFrameTime

	// Main loop
	for !r.window.ShouldClose() {
		// Calculate delta time
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.input.Poll()
		r.controller.Update(r.deltaTime)

		r.render()
		r.updateTitle(currentTime)

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	// Cleanup resources
	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}
	r.isClosed = true

	if r.controller != nil {
		r.controller.Dispose()
	}
	if r.cube != nil {
		r.cube.Delete()
	}
	if r.ground != nil {
		r.ground.Delete()
	}
	if r.sceneShader != nil {
		r.sceneShader.Delete()
	}

	// Close window
	r.window.Close()
	r.log.Info("renderer closed")
}

// Callback functions
func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}

func (r *Renderer) sizeCallback(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.layout.Resize(width, height)
	r.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("window resized")
}
