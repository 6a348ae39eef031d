// Package app is the window shell shared by every demo: it owns SDL and the
// OpenGL context, routes GL debug output into the logger, paces the frame
// loop, and drives a Scene's setup, update and render hooks.
package app

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gregjohnson2017/objview/pkg/camera"
	"github.com/gregjohnson2017/objview/pkg/config"
	"github.com/gregjohnson2017/objview/pkg/log"
	"github.com/gregjohnson2017/objview/pkg/perf"
	"github.com/gregjohnson2017/objview/pkg/util"
	sdlgfx "github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// Scene is the pair of per-demo hooks the shell drives: Setup once after the
// GL context exists, then Update and Render every frame until quit.
type Scene interface {
	Setup(cam *camera.Camera) error
	Update(dt float64)
	Render(viewProjection mgl32.Mat4)
	Destroy()
}

// Application holds the SDL window, the OpenGL context, and the frame loop
// state for the viewer.
type Application struct {
	cfg       *config.Config
	win       *sdl.Window
	glCtx     sdl.GLContext
	framerate *sdlgfx.FPSmanager
	cam       *camera.Camera
	scene     Scene
	running   bool
}

// New initializes SDL and OpenGL and returns an application ready to Run.
// The returned application must only be used from the thread it was created
// on.
func New(cfg *config.Config, scene Scene) (*Application, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initialize SDL: %w", err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3); err != nil {
		return nil, err
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3); err != nil {
		return nil, err
	}
	if err := sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24); err != nil {
		return nil, err
	}

	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.ScreenWidth, cfg.ScreenHeight, sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	glCtx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create GL context: %w", err)
	}
	if err = gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	log.Infof("OpenGL version %v", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(routeDebugMessage, nil)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.2, 0.2, 0.2, 1.0)
	gl.Viewport(0, 0, cfg.ScreenWidth, cfg.ScreenHeight)

	framerate := &sdlgfx.FPSmanager{}
	sdlgfx.InitFramerate(framerate)
	if sdlgfx.SetFramerate(framerate, uint32(cfg.FramesPerSecond)) != true {
		win.Destroy()
		return nil, fmt.Errorf("could not set framerate: %v", sdl.GetError())
	}

	cam := camera.New()
	cam.SetAspect(cfg.ScreenWidth, cfg.ScreenHeight)

	return &Application{
		cfg:       cfg,
		win:       win,
		glCtx:     glCtx,
		framerate: framerate,
		cam:       cam,
		scene:     scene,
	}, nil
}

// Window returns the SDL window, needed for native dialogs.
func (app *Application) Window() *sdl.Window {
	return app.win
}

// Camera returns the application's camera, shared with the scene.
func (app *Application) Camera() *camera.Camera {
	return app.cam
}

// Run sets up the scene and blocks in the frame loop until the window is
// closed. All GL calls stay on the calling thread, in program order.
func (app *Application) Run() error {
	if err := app.scene.Setup(app.cam); err != nil {
		return err
	}
	defer app.scene.Destroy()

	app.running = true
	lastFrame := float64(sdl.GetTicks()) / 1000
	for app.running {
		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			app.handleEvent(evt)
		}

		thisFrame := float64(sdl.GetTicks()) / 1000
		dt := thisFrame - lastFrame
		lastFrame = thisFrame

		sw := util.Start()
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		app.scene.Update(dt)
		if perf.MetricsEnabled() {
			// GPU-side render time alongside the CPU-side frame average
			glq := util.StartGLQuery()
			app.scene.Render(app.cam.ViewProjection())
			glq.Stop("app.renderGPU")
		} else {
			app.scene.Render(app.cam.ViewProjection())
		}
		app.win.GLSwap()
		sw.StopRecordAverage("app.frame")

		sdlgfx.FramerateDelay(app.framerate)
	}

	perf.LogMetrics()
	return nil
}

func (app *Application) handleEvent(evt sdl.Event) {
	switch evt := evt.(type) {
	case *sdl.QuitEvent:
		app.running = false
	case *sdl.KeyboardEvent:
		app.handleKeyboardEvent(evt)
	case *sdl.MouseWheelEvent:
		app.handleMouseWheelEvent(evt)
	case *sdl.WindowEvent:
		app.handleWindowEvent(evt)
	}
}

func (app *Application) handleKeyboardEvent(evt *sdl.KeyboardEvent) {
	if evt.Type != sdl.KEYDOWN || evt.Repeat != 0 {
		return
	}
	switch evt.Keysym.Sym {
	case sdl.K_SPACE:
		// toggle between perspective and orthographic projection
		app.cam.SetOrthoEnabled(!app.cam.OrthoEnabled())
		log.Debugf("orthographic projection: %v", app.cam.OrthoEnabled())
	case sdl.K_ESCAPE:
		app.running = false
	}
}

// handleMouseWheelEvent dollies the camera toward or away from the origin.
func (app *Application) handleMouseWheelEvent(evt *sdl.MouseWheelEvent) {
	factor := float32(1.0)
	if evt.Y > 0 {
		factor = 0.9
	} else if evt.Y < 0 {
		factor = 1.1
	}
	pos := app.cam.GetPosition()
	app.cam.SetPosition(pos.Mul(factor))
}

func (app *Application) handleWindowEvent(evt *sdl.WindowEvent) {
	if evt.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
		return
	}
	gl.Viewport(0, 0, evt.Data1, evt.Data2)
	app.cam.SetAspect(evt.Data1, evt.Data2)
}

// Destroy tears down the GL context, the window, and SDL itself.
func (app *Application) Destroy() {
	sdl.GLDeleteContext(app.glCtx)
	app.win.Destroy()
	sdl.Quit()
}

// routeDebugMessage forwards OpenGL debug output to the matching logger by
// severity.
func routeDebugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	var sourceTxt string
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceTxt = "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceTxt = "WINDOW"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceTxt = "SHADER"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceTxt = "THIRD PARTY"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceTxt = "APP"
	default:
		sourceTxt = "OTHER"
	}
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		log.Warnf("[%v] %v", sourceTxt, message)
	case gl.DEBUG_SEVERITY_MEDIUM:
		log.Warnf("[%v] %v", sourceTxt, message)
	default:
		log.Debugf("[%v] %v", sourceTxt, message)
	}
}
