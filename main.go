package main

import (
	"flag"
	"math"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gregjohnson2017/objview/pkg/app"
	"github.com/gregjohnson2017/objview/pkg/camera"
	"github.com/gregjohnson2017/objview/pkg/config"
	"github.com/gregjohnson2017/objview/pkg/gfx"
	"github.com/gregjohnson2017/objview/pkg/log"
	"github.com/gregjohnson2017/objview/pkg/perf"
	"github.com/gregjohnson2017/objview/pkg/util"
)

func init() {
	// SDL and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 800, "window height in pixels")
	fps := flag.Int("fps", 60, "target frames per second")
	fov := flag.Float64("fov", 60, "vertical field of view in degrees")
	metrics := flag.Bool("metrics", false, "record and log performance metrics")
	colorized := flag.Bool("color", false, "colorize log output")
	flag.Parse()

	log.SetColorized(*colorized)
	perf.SetMetricsEnabled(*metrics)

	cfg := config.New(int32(*width), int32(*height), *fps, "objview")
	scene := &meshScene{path: flag.Arg(0)}

	a, err := app.New(cfg, scene)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Destroy()
	a.Camera().SetFovDegrees(float32(*fov))

	if scene.path == "" {
		if scene.path, err = util.OpenFileDialog(a.Window()); err != nil {
			log.Fatalf("no model to open: %v", err)
		}
	}

	if err = a.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// meshScene loads one OBJ model and renders two spinning instances of it.
type meshScene struct {
	path    string
	mesh    *gfx.Mesh
	prog    gfx.Program
	elapsed float64
}

func (s *meshScene) Setup(cam *camera.Camera) error {
	vsh, err := gfx.NewShader(gfx.MeshVsh, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fsh, err := gfx.NewShader(gfx.MeshFsh, gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	if s.prog, err = gfx.NewProgram(vsh, fsh); err != nil {
		return err
	}

	if s.mesh, err = gfx.NewMeshFromFile(s.path); err != nil {
		return err
	}
	if err = s.prog.ValidateAttributes(s.mesh); err != nil {
		return err
	}

	cam.SetPosition(mgl32.Vec3{0, 15, 15})
	cam.LookAt(mgl32.Vec3{0, 0, 0})
	cam.SetOrthoVerticalScale(-20)
	return nil
}

func (s *meshScene) Update(dt float64) {
	s.elapsed += dt
}

func (s *meshScene) Render(viewProjection mgl32.Mat4) {
	t := float32(s.elapsed)

	model := mgl32.HomogRotate3D(t, mgl32.Vec3{0, 0, 1})
	s.prog.UploadUniformMat4("u_ModelViewProjection", viewProjection.Mul4(model))
	s.prog.Bind()
	s.mesh.Draw()

	model = mgl32.HomogRotate3D(t, mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.Translate3D(10, 0, float32(math.Sin(s.elapsed))))
	s.prog.UploadUniformMat4("u_ModelViewProjection", viewProjection.Mul4(model))
	s.prog.Bind()
	s.mesh.Draw()

	s.prog.Unbind()
}

func (s *meshScene) Destroy() {
	s.mesh.Destroy()
	s.prog.Delete()
}
