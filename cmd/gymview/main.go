//go:build !tinygo && cgo

// Command gymview opens a window and renders the gym scene. Drag with the
// left mouse button to orbit the camera, scroll to zoom, press escape to
// quit.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"gymscene"
	"gymscene/glmesh"
	"gymscene/glshader"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width     = flag.Int("width", 1280, "window width in pixels")
		height    = flag.Int("height", 800, "window height in pixels")
		texDir    = flag.String("textures", "textures", "directory holding the scene texture images")
		wireframe = flag.Bool("wireframe", false, "render edges only")
	)
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gymscene.SetLogger(logger)

	if err := run(*width, *height, *texDir, *wireframe); err != nil {
		logger.Error("gymview", "err", err)
		os.Exit(1)
	}
}

func run(width, height int, texDir string, wireframe bool) error {
	window, term, err := startGLFW(width, height)
	if err != nil {
		return err
	}
	defer term()

	prog, err := glshader.New()
	if err != nil {
		return err
	}
	defer prog.Delete()
	prog.Bind()

	meshes, free, err := uploadMeshes()
	if err != nil {
		return err
	}
	defer free()

	reg := gymscene.NewRegistry(gymscene.GLTextureUploader{})
	defer reg.Free()

	scene := gymscene.NewScene(prog, reg, meshes)
	if err := scene.Prepare(texDir); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	cam := newOrbitCamera(window)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	projection := mgl32.Perspective(mgl32.DegToRad(80), float32(width)/float32(height), 0.1, 1000)
	prog.SetMat4(glshader.UniformProjection, projection)

	for !window.ShouldClose() {
		gl.ClearColor(0.1, 0.1, 0.12, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Bind()
		eye := cam.eye()
		view := mgl32.LookAtV(eye, cam.target, mgl32.Vec3{0, 1, 0})
		prog.SetMat4(glshader.UniformView, view)
		prog.SetVec3(glshader.UniformViewPos, eye)

		if err := scene.RenderFrame(); err != nil {
			return err
		}

		window.SwapBuffers()
		glfw.PollEvents()
		time.Sleep(time.Second / 60)
	}
	return nil
}

// uploadMeshes generates the four primitives and uploads them, returning a
// teardown that releases the GL buffers.
func uploadMeshes() (gymscene.MeshSet, func(), error) {
	plane := glmesh.NewPlane()
	box := glmesh.NewBox()
	cylinder := glmesh.NewCylinder(0)
	sphere := glmesh.NewSphere(0, 0)
	all := []*glmesh.Mesh{plane, box, cylinder, sphere}
	free := func() {
		for _, m := range all {
			m.Delete()
		}
	}
	for _, m := range all {
		if err := m.Upload(); err != nil {
			free()
			return gymscene.MeshSet{}, nil, err
		}
	}
	return gymscene.MeshSet{
		Plane:    plane,
		Box:      box,
		Cylinder: cylinder,
		Sphere:   sphere,
	}, free, nil
}

// orbitCamera accumulates yaw/pitch from mouse drags and distance from the
// scroll wheel, orbiting a fixed point at the middle of the gym.
type orbitCamera struct {
	target  mgl32.Vec3
	yaw     float64
	pitch   float64
	camDist float64

	lastX, lastY float64
	firstMove    bool
	pressed      bool
}

func newOrbitCamera(window *glfw.Window) *orbitCamera {
	cam := &orbitCamera{
		target:  mgl32.Vec3{0, 5, 0},
		pitch:   0.35,
		camDist: 40,
	}
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !cam.pressed {
			return
		}
		if cam.firstMove {
			cam.lastX, cam.lastY = xpos, ypos
			cam.firstMove = false
		}
		cam.yaw += (xpos - cam.lastX) * 0.005
		cam.pitch += (ypos - cam.lastY) * 0.005
		maxPitch := math.Pi/2 - 0.01
		if cam.pitch > maxPitch {
			cam.pitch = maxPitch
		}
		if cam.pitch < -maxPitch {
			cam.pitch = -maxPitch
		}
		cam.lastX, cam.lastY = xpos, ypos
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.camDist -= yoff * (cam.camDist*0.1 + 0.01)
		if cam.camDist < 2 {
			cam.camDist = 2
		}
		if cam.camDist > 200 {
			cam.camDist = 200
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		if action == glfw.Press {
			cam.pressed = true
			cam.firstMove = true
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		} else if action == glfw.Release {
			cam.pressed = false
			window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	})
	return cam
}

func (c *orbitCamera) eye() mgl32.Vec3 {
	dir := mgl32.Vec3{
		float32(math.Cos(c.pitch) * math.Sin(c.yaw)),
		float32(math.Sin(c.pitch)),
		float32(math.Cos(c.pitch) * math.Cos(c.yaw)),
	}
	return c.target.Add(dir.Mul(float32(c.camDist)))
}

func startGLFW(width, height int) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err = glfw.CreateWindow(width, height, "Gym Scene", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	return window, glfw.Terminate, nil
}
