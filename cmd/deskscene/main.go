// Command deskscene opens a window and renders the authored desk scene with
// a fixed camera until the window closes or Escape is pressed.
package main

import (
	"flag"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
	"desk-scene/desk"
	"desk-scene/internal/opengl"
	"desk-scene/meshes"
	"desk-scene/render"
	"desk-scene/scene"
)

var clearColor = core.Color{R: 0.02, G: 0.02, B: 0.06, A: 1}

func main() {
	configPath := flag.String("config", "deskscene.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		core.NewDefaultLogger("deskscene", false).Errorf("%v", err)
		os.Exit(1)
	}

	log := core.NewDefaultLogger("deskscene", cfg.Debug)
	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg Config, log core.Logger) error {
	winCfg := core.DefaultWindowConfig()
	winCfg.Width = cfg.Window.Width
	winCfg.Height = cfg.Window.Height
	winCfg.Title = cfg.Window.Title
	winCfg.VSync = cfg.Window.VSync

	window, err := core.NewWindow(winCfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	ctx, err := opengl.NewContext(log)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	mgr := scene.NewManager(
		ctx.Params(),
		scene.NewTextureRegistry(ctx.Textures(), log),
		scene.NewMaterialRegistry(log),
		meshes.NewLibrary(ctx.Meshes(), log),
		log,
	)

	sc := desk.New(mgr, cfg.AssetDir, log)
	if err := sc.Prepare(); err != nil {
		return err
	}
	defer sc.Release()

	// Fixed camera: pulled back and slightly above, looking at the middle
	// of the desk.
	eye := mgl32.Vec3{0, 6, 22}
	center := mgl32.Vec3{0, 3, 0}
	view := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})

	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(glfw.KeyEscape) {
			break
		}

		width, height := window.GetFramebufferSize()
		ctx.SetViewport(width, height)
		ctx.BeginFrame(clearColor)

		params := ctx.Params()
		params.SetMat4Value(render.UniformView, view)
		params.SetMat4Value(render.UniformProjection,
			mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100))
		params.SetVec3Value(render.UniformViewPosition, eye)

		if err := sc.Render(); err != nil {
			return err
		}

		window.SwapBuffers()
	}

	return nil
}
