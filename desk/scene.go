// Package desk holds the hand-authored still scene: a desk with a pencil,
// a house-like box with a cone roof, a sphere, a pyramid, and a tapered
// cylinder in front of a night-sky backdrop. The scene is a fixed table of
// assets plus an ordered list of draw steps consumed every frame.
package desk

import (
	"errors"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
	"desk-scene/meshes"
	"desk-scene/scene"
)

// ErrNotPrepared is returned by Render before Prepare has run.
var ErrNotPrepared = errors.New("desk: scene not prepared")

// sceneTextures lists the image assets by file name (relative to the asset
// directory) and registry tag, in slot order.
var sceneTextures = []struct {
	File string
	Tag  string
}{
	{"wood.jpg", "wood"},
	{"ground.jpg", "ground"},
	{"eraser.jpg", "eraser"},
	{"roof.jpg", "roof"},
	{"nightsky.jpg", "nightsky"},
}

// Scene prepares and renders the authored scene. It has exactly two states:
// unprepared and prepared. Prepare transitions once; Render is only valid
// afterwards.
type Scene struct {
	mgr      *scene.Manager
	log      core.Logger
	assetDir string
	prepared bool
}

func New(mgr *scene.Manager, assetDir string, log core.Logger) *Scene {
	if log == nil {
		log = core.NewNopLogger()
	}
	return &Scene{mgr: mgr, log: log, assetDir: assetDir}
}

// Prepare loads the scene textures, defines the materials, applies the
// lights, and loads every mesh kind. A texture that fails to load is logged
// and skipped — the scene renders with a gap rather than aborting. Calling
// Prepare again is a no-op.
func (s *Scene) Prepare() error {
	if s.prepared {
		return nil
	}

	for _, t := range sceneTextures {
		path := filepath.Join(s.assetDir, t.File)
		if err := s.mgr.Textures().Load(path, t.Tag); err != nil {
			s.log.Warnf("texture %q unavailable, continuing without it: %v", t.Tag, err)
		}
	}
	s.mgr.Textures().BindAll()

	defineMaterials(s.mgr.Materials())
	s.mgr.ApplyLights(sceneLights())

	for _, kind := range meshes.AllKinds() {
		if err := s.mgr.Meshes().Load(kind); err != nil {
			return err
		}
	}

	s.prepared = true
	return nil
}

// Render executes the fixed draw sequence. Valid only after Prepare.
func (s *Scene) Render() error {
	if !s.prepared {
		return ErrNotPrepared
	}
	s.mgr.Render(steps)
	return nil
}

// Release frees the GPU resources held by the registries and mesh library.
func (s *Scene) Release() {
	s.mgr.Textures().ReleaseAll()
	s.mgr.Meshes().ReleaseAll()
	s.prepared = false
}

// defineMaterials registers the three scene materials: reflective metal,
// matte wood, and glass (glass is defined for authoring but currently
// unused by the draw sequence).
func defineMaterials(r *scene.MaterialRegistry) {
	r.Define("metal",
		mgl32.Vec3{0.4, 0.4, 0.4},
		mgl32.Vec3{0.7, 0.7, 0.6},
		52.0)
	r.Define("wood",
		mgl32.Vec3{0.2, 0.2, 0.3},
		mgl32.Vec3{0.0, 0.0, 0.0},
		0.1)
	r.Define("glass",
		mgl32.Vec3{0.2, 0.2, 0.2},
		mgl32.Vec3{1.0, 1.0, 1.0},
		95.0)
}

// sceneLights builds the lighting rig: one bright directional light for
// daylight exposure plus a purple and a green point light flanking the
// scene. The original authored two directional definitions against the
// same slot; only the second survived, and that is the one kept here.
// Point lights keep their original slots 1 and 2.
func sceneLights() *scene.LightRig {
	rig := &scene.LightRig{
		Directional: &scene.DirectionalLight{
			Direction: mgl32.Vec3{-0.1, -1.0, -0.1},
			Ambient:   mgl32.Vec3{1.08, 1.08, 1.08},
			Diffuse:   mgl32.Vec3{2.25, 2.25, 2.25},
			Specular:  mgl32.Vec3{1.98, 1.98, 1.98},
		},
	}
	rig.Points[1] = &scene.PointLight{
		Position: mgl32.Vec3{5.0, 5.0, 3.0},
		Ambient:  mgl32.Vec3{0.08, 0.0, 0.12},
		Diffuse:  mgl32.Vec3{0.5, 0.1, 0.7},
		Specular: mgl32.Vec3{0.7, 0.3, 0.9},
	}
	rig.Points[2] = &scene.PointLight{
		Position: mgl32.Vec3{-6.0, 5.0, 2.0},
		Ambient:  mgl32.Vec3{0.0, 0.05, 0.05},
		Diffuse:  mgl32.Vec3{0.2, 0.8, 0.5},
		Specular: mgl32.Vec3{0.3, 1.0, 0.6},
	}
	return rig
}

// steps is the authored draw sequence. Order matters: the floor and
// backdrop go down first, then the pencil parts, then the standalone props.
var steps = []scene.Step{
	{
		Name:  "floor",
		Shape: meshes.Plane,
		Transform: scene.Transform{
			Scale:    mgl32.Vec3{35, 1, 15},
			Position: mgl32.Vec3{0, 0, 0},
		},
		Shading: scene.Shading{
			Material: "wood",
			Texture:  "ground",
			UVScale:  mgl32.Vec2{2, 2},
		},
	},
	{
		Name:  "pencil shaft",
		Shape: meshes.Cylinder,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{0.3, 3.0, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{0.5, 1.5, 3.5},
		},
		Shading: scene.Shading{
			Material: "wood",
			Texture:  "wood",
			UVScale:  mgl32.Vec2{0.5, 0.5},
		},
	},
	{
		Name:  "backdrop",
		Shape: meshes.Plane,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{35, 15, 20},
			RotationDeg: mgl32.Vec3{-90, 0, 0},
			Position:    mgl32.Vec3{0, 19, -15},
		},
		Shading: scene.Shading{
			Texture: "nightsky",
			UVScale: mgl32.Vec2{1, 1},
		},
	},
	{
		Name:  "pencil tip",
		Shape: meshes.Cone,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{0.3, 0.5, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{-2.5, 1.5, 3.5},
		},
		Shading: scene.Shading{
			Material: "metal",
			Color:    core.Color{R: 0.196, G: 0.196, B: 0.196, A: 1},
		},
	},
	{
		Name:  "eraser",
		Shape: meshes.Cylinder,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{0.3, 0.5, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{1.0, 1.5, 3.5},
		},
		Shading: scene.Shading{
			Texture: "eraser",
			UVScale: mgl32.Vec2{0.5, 0.5},
		},
	},
	{
		Name:  "box",
		Shape: meshes.Box,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{2, 2, 2},
			RotationDeg: mgl32.Vec3{0, 66, 0},
			Position:    mgl32.Vec3{-7, 1, 0},
		},
		Shading: scene.Shading{
			Color: core.Color{R: 0.18, G: 0.45, B: 0.28, A: 1},
		},
	},
	{
		Name:  "roof",
		Shape: meshes.Cone,
		Transform: scene.Transform{
			Scale:    mgl32.Vec3{1, 2, 1},
			Position: mgl32.Vec3{-7, 2, 0},
		},
		Shading: scene.Shading{
			Texture: "roof",
			UVScale: mgl32.Vec2{0.5, 0.5},
		},
	},
	{
		Name:  "sphere",
		Shape: meshes.Sphere,
		Transform: scene.Transform{
			Scale:    mgl32.Vec3{2.05, 2.05, 2.05},
			Position: mgl32.Vec3{4, 2.2, 0},
		},
		Shading: scene.Shading{
			// Untextured on purpose, to show off the lighting.
			Color: core.Color{R: 0.35, G: 0.55, B: 0.85, A: 1},
		},
	},
	{
		Name:  "pyramid",
		Shape: meshes.Pyramid,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{4, 7, 4},
			RotationDeg: mgl32.Vec3{0, 25, 0},
			Position:    mgl32.Vec3{9, 3.5, 0},
		},
		Shading: scene.Shading{
			Color: core.Color{R: 0.74, G: 0.62, B: 0.36, A: 1},
		},
	},
	{
		Name:  "tapered cylinder",
		Shape: meshes.TaperedCylinder,
		Transform: scene.Transform{
			Scale:       mgl32.Vec3{1.8, 3.7, 1.8},
			RotationDeg: mgl32.Vec3{0, 15, 0},
			Position:    mgl32.Vec3{-3, 0.75, -2.25},
		},
		Shading: scene.Shading{
			Color: core.Color{R: 0.65, G: 0.18, B: 0.22, A: 1},
		},
	},
}

// Steps returns a copy of the draw sequence in render order.
func Steps() []scene.Step {
	out := make([]scene.Step, len(steps))
	copy(out, steps)
	return out
}
