// Package scene holds the rendering core: texture and material registries,
// the lighting rig, model-transform composition, and the Manager facade
// that forwards shading state to the shader-parameter sink.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
	"desk-scene/meshes"
	"desk-scene/render"
)

// Manager composes model transforms and forwards shading state to the sink.
// It owns the registries and the mesh library for its lifetime; all calls
// belong on the GL thread.
type Manager struct {
	sink      render.ShaderParams
	textures  *TextureRegistry
	materials *MaterialRegistry
	meshes    *meshes.Library
	log       core.Logger
}

func NewManager(sink render.ShaderParams, textures *TextureRegistry, materials *MaterialRegistry, lib *meshes.Library, log core.Logger) *Manager {
	if log == nil {
		log = core.NewNopLogger()
	}
	return &Manager{
		sink:      sink,
		textures:  textures,
		materials: materials,
		meshes:    lib,
		log:       log,
	}
}

// Textures returns the texture registry.
func (m *Manager) Textures() *TextureRegistry { return m.textures }

// Materials returns the material registry.
func (m *Manager) Materials() *MaterialRegistry { return m.materials }

// Meshes returns the mesh library.
func (m *Manager) Meshes() *meshes.Library { return m.meshes }

// SetTransform builds the model matrix from the transform parameters and
// forwards it to the sink.
func (m *Manager) SetTransform(t Transform) {
	m.sink.SetMat4Value(render.UniformModel, t.Matrix())
}

// SetColor disables texturing and forwards a flat RGBA object color.
func (m *Manager) SetColor(r, g, b, a float32) {
	m.sink.SetBoolValue(render.UniformUseTexture, false)
	m.sink.SetVec4Value(render.UniformObjectColor, mgl32.Vec4{r, g, b, a})
}

// SetTexture enables texturing and forwards the slot index registered for
// tag as the active sampler. An unregistered tag forwards -1, which the
// shader treats as "no valid texture"; the miss is logged, not fatal.
func (m *Manager) SetTexture(tag string) {
	m.sink.SetBoolValue(render.UniformUseTexture, true)
	slot := m.textures.FindSlot(tag)
	if slot < 0 {
		m.log.Warnf("texture tag %q not registered; drawing without a valid texture", tag)
	}
	m.sink.SetSampler2DValue(render.UniformObjectTexture, int32(slot))
}

// SetUVScale forwards the texture tiling factors.
func (m *Manager) SetUVScale(u, v float32) {
	m.sink.SetVec2Value(render.UniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial forwards the diffuse color, specular color, and shininess of
// the material registered for tag. A miss leaves the sink untouched.
func (m *Manager) SetMaterial(tag string) {
	mat, ok := m.materials.Find(tag)
	if !ok {
		m.log.Debugf("material tag %q not defined; keeping previous material state", tag)
		return
	}
	m.sink.SetVec3Value("material.diffuseColor", mat.Diffuse)
	m.sink.SetVec3Value("material.specularColor", mat.Specular)
	m.sink.SetFloatValue("material.shininess", mat.Shininess)
}

// ApplyLights pushes the lighting rig to the sink.
func (m *Manager) ApplyLights(rig *LightRig) {
	rig.Apply(m.sink)
}

// Shading selects the surface state for one draw step. Exactly one of
// Texture / Color applies: a non-empty Texture tag wins and Color is
// ignored; otherwise the object is flat-colored. Material is optional.
type Shading struct {
	Texture  string
	UVScale  mgl32.Vec2 // zero value means no tiling (1,1)
	Material string
	Color    core.Color
}

// Step is one entry in a scene's declarative draw sequence: which shape to
// draw, where, and with what surface.
type Step struct {
	Name      string
	Shape     meshes.Kind
	Transform Transform
	Shading   Shading
}

// DrawStep applies the step's transform and shading and issues its draw
// call. Lookup misses degrade the visuals but never abort the frame; only a
// missing mesh is reported.
func (m *Manager) DrawStep(s Step) error {
	m.SetTransform(s.Transform)

	if s.Shading.Material != "" {
		m.SetMaterial(s.Shading.Material)
	}

	if s.Shading.Texture != "" {
		m.SetTexture(s.Shading.Texture)
		uv := s.Shading.UVScale
		if uv.X() == 0 && uv.Y() == 0 {
			uv = mgl32.Vec2{1, 1}
		}
		m.SetUVScale(uv.X(), uv.Y())
	} else {
		c := s.Shading.Color
		m.SetColor(c.R, c.G, c.B, c.A)
	}

	return m.meshes.Draw(s.Shape)
}

// Render executes the steps in order. Per the degrade-don't-abort policy a
// failed step is logged and the remaining steps still run.
func (m *Manager) Render(steps []Step) {
	for _, s := range steps {
		if err := m.DrawStep(s); err != nil {
			m.log.Errorf("draw %q: %v", s.Name, err)
		}
	}
}
