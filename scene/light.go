package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/render"
)

// MaxPointLights is the number of point-light slots the shader exposes.
const MaxPointLights = 4

// DirectionalLight is a scene-wide light with a direction but no position.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// PointLight is a positioned light occupying one of the fixed shader slots.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// LightRig holds the full lighting setup pushed to the sink: one directional
// light and up to MaxPointLights point lights addressed by slot. Lights are
// write-only state; the rig keeps no link to the sink after Apply.
type LightRig struct {
	Directional *DirectionalLight
	Points      [MaxPointLights]*PointLight
}

// SetPoint places a point light in the given slot.
func (r *LightRig) SetPoint(slot int, l PointLight) error {
	if slot < 0 || slot >= MaxPointLights {
		return fmt.Errorf("point light slot %d out of range [0,%d)", slot, MaxPointLights)
	}
	r.Points[slot] = &l
	return nil
}

// Apply pushes the rig to the sink: enables lighting, writes the directional
// light (when set), and writes every point-light slot, marking empty slots
// inactive so stale values never light the scene.
func (r *LightRig) Apply(sink render.ShaderParams) {
	sink.SetBoolValue(render.UniformUseLighting, true)

	if d := r.Directional; d != nil {
		sink.SetVec3Value("directionalLight.direction", d.Direction)
		sink.SetVec3Value("directionalLight.ambient", d.Ambient)
		sink.SetVec3Value("directionalLight.diffuse", d.Diffuse)
		sink.SetVec3Value("directionalLight.specular", d.Specular)
		sink.SetBoolValue("directionalLight.bActive", true)
	} else {
		sink.SetBoolValue("directionalLight.bActive", false)
	}

	for i, p := range r.Points {
		name := func(field string) string {
			return fmt.Sprintf("pointLights[%d].%s", i, field)
		}
		if p == nil {
			sink.SetBoolValue(name("bActive"), false)
			continue
		}
		sink.SetVec3Value(name("position"), p.Position)
		sink.SetVec3Value(name("ambient"), p.Ambient)
		sink.SetVec3Value(name("diffuse"), p.Diffuse)
		sink.SetVec3Value(name("specular"), p.Specular)
		sink.SetBoolValue(name("bActive"), true)
	}
}
