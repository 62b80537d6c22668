// Package render defines the shader-parameter sink consumed by the scene
// core. The sink receives named uniform values that apply to the next draw
// call; the OpenGL-backed implementation lives in internal/opengl.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared between the scene core and the shader program.
const (
	UniformModel         = "model"
	UniformView          = "view"
	UniformProjection    = "projection"
	UniformViewPosition  = "viewPosition"
	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	UniformUseLighting   = "bUseLighting"
	UniformUVScale       = "UVscale"
)

// ShaderParams is the write-only uniform-setting interface. Implementations
// must tolerate names not present in the linked program (silently ignore or
// log; never fail), so the core can degrade instead of aborting.
type ShaderParams interface {
	SetMat4Value(name string, value mgl32.Mat4)
	SetVec4Value(name string, value mgl32.Vec4)
	SetVec3Value(name string, value mgl32.Vec3)
	SetVec2Value(name string, value mgl32.Vec2)
	SetFloatValue(name string, value float32)
	SetIntValue(name string, value int32)
	SetBoolValue(name string, value bool)

	// SetSampler2DValue assigns a texture unit index to a sampler uniform.
	// A negative unit is allowed and means "no valid texture".
	SetSampler2DValue(name string, unit int32)
}
