package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desk-scene/core"
	"desk-scene/meshes"
)

// fakeMeshDevice hands out sequential handles and records draw calls.
type fakeMeshDevice struct {
	next  uint32
	draws []uint32
}

func (d *fakeMeshDevice) Upload(data *core.MeshData) (uint32, error) {
	d.next++
	return d.next, nil
}

func (d *fakeMeshDevice) Draw(handle uint32)    { d.draws = append(d.draws, handle) }
func (d *fakeMeshDevice) Release(handle uint32) {}

func newTestManager(t *testing.T) (*Manager, *fakeSink, *fakeMeshDevice) {
	t.Helper()
	sink := newFakeSink()
	meshDev := &fakeMeshDevice{}
	mgr := NewManager(
		sink,
		NewTextureRegistry(&fakeTextureDevice{}, nil),
		NewMaterialRegistry(nil),
		meshes.NewLibrary(meshDev, nil),
		nil,
	)
	return mgr, sink, meshDev
}

func TestManagerSetTransform(t *testing.T) {
	mgr, sink, _ := newTestManager(t)

	tr := Transform{Scale: mgl32.Vec3{1, 1, 1}, Position: mgl32.Vec3{1, 2, 3}}
	mgr.SetTransform(tr)

	got, ok := sink.mat4s["model"]
	require.True(t, ok)
	assert.True(t, got.ApproxEqualThreshold(tr.Matrix(), 1e-6))
}

func TestManagerSetColorDisablesTexturing(t *testing.T) {
	mgr, sink, _ := newTestManager(t)

	mgr.SetColor(0.35, 0.55, 0.85, 1)

	assert.False(t, sink.bools["bUseTexture"])
	assert.Equal(t, mgl32.Vec4{0.35, 0.55, 0.85, 1}, sink.vec4s["objectColor"])
}

func TestManagerSetTextureForwardsSlot(t *testing.T) {
	mgr, sink, _ := newTestManager(t)
	require.NoError(t, mgr.Textures().LoadPixels(SolidPixels(0, 0, 0, 255), "wood"))
	require.NoError(t, mgr.Textures().LoadPixels(SolidPixels(0, 0, 0, 255), "ground"))

	mgr.SetTexture("ground")

	assert.True(t, sink.bools["bUseTexture"])
	assert.Equal(t, int32(1), sink.samplers["objectTexture"])
}

func TestManagerSetTextureUnknownTag(t *testing.T) {
	mgr, sink, _ := newTestManager(t)

	mgr.SetTexture("missing")

	assert.True(t, sink.bools["bUseTexture"])
	assert.Equal(t, int32(-1), sink.samplers["objectTexture"])
}

func TestManagerSetMaterial(t *testing.T) {
	mgr, sink, _ := newTestManager(t)
	mgr.Materials().Define("metal", mgl32.Vec3{0.4, 0.4, 0.4}, mgl32.Vec3{0.7, 0.7, 0.6}, 52)

	mgr.SetMaterial("metal")

	assert.Equal(t, mgl32.Vec3{0.4, 0.4, 0.4}, sink.vec3s["material.diffuseColor"])
	assert.Equal(t, mgl32.Vec3{0.7, 0.7, 0.6}, sink.vec3s["material.specularColor"])
	assert.Equal(t, float32(52), sink.floats["material.shininess"])
}

func TestManagerSetMaterialMissWritesNothing(t *testing.T) {
	mgr, sink, _ := newTestManager(t)

	mgr.SetMaterial("glass")

	_, wrote := sink.vec3s["material.diffuseColor"]
	assert.False(t, wrote)
	_, wrote = sink.floats["material.shininess"]
	assert.False(t, wrote)
}

func TestManagerDrawStepTextured(t *testing.T) {
	mgr, sink, meshDev := newTestManager(t)
	require.NoError(t, mgr.Textures().LoadPixels(SolidPixels(0, 0, 0, 255), "ground"))
	mgr.Materials().Define("wood", mgl32.Vec3{0.2, 0.2, 0.3}, mgl32.Vec3{}, 0.1)
	require.NoError(t, mgr.Meshes().Load(meshes.Plane))

	err := mgr.DrawStep(Step{
		Name:  "floor",
		Shape: meshes.Plane,
		Transform: Transform{
			Scale: mgl32.Vec3{35, 1, 15},
		},
		Shading: Shading{
			Material: "wood",
			Texture:  "ground",
			UVScale:  mgl32.Vec2{2, 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, sink.bools["bUseTexture"])
	assert.Equal(t, int32(0), sink.samplers["objectTexture"])
	assert.Equal(t, mgl32.Vec2{2, 2}, sink.vec2s["UVscale"])
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.3}, sink.vec3s["material.diffuseColor"])
	assert.Len(t, meshDev.draws, 1)
}

func TestManagerDrawStepDefaultUVScale(t *testing.T) {
	mgr, sink, _ := newTestManager(t)
	require.NoError(t, mgr.Textures().LoadPixels(SolidPixels(0, 0, 0, 255), "sky"))
	require.NoError(t, mgr.Meshes().Load(meshes.Plane))

	err := mgr.DrawStep(Step{
		Shape:     meshes.Plane,
		Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}},
		Shading:   Shading{Texture: "sky"},
	})
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec2{1, 1}, sink.vec2s["UVscale"])
}

func TestManagerDrawStepColored(t *testing.T) {
	mgr, sink, meshDev := newTestManager(t)
	require.NoError(t, mgr.Meshes().Load(meshes.Sphere))

	err := mgr.DrawStep(Step{
		Shape:     meshes.Sphere,
		Transform: Transform{Scale: mgl32.Vec3{2.05, 2.05, 2.05}},
		Shading:   Shading{Color: core.Color{R: 0.35, G: 0.55, B: 0.85, A: 1}},
	})
	require.NoError(t, err)

	assert.False(t, sink.bools["bUseTexture"])
	assert.Equal(t, mgl32.Vec4{0.35, 0.55, 0.85, 1}, sink.vec4s["objectColor"])
	assert.Len(t, meshDev.draws, 1)
}

func TestManagerDrawStepUnloadedMesh(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	err := mgr.DrawStep(Step{Shape: meshes.Box})
	assert.ErrorIs(t, err, meshes.ErrMeshNotLoaded)
}

func TestManagerRenderContinuesAfterFailure(t *testing.T) {
	mgr, _, meshDev := newTestManager(t)
	require.NoError(t, mgr.Meshes().Load(meshes.Plane))

	mgr.Render([]Step{
		{Name: "broken", Shape: meshes.Box}, // never loaded
		{Name: "ok", Shape: meshes.Plane, Transform: Transform{Scale: mgl32.Vec3{1, 1, 1}}},
	})

	assert.Len(t, meshDev.draws, 1)
}

func TestManagerApplyLights(t *testing.T) {
	mgr, sink, _ := newTestManager(t)

	mgr.ApplyLights(&LightRig{})

	assert.True(t, sink.bools["bUseLighting"])
}
