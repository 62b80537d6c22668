package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRegistryFind(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	reg.Define("metal", mgl32.Vec3{0.4, 0.4, 0.4}, mgl32.Vec3{0.7, 0.7, 0.6}, 52)
	reg.Define("wood", mgl32.Vec3{0.2, 0.2, 0.3}, mgl32.Vec3{0, 0, 0}, 0.1)

	m, ok := reg.Find("wood")
	require.True(t, ok)
	assert.Equal(t, "wood", m.Tag)
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.3}, m.Diffuse)
	assert.InDelta(t, 0.1, m.Shininess, 1e-6)
}

func TestMaterialRegistryFindMiss(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	reg.Define("metal", mgl32.Vec3{}, mgl32.Vec3{}, 1)

	_, ok := reg.Find("glass")
	assert.False(t, ok)
}

func TestMaterialRegistryFindEmpty(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	_, ok := reg.Find("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestMaterialRegistryDuplicateFirstWins(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	reg.Define("metal", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 1)
	reg.Define("metal", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, 2)

	m, ok := reg.Find("metal")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Diffuse)
	assert.Equal(t, 2, reg.Len())
}

func TestMaterialRegistryTags(t *testing.T) {
	reg := NewMaterialRegistry(nil)
	reg.Define("metal", mgl32.Vec3{}, mgl32.Vec3{}, 1)
	reg.Define("wood", mgl32.Vec3{}, mgl32.Vec3{}, 1)
	reg.Define("glass", mgl32.Vec3{}, mgl32.Vec3{}, 1)

	assert.Equal(t, []string{"metal", "wood", "glass"}, reg.Tags())
}
