package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is a normalized RGBA color (components in 0..1).
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Vec4 returns the color as a vector for shader upload.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Vertex is the CPU-side vertex layout shared by all meshes:
// position, normal, and texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// MeshData holds CPU-side indexed triangle geometry.
// GPU upload is handled by the renderer backend.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}
