package meshes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
)

var (
	up   = mgl32.Vec3{0, 1, 0}
	down = mgl32.Vec3{0, -1, 0}
)

// NewPlane generates a flat quad spanning [-1,1] on X and Z at y=0, facing up.
func NewPlane() *core.MeshData {
	vertices := []core.Vertex{
		{Position: mgl32.Vec3{-1, 0, -1}, Normal: up, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{1, 0, -1}, Normal: up, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{1, 0, 1}, Normal: up, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{-1, 0, 1}, Normal: up, UV: mgl32.Vec2{0, 0}},
	}
	indices := []uint32{0, 3, 1, 1, 3, 2}
	return &core.MeshData{Vertices: vertices, Indices: indices}
}

// NewBox generates a unit cube centered on the origin, one quad per face so
// normals stay flat.
func NewBox() *core.MeshData {
	type face struct {
		normal mgl32.Vec3
		// corners in CCW order viewed from outside
		corners [4]mgl32.Vec3
	}
	h := float32(0.5)
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	var vertices []core.Vertex
	var indices []uint32
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, core.Vertex{Position: c, Normal: f.normal, UV: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return &core.MeshData{Vertices: vertices, Indices: indices}
}

// NewSphere generates a UV-sphere of radius 1 centered on the origin.
func NewSphere(segments, rings int) *core.MeshData {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			normal := mgl32.Vec3{sinPhi * math32.Cos(theta), cosPhi, sinPhi * math32.Sin(theta)}
			vertices = append(vertices, core.Vertex{
				Position: normal,
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)
			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}
	return &core.MeshData{Vertices: vertices, Indices: indices}
}

// NewCone generates a cone with base radius 1 on the ground plane (y=0) and
// tip at y=1.
func NewCone(segments int) *core.MeshData {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	// Side: one tip vertex per segment keeps the slanted normals smooth
	// around the rim without averaging across the apex.
	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		cosT := math32.Cos(theta)
		sinT := math32.Sin(theta)
		normal := mgl32.Vec3{cosT, 1, sinT}.Normalize()

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT, 0, sinT},
			Normal:   normal,
			UV:       mgl32.Vec2{float32(i) / float32(segments), 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{0, 1, 0},
			Normal:   normal,
			UV:       mgl32.Vec2{float32(i) / float32(segments), 1},
		})
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
	}

	appendDisk(&vertices, &indices, segments, 1, 0, down)
	return &core.MeshData{Vertices: vertices, Indices: indices}
}

// NewCylinder generates a cylinder of radius 1 spanning y in [0,1] with
// both caps.
func NewCylinder(segments int) *core.MeshData {
	return newFrustum(segments, 1, 1)
}

// NewTaperedCylinder generates a cylinder narrowing from radius 1 at the
// bottom to 0.5 at the top, y in [0,1], with both caps.
func NewTaperedCylinder(segments int) *core.MeshData {
	return newFrustum(segments, 1, 0.5)
}

// newFrustum builds the shared side-plus-caps geometry for cylinders.
// bottomR and topR are the radii at y=0 and y=1.
func newFrustum(segments int, bottomR, topR float32) *core.MeshData {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	slope := bottomR - topR

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		cosT := math32.Cos(theta)
		sinT := math32.Sin(theta)
		normal := mgl32.Vec3{cosT, slope, sinT}.Normalize()
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * bottomR, 0, sinT * bottomR},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * topR, 1, sinT * topR},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 1},
		})
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendDisk(&vertices, &indices, segments, topR, 1, up)
	appendDisk(&vertices, &indices, segments, bottomR, 0, down)
	return &core.MeshData{Vertices: vertices, Indices: indices}
}

// appendDisk adds a filled circle of the given radius at height y, wound to
// face along normal (up or down).
func appendDisk(vertices *[]core.Vertex, indices *[]uint32, segments int, radius, y float32, normal mgl32.Vec3) {
	center := uint32(len(*vertices))
	*vertices = append(*vertices, core.Vertex{
		Position: mgl32.Vec3{0, y, 0},
		Normal:   normal,
		UV:       mgl32.Vec2{0.5, 0.5},
	})
	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		cosT := math32.Cos(theta)
		sinT := math32.Sin(theta)
		*vertices = append(*vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, y, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
		})
	}
	for i := 0; i < segments; i++ {
		a := center + 1 + uint32(i)
		b := a + 1
		if normal.Y() > 0 {
			*indices = append(*indices, center, a, b)
		} else {
			*indices = append(*indices, center, b, a)
		}
	}
}

// NewPyramid generates a triangular pyramid (tetrahedron-like, three side
// faces over a triangular base) centered vertically on the origin: base at
// y=-0.5, apex at y=0.5. Base corners sit on a circle of radius 0.5.
func NewPyramid() *core.MeshData {
	const r = float32(0.5)
	apex := mgl32.Vec3{0, 0.5, 0}

	corners := make([]mgl32.Vec3, 3)
	for i := 0; i < 3; i++ {
		// 90, 210, 330 degrees: one corner faces +Z, the base edge faces -Z.
		theta := math32.Pi/2 + float32(i)*2*math32.Pi/3
		corners[i] = mgl32.Vec3{math32.Cos(theta) * r, -0.5, math32.Sin(theta) * r}
	}

	var vertices []core.Vertex
	var indices []uint32

	// Base, facing down.
	base := uint32(len(vertices))
	baseUV := [3]mgl32.Vec2{{0.5, 1}, {0, 0}, {1, 0}}
	for i, c := range corners {
		vertices = append(vertices, core.Vertex{Position: c, Normal: down, UV: baseUV[i]})
	}
	indices = append(indices, base, base+2, base+1)

	// Sides, one flat-shaded triangle each.
	for i := 0; i < 3; i++ {
		a := corners[i]
		b := corners[(i+1)%3]
		e1 := b.Sub(a)
		e2 := apex.Sub(a)
		normal := e2.Cross(e1).Normalize()

		s := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, UV: mgl32.Vec2{0, 0}},
			core.Vertex{Position: b, Normal: normal, UV: mgl32.Vec2{1, 0}},
			core.Vertex{Position: apex, Normal: normal, UV: mgl32.Vec2{0.5, 1}},
		)
		indices = append(indices, s, s+2, s+1)
	}

	return &core.MeshData{Vertices: vertices, Indices: indices}
}
