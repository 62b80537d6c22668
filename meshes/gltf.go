package meshes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"desk-scene/core"
)

// LoadGLTF reads a .glb or .gltf file and converts its first mesh primitive
// into drawable geometry, so authored props can come from modeling tools
// instead of the built-in tessellators.
func LoadGLTF(path string) (*core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return FromDocument(doc)
}

// FromDocument converts the first primitive of the first mesh in doc.
// Positions are required; normals default to +Y and UVs to zero when the
// primitive does not carry them.
func FromDocument(doc *gltf.Document) (*core.MeshData, error) {
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf document has no mesh primitives")
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("gltf primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	vertices := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: mgl32.Vec3{p[0], p[1], p[2]},
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(normals) {
			v.Normal = mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]}
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		vertices[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("gltf indices: %w", err)
		}
	}

	return &core.MeshData{Vertices: vertices, Indices: indices}, nil
}
