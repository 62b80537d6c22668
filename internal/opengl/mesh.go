package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"desk-scene/core"
)

// gpuMesh holds the GL buffer objects for one uploaded mesh.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// MeshDevice implements meshes.Device: it uploads indexed geometry into
// VAO/VBO/EBO triples and draws them by handle.
type MeshDevice struct {
	meshes map[uint32]*gpuMesh
	next   uint32
}

func newMeshDevice() *MeshDevice {
	return &MeshDevice{meshes: make(map[uint32]*gpuMesh)}
}

// Upload transfers the geometry to the GPU and returns a draw handle.
func (d *MeshDevice) Upload(data *core.MeshData) (uint32, error) {
	if data == nil || len(data.Vertices) == 0 {
		return 0, fmt.Errorf("no vertex data")
	}
	if len(data.Indices) == 0 {
		return 0, fmt.Errorf("no index data")
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &gpuMesh{indexCount: int32(len(data.Indices))}
	gl.GenVertexArrays(1, &gpu.vao)
	gl.GenBuffers(1, &gpu.vbo)
	gl.BindVertexArray(gpu.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(data.Vertices)*int(stride),
		gl.Ptr(data.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	gl.GenBuffers(1, &gpu.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(data.Indices)*4,
		gl.Ptr(data.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	d.next++
	d.meshes[d.next] = gpu
	return d.next, nil
}

// Draw issues one indexed triangle draw for the handle. Unknown handles are
// ignored.
func (d *MeshDevice) Draw(handle uint32) {
	gpu, ok := d.meshes[handle]
	if !ok {
		return
	}
	gl.BindVertexArray(gpu.vao)
	gl.DrawElements(gl.TRIANGLES, gpu.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release frees the GL buffers for the handle.
func (d *MeshDevice) Release(handle uint32) {
	gpu, ok := d.meshes[handle]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &gpu.vbo)
	gl.DeleteBuffers(1, &gpu.ebo)
	gl.DeleteVertexArrays(1, &gpu.vao)
	delete(d.meshes, handle)
}

// ReleaseAll frees every uploaded mesh.
func (d *MeshDevice) ReleaseAll() {
	for handle := range d.meshes {
		d.Release(handle)
	}
}
