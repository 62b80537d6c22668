// Package meshes provides the fixed library of primitive shapes the scene
// can draw. Tessellation happens on the CPU; upload and draw calls go
// through the Device interface so the library is testable without a GPU.
package meshes

import (
	"errors"
	"fmt"

	"desk-scene/core"
)

// Kind enumerates the shapes the library can load and draw.
type Kind int

const (
	Plane Kind = iota
	Box
	Sphere
	Cone
	Cylinder
	TaperedCylinder
	Pyramid
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	case TaperedCylinder:
		return "tapered cylinder"
	case Pyramid:
		return "pyramid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// AllKinds returns every shape kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ErrMeshNotLoaded is returned by Draw when the kind was never loaded.
var ErrMeshNotLoaded = errors.New("mesh not loaded")

// Device is the GPU side of the library. The OpenGL implementation lives in
// internal/opengl; tests substitute a recording fake.
type Device interface {
	// Upload transfers the geometry to the GPU and returns a draw handle.
	Upload(data *core.MeshData) (uint32, error)
	// Draw issues one indexed triangle draw of the uploaded geometry.
	Draw(handle uint32)
	// Release frees the uploaded geometry.
	Release(handle uint32)
}

// Library tessellates and uploads each shape kind at most once and
// dispatches draw calls by kind.
type Library struct {
	device  Device
	log     core.Logger
	handles map[Kind]uint32
}

func NewLibrary(device Device, log core.Logger) *Library {
	if log == nil {
		log = core.NewNopLogger()
	}
	return &Library{
		device:  device,
		log:     log,
		handles: make(map[Kind]uint32, kindCount),
	}
}

// Load tessellates and uploads the shape. Loading an already-loaded kind is
// a no-op, so callers may load freely per scene object.
func (l *Library) Load(kind Kind) error {
	if _, ok := l.handles[kind]; ok {
		return nil
	}
	data, err := Tessellate(kind)
	if err != nil {
		return err
	}
	handle, err := l.device.Upload(data)
	if err != nil {
		return fmt.Errorf("upload %s: %w", kind, err)
	}
	l.handles[kind] = handle
	l.log.Debugf("loaded %s mesh (%d vertices, %d indices)",
		kind, len(data.Vertices), len(data.Indices))
	return nil
}

// Loaded reports whether the kind has been uploaded.
func (l *Library) Loaded(kind Kind) bool {
	_, ok := l.handles[kind]
	return ok
}

// Draw issues a draw call for the kind. The kind must have been loaded.
func (l *Library) Draw(kind Kind) error {
	handle, ok := l.handles[kind]
	if !ok {
		return fmt.Errorf("%s: %w", kind, ErrMeshNotLoaded)
	}
	l.device.Draw(handle)
	return nil
}

// ReleaseAll frees every uploaded shape.
func (l *Library) ReleaseAll() {
	for kind, handle := range l.handles {
		l.device.Release(handle)
		delete(l.handles, kind)
	}
}

// Tessellate builds the CPU geometry for a shape kind. Shapes that scene
// transforms stand on the ground (cone, cylinder, tapered cylinder) span
// y in [0,1]; the rest are centered on the origin.
func Tessellate(kind Kind) (*core.MeshData, error) {
	switch kind {
	case Plane:
		return NewPlane(), nil
	case Box:
		return NewBox(), nil
	case Sphere:
		return NewSphere(32, 16), nil
	case Cone:
		return NewCone(32), nil
	case Cylinder:
		return NewCylinder(32), nil
	case TaperedCylinder:
		return NewTaperedCylinder(32), nil
	case Pyramid:
		return NewPyramid(), nil
	default:
		return nil, fmt.Errorf("unknown mesh kind %d", int(kind))
	}
}
