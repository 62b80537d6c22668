package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds the per-object model transform parameters: scale factors,
// rotation angles in degrees around X/Y/Z, and translation. Values are
// recomputed per draw step and never stored between frames.
type Transform struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
}

// Matrix composes the model matrix as T * Rz * Ry * Rx * S: translation
// outermost, then rotations in fixed Z-Y-X order, then scale. The rotation
// order is a contract with scene authors; all three axes are applied even
// when their angles are zero.
func (t Transform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotationDeg.Z()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotationDeg.Y()))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotationDeg.X()))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(scale)
}
