package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want mgl32.Vec3, got mgl32.Vec4, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta)
	assert.InDelta(t, want.Y(), got.Y(), delta)
	assert.InDelta(t, want.Z(), got.Z(), delta)
}

func TestTransformIdentity(t *testing.T) {
	tr := Transform{Scale: mgl32.Vec3{1, 1, 1}}
	m := tr.Matrix()
	assert.True(t, m.ApproxEqualThreshold(mgl32.Ident4(), 1e-6))
}

func TestTransformTranslationOutermost(t *testing.T) {
	tr := Transform{
		Scale:    mgl32.Vec3{1, 1, 1},
		Position: mgl32.Vec3{1, 2, 3},
	}
	got := tr.Matrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVec3InDelta(t, mgl32.Vec3{1, 2, 3}, got, 1e-6)
}

func TestTransformScaleThenRotate(t *testing.T) {
	// A unit X vector scaled to 0.3 and rotated 90 degrees around Z must end
	// up on the Y axis; rotation applies after scale.
	tr := Transform{
		Scale:       mgl32.Vec3{0.3, 3.0, 0.3},
		RotationDeg: mgl32.Vec3{0, 0, 90},
	}
	got := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec3InDelta(t, mgl32.Vec3{0, 0.3, 0}, got, 1e-5)
}

func TestTransformRotationOrderZYX(t *testing.T) {
	// With X and Z both at 90 degrees, the X rotation must apply first.
	// Rx(90) leaves (1,0,0) alone, then Rz(90) moves it to (0,1,0); the
	// reverse order would land on (0,0,1).
	tr := Transform{
		Scale:       mgl32.Vec3{1, 1, 1},
		RotationDeg: mgl32.Vec3{90, 0, 90},
	}
	got := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, got, 1e-5)
}

func TestTransformDegreesNotRadians(t *testing.T) {
	tr := Transform{
		Scale:       mgl32.Vec3{1, 1, 1},
		RotationDeg: mgl32.Vec3{0, 180, 0},
	}
	got := tr.Matrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, got, 1e-5)
}
