package gymscene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the ephemeral per-object placement consumed by the next draw:
// a scale, per-axis rotations in degrees, and a translation.
type Transform struct {
	Scale     mgl32.Vec3
	RotDeg    mgl32.Vec3 // rotation about X, Y, Z in degrees
	Translate mgl32.Vec3
}

// Mat4 composes the model matrix as T * Rz * Ry * Rx * S: scale first, then
// rotation about X, then Y, then Z, then translation.
func (t Transform) Mat4() mgl32.Mat4 {
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotDeg.Z()))
	translate := mgl32.Translate3D(t.Translate.X(), t.Translate.Y(), t.Translate.Z())
	return translate.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(scale)
}

// at is shorthand for building a Transform in the scene table.
func at(sx, sy, sz, rx, ry, rz, tx, ty, tz float32) Transform {
	return Transform{
		Scale:     mgl32.Vec3{sx, sy, sz},
		RotDeg:    mgl32.Vec3{rx, ry, rz},
		Translate: mgl32.Vec3{tx, ty, tz},
	}
}
