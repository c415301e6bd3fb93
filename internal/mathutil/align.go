package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEps bounds how close a unit direction must be to ±Y before the
// general Rodrigues formula divides by a near-zero sin².
const parallelEps = 1e-8

// AxisY is the template cylinder axis. Generated cylinders extend along +Y.
var AxisY = mgl64.Vec3{0, 1, 0}

// RotationTo builds the 3×3 rotation that maps the +Y axis onto dir.
// dir must be unit length.
//
// The three-way branch (parallel / anti-parallel / general Rodrigues) is
// deliberate: collapsing it into the single general formula divides by
// sin² of the angle, which vanishes for the first two cases.
func RotationTo(dir mgl64.Vec3) mgl64.Mat3 {
	if dir.ApproxEqualThreshold(AxisY, parallelEps) {
		return mgl64.Ident3()
	}
	if dir.ApproxEqualThreshold(AxisY.Mul(-1), parallelEps) {
		// 180° flip about Z.
		return mgl64.Diag3(mgl64.Vec3{-1, -1, 1})
	}

	v := AxisY.Cross(dir)
	s := v.Len()
	c := AxisY.Dot(dir)

	k := SkewSymmetric(v)
	k2 := k.Mul3(k)
	return mgl64.Ident3().Add(k).Add(k2.Mul((1 - c) / (s * s)))
}

// SkewSymmetric returns the cross-product matrix K of v, so that
// K·w == v × w for any w.
func SkewSymmetric(v mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -v.Z(), v.Y()},
		mgl64.Vec3{v.Z(), 0, -v.X()},
		mgl64.Vec3{-v.Y(), v.X(), 0},
	)
}

// SafeNormalize returns the unit vector of v, or v unchanged when its
// length is (near) zero. mgl64.Vec3.Normalize would produce NaNs there.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return v
	}
	return v.Mul(1 / l)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
