// Package viewmatrix builds the camera rotation and orthographic fit used
// by the preview rasterizer.
package viewmatrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/mathutil"
)

// Default preview camera: a slight tilt so planar molecules don't project
// to a line.
const (
	DefaultYawDeg   = 30
	DefaultPitchDeg = -20
)

// ViewRotation composes pitch (about X) and yaw (about Y) into one 3×3
// view matrix.
func ViewRotation(yawDeg, pitchDeg float64) mgl64.Mat3 {
	yaw := mathutil.Deg2Rad(yawDeg)
	pitch := mathutil.Deg2Rad(pitchDeg)
	return mgl64.Rotate3DX(pitch).Mul3(mgl64.Rotate3DY(yaw))
}

// Fit computes the orthographic center and scale that place all rotated
// vertices inside renderSize with the given pixel margin.
func Fit(vertexSets [][]mgl64.Vec3, r mgl64.Mat3, renderSize, margin int) (center mgl64.Vec3, scale float64) {
	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	seen := false
	for _, verts := range vertexSets {
		for _, v := range verts {
			t := r.Mul3x1(v)
			seen = true
			for k := 0; k < 3; k++ {
				if t[k] < min[k] {
					min[k] = t[k]
				}
				if t[k] > max[k] {
					max[k] = t[k]
				}
			}
		}
	}
	if !seen {
		return mgl64.Vec3{}, 1
	}

	center = min.Add(max).Mul(0.5)

	span := max.X() - min.X()
	if s := max.Y() - min.Y(); s > span {
		span = s
	}
	if span < 0.001 {
		span = 0.001
	}

	scale = float64(renderSize-2*margin) / span
	return center, scale
}

// Project transforms world vertices to screen coordinates plus depth.
// Screen Y grows downward; depth grows toward the viewer.
func Project(verts []mgl64.Vec3, r mgl64.Mat3, center mgl64.Vec3, scale float64, renderSize int) (px, py, pz []float64) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	half := float64(renderSize) / 2
	for i, v := range verts {
		t := r.Mul3x1(v)
		px[i] = (t.X()-center.X())*scale + half
		py[i] = -(t.Y()-center.Y())*scale + half
		pz[i] = t.Z()
	}
	return px, py, pz
}
