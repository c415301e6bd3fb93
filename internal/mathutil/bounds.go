package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds returns the axis-aligned bounding box of pts as per-axis extent
// and midpoint. Empty input yields zero vectors.
func Bounds(pts []mgl64.Vec3) (size, center mgl64.Vec3) {
	if len(pts) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}

	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}

	return max.Sub(min), min.Add(max).Mul(0.5)
}
