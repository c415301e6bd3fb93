package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RasterizeTriangle fills one flat-shaded triangle with z-buffering.
// Vertices i0..i2 index into the projected px/py/pz slices; color is the
// instance's linear RGB in [0, 1].
//
// This is the hot path: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, px, py, pz []float64, i0, i1, i2 int, color [3]float64, lc *LightConfig) {
	n := len(px)
	if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= n || i1 >= n || i2 >= n {
		return
	}

	x0, y0, z0 := px[i0], py[i0], pz[i0]
	x1, y1, z1 := px[i1], py[i1], pz[i1]
	x2, y2, z2 := px[i2], py[i2], pz[i2]

	// Face normal in screen space for flat shading.
	e1 := mgl64.Vec3{x1 - x0, y1 - y0, z1 - z0}
	e2 := mgl64.Vec3{x2 - x0, y2 - y0, z2 - z0}
	fn := e1.Cross(e2)
	nl := fn.Len()
	if nl < 1e-8 {
		return
	}
	fn = fn.Mul(1 / nl)

	shade := lc.ComputeShade(fn) * lc.Exposure

	// Shaded, tone-mapped, gamma-encoded face color.
	var rgb [3]uint8
	for k := 0; k < 3; k++ {
		v := ACESTonemap(color[k] * shade)
		rgb[k] = clamp255(math.Pow(v, lc.InvGamma) * 255)
	}

	w, h := fb.Width, fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = rgb[0]
			fb.Color[pxIdx+1] = rgb[1]
			fb.Color[pxIdx+2] = rgb[2]
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
