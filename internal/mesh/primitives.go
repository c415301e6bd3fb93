package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NewSphere generates an origin-centered UV sphere as a flat triangle list.
// The grid has (segments+1)×(segments+1) parameter points; each grid quad
// contributes two triangles. Normals equal the normalized positions.
// Output is deterministic for a given (radius, segments).
func NewSphere(radius float64, segments int) *Mesh {
	grid := make([]mgl64.Vec3, 0, (segments+1)*(segments+1))
	for i := 0; i <= segments; i++ {
		theta := float64(i) * math.Pi / float64(segments)
		sinT, cosT := math.Sin(theta), math.Cos(theta)

		for j := 0; j <= segments; j++ {
			phi := float64(j) * 2 * math.Pi / float64(segments)
			sinP, cosP := math.Sin(phi), math.Cos(phi)

			grid = append(grid, mgl64.Vec3{
				radius * sinT * cosP,
				radius * sinT * sinP,
				radius * cosT,
			})
		}
	}

	stride := segments + 1
	verts := make([]mgl64.Vec3, 0, segments*segments*6)
	normals := make([]mgl64.Vec3, 0, segments*segments*6)

	emit := func(idx int) {
		p := grid[idx]
		verts = append(verts, p)
		l := p.Len()
		if l > 0 {
			p = p.Mul(1 / l)
		}
		normals = append(normals, p)
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			p1 := i*stride + j
			p2 := p1 + 1
			p3 := (i+1)*stride + j
			p4 := p3 + 1

			emit(p1)
			emit(p2)
			emit(p3)

			emit(p2)
			emit(p4)
			emit(p3)
		}
	}

	return New(verts, normals)
}

// NewCylinder generates an origin-centered open cylinder (lateral surface
// only, no caps) along the Y axis, as a flat triangle list. Two rings of
// `segments` points sit at y = ±height/2; side normals radiate outward in
// the XZ plane.
func NewCylinder(radius, height float64, segments int) *Mesh {
	ringVerts := make([]mgl64.Vec3, 0, segments*2)
	ringNormals := make([]mgl64.Vec3, 0, segments*2)

	for _, y := range []float64{-height / 2, height / 2} {
		for i := 0; i < segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			x := radius * math.Cos(angle)
			z := radius * math.Sin(angle)

			ringVerts = append(ringVerts, mgl64.Vec3{x, y, z})
			ringNormals = append(ringNormals, mgl64.Vec3{x, 0, z}.Normalize())
		}
	}

	verts := make([]mgl64.Vec3, 0, segments*6)
	normals := make([]mgl64.Vec3, 0, segments*6)

	emit := func(idx int) {
		verts = append(verts, ringVerts[idx])
		normals = append(normals, ringNormals[idx])
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments

		p1 := i
		p2 := next
		p3 := i + segments
		p4 := next + segments

		emit(p1)
		emit(p2)
		emit(p4)

		emit(p1)
		emit(p4)
		emit(p3)
	}

	return New(verts, normals)
}
