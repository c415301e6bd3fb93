// Package mesh holds the flat triangle-list representation shared by the
// built-in primitive generators, the OBJ importer and the scene assembler.
//
// Every consecutive group of 3 vertices forms one triangle; no indexing is
// shared across triangles. Normals run parallel to vertices, one per entry.
package mesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/mathutil"
)

// Mesh is an unplaced template shape. Treat it as immutable once built:
// placement operations work on copies, never on the template itself.
type Mesh struct {
	Vertices []mgl64.Vec3
	Normals  []mgl64.Vec3

	// Axis-aligned bounding box of Vertices.
	Size   mgl64.Vec3
	Center mgl64.Vec3
}

// New builds a Mesh from parallel vertex/normal slices and computes its
// bounding box. The slices are taken over, not copied.
func New(vertices, normals []mgl64.Vec3) *Mesh {
	size, center := mathutil.Bounds(vertices)
	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Size:     size,
		Center:   center,
	}
}

// Clone returns a deep copy. Instance transforms mutate the copy's buffers,
// so templates shared across many placements stay pristine.
func (m *Mesh) Clone() *Mesh {
	v := make([]mgl64.Vec3, len(m.Vertices))
	n := make([]mgl64.Vec3, len(m.Normals))
	copy(v, m.Vertices)
	copy(n, m.Normals)
	return &Mesh{Vertices: v, Normals: n, Size: m.Size, Center: m.Center}
}

// TriangleCount returns the number of whole triangles in the flat list.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// MaxExtent returns the largest bounding-box extent along any axis.
func (m *Mesh) MaxExtent() float64 {
	e := m.Size[0]
	if m.Size[1] > e {
		e = m.Size[1]
	}
	if m.Size[2] > e {
		e = m.Size[2]
	}
	return e
}
