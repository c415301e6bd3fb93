package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/mathutil"
	"mol2obj/internal/mesh"
	"mol2obj/internal/mol"
)

const (
	// minBondLength is the degenerate guard: endpoints closer than this
	// produce no cylinder. A silent skip, not an error.
	minBondLength = 0.1

	doubleOffset = 0.15
	tripleOffset = 0.2

	// perpFallbackEps rejects a near-degenerate cross product when picking
	// the lateral offset direction. Heuristic threshold, not a geometric
	// invariant.
	perpFallbackEps = 0.1
)

// SynthesizeBond places 0-3 oriented cylinder copies of template between
// pos1 and pos2 depending on the bond order.
//
// Single and aromatic bonds get one cylinder on the direct axis. Double
// bonds get two, laterally offset by ±0.15. Triple bonds get two offset
// by ±0.2 plus one centered. Each cylinder applies the degenerate-length
// guard independently.
func SynthesizeBond(template *mesh.Mesh, pos1, pos2 mgl64.Vec3, order mol.BondOrder) []BondInstance {
	switch order {
	case mol.Double:
		perp := lateralOffset(pos2.Sub(pos1), doubleOffset)
		var out []BondInstance
		for _, sign := range []float64{1, -1} {
			off := perp.Mul(sign)
			if inst, ok := alignCylinder(template, pos1.Add(off), pos2.Add(off), order); ok {
				out = append(out, inst)
			}
		}
		return out

	case mol.Triple:
		perp := lateralOffset(pos2.Sub(pos1), tripleOffset)
		var out []BondInstance
		for _, sign := range []float64{1, -1} {
			off := perp.Mul(sign)
			if inst, ok := alignCylinder(template, pos1.Add(off), pos2.Add(off), order); ok {
				out = append(out, inst)
			}
		}
		if inst, ok := alignCylinder(template, pos1, pos2, order); ok {
			out = append(out, inst)
		}
		return out

	default: // single, aromatic
		if inst, ok := alignCylinder(template, pos1, pos2, order); ok {
			return []BondInstance{inst}
		}
		return nil
	}
}

// lateralOffset picks a unit vector perpendicular to the bond vector and
// scales it to the offset magnitude. The cross with the Y axis degenerates
// for near-vertical bonds, in which case the X axis is used instead.
func lateralOffset(bondVector mgl64.Vec3, offset float64) mgl64.Vec3 {
	perp := bondVector.Cross(mathutil.AxisY)
	if perp.Len() < perpFallbackEps {
		perp = bondVector.Cross(mgl64.Vec3{1, 0, 0})
	}
	return mathutil.SafeNormalize(perp).Mul(offset)
}

// alignCylinder stretches the template along its Y axis to the bond
// length, rotates that axis onto the bond direction and moves the result
// to the bond midpoint. Returns ok=false for degenerate (near-zero
// length) bonds.
func alignCylinder(template *mesh.Mesh, pos1, pos2 mgl64.Vec3, order mol.BondOrder) (BondInstance, bool) {
	bondVector := pos2.Sub(pos1)
	length := bondVector.Len()
	if length < minBondLength {
		return BondInstance{}, false
	}

	dir := bondVector.Mul(1 / length)
	rot := mathutil.RotationTo(dir)
	stretch := mgl64.Diag3(mgl64.Vec3{1, length, 1})
	mid := pos1.Add(pos2).Mul(0.5)

	out := template.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = rot.Mul3x1(stretch.Mul3x1(v)).Add(mid)
	}
	// Rotation only for normals (the stretch is not a rigid transform),
	// then renormalize.
	for i, n := range out.Normals {
		out.Normals[i] = mathutil.SafeNormalize(rot.Mul3x1(n))
	}
	out.Size, out.Center = mathutil.Bounds(out.Vertices)

	return BondInstance{Mesh: out, Order: order, Midpoint: mid}, true
}
