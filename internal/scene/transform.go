package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/element"
	"mol2obj/internal/mathutil"
	"mol2obj/internal/mesh"
	"mol2obj/internal/mol"
)

// Place returns a placed copy of template: vertices are re-centered to the
// origin, uniformly scaled and translated. Normals pass through unchanged
// since a uniform scale preserves their direction.
func Place(template *mesh.Mesh, scale float64, translation mgl64.Vec3) *mesh.Mesh {
	out := template.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = v.Sub(template.Center).Mul(scale).Add(translation)
	}
	out.Size, out.Center = mathutil.Bounds(out.Vertices)
	return out
}

// PlaceAtom scales the atom template to the element's van der Waals radius
// and moves it to the atom position. The template's half extent is taken
// as max(size)/0.5, matching the sphere template's radius convention.
func PlaceAtom(template *mesh.Mesh, a mol.Atom) AtomInstance {
	halfExtent := template.MaxExtent() / 0.5
	scale := element.VanDerWaalsRadius(a.Element) / halfExtent

	return AtomInstance{
		Element:  a.Element,
		Mesh:     Place(template, scale, a.Position),
		Color:    element.CPKColor(a.Element),
		Position: a.Position,
	}
}
