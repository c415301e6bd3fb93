// Package scene places template meshes at atom and bond sites and
// serializes the assembled scene as OBJ/MTL text.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/element"
	"mol2obj/internal/mesh"
	"mol2obj/internal/mol"
)

// AtomInstance is one placed atom: a scaled copy of the atom template at
// the atom's world position. Never mutated after creation.
type AtomInstance struct {
	Element  string
	Mesh     *mesh.Mesh
	Color    element.RGB
	Position mgl64.Vec3
}

// BondInstance is one placed bond cylinder. A multi-order bond produces
// several instances; a degenerate bond produces none.
type BondInstance struct {
	Mesh     *mesh.Mesh
	Order    mol.BondOrder
	Midpoint mgl64.Vec3
}

// Scene is the full set of placed instances for one molecule, in input
// order (atoms first, then per-bond sub-instances).
type Scene struct {
	Atoms []AtomInstance
	Bonds []BondInstance
}

// Build places the atom template at every atom and synthesizes bond
// cylinders for every bond. Both templates are treated as immutable.
func Build(m *mol.Molecule, atomTemplate, bondTemplate *mesh.Mesh) *Scene {
	sc := &Scene{}

	for _, a := range m.Atoms {
		sc.Atoms = append(sc.Atoms, PlaceAtom(atomTemplate, a))
	}

	for _, b := range m.Bonds {
		p1 := m.Atoms[b.A].Position
		p2 := m.Atoms[b.B].Position
		sc.Bonds = append(sc.Bonds, SynthesizeBond(bondTemplate, p1, p2, b.Order)...)
	}

	return sc
}
