// Package mol models molecules as ordered atom and bond lists and builds
// 3D structures from chemical formulas.
package mol

import "github.com/go-gl/mathgl/mgl64"

// BondOrder classifies a chemical bond. The order drives how many offset
// cylinders the scene synthesizer emits per bond.
type BondOrder int

const (
	Single BondOrder = iota + 1
	Double
	Triple
	Aromatic
)

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	}
	return "unknown"
}

// Atom is one atom with its element symbol and 3D position in angstroms.
type Atom struct {
	Element  string
	Position mgl64.Vec3
}

// Bond connects two atoms by index into the molecule's atom list.
type Bond struct {
	A, B  int
	Order BondOrder
}

// Molecule is an ordered set of atoms and bonds. The mesh pipeline trusts
// the indices and makes no chemical-plausibility checks.
type Molecule struct {
	Formula string
	Atoms   []Atom
	Bonds   []Bond
}
