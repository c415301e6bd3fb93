package mol

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Build turns a chemical formula into a 3D molecule. Known formulas come
// from a fixed database of reference geometries; anything else falls back
// to a zig-zag heavy-atom chain with hydrogens filled in at standard
// lengths. No force-field relaxation is applied.
func Build(formula string) (*Molecule, error) {
	if formula == "" {
		return nil, fmt.Errorf("mol: empty formula")
	}

	if build, ok := formulaDB[formula]; ok {
		m := build()
		m.Formula = formula
		return m, nil
	}

	m, err := buildChain(formula)
	if err != nil {
		return nil, err
	}
	m.Formula = formula
	return m, nil
}

// formulaDB maps common formulas to reference geometries (coordinates in
// angstroms, experimental bond lengths and angles).
var formulaDB = map[string]func() *Molecule{
	"H2O": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"O", mgl64.Vec3{0, 0, 0}},
				{"H", mgl64.Vec3{0.96, 0, 0}},
				{"H", mgl64.Vec3{-0.24, 0.93, 0}},
			},
			Bonds: []Bond{{0, 1, Single}, {0, 2, Single}},
		}
	},
	"CO2": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{0, 0, 0}},
				{"O", mgl64.Vec3{1.16, 0, 0}},
				{"O", mgl64.Vec3{-1.16, 0, 0}},
			},
			Bonds: []Bond{{0, 1, Double}, {0, 2, Double}},
		}
	},
	"CO": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{0, 0, 0}},
				{"O", mgl64.Vec3{1.13, 0, 0}},
			},
			Bonds: []Bond{{0, 1, Triple}},
		}
	},
	"O2": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"O", mgl64.Vec3{0, 0, 0}},
				{"O", mgl64.Vec3{1.21, 0, 0}},
			},
			Bonds: []Bond{{0, 1, Double}},
		}
	},
	"N2": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"N", mgl64.Vec3{0, 0, 0}},
				{"N", mgl64.Vec3{1.10, 0, 0}},
			},
			Bonds: []Bond{{0, 1, Triple}},
		}
	},
	"HCl": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"H", mgl64.Vec3{0, 0, 0}},
				{"Cl", mgl64.Vec3{1.27, 0, 0}},
			},
			Bonds: []Bond{{0, 1, Single}},
		}
	},
	"CH4": func() *Molecule {
		const d = 1.09 / 1.7320508 // C-H projected on each axis
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{0, 0, 0}},
				{"H", mgl64.Vec3{d, d, d}},
				{"H", mgl64.Vec3{d, -d, -d}},
				{"H", mgl64.Vec3{-d, d, -d}},
				{"H", mgl64.Vec3{-d, -d, d}},
			},
			Bonds: []Bond{{0, 1, Single}, {0, 2, Single}, {0, 3, Single}, {0, 4, Single}},
		}
	},
	"NH3": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"N", mgl64.Vec3{0, 0, 0.11}},
				{"H", mgl64.Vec3{0.94, 0, -0.27}},
				{"H", mgl64.Vec3{-0.47, 0.81, -0.27}},
				{"H", mgl64.Vec3{-0.47, -0.81, -0.27}},
			},
			Bonds: []Bond{{0, 1, Single}, {0, 2, Single}, {0, 3, Single}},
		}
	},
	"C2H2": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{-0.60, 0, 0}},
				{"C", mgl64.Vec3{0.60, 0, 0}},
				{"H", mgl64.Vec3{-1.66, 0, 0}},
				{"H", mgl64.Vec3{1.66, 0, 0}},
			},
			Bonds: []Bond{{0, 1, Triple}, {0, 2, Single}, {1, 3, Single}},
		}
	},
	"C2H4": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{-0.67, 0, 0}},
				{"C", mgl64.Vec3{0.67, 0, 0}},
				{"H", mgl64.Vec3{-1.23, 0.92, 0}},
				{"H", mgl64.Vec3{-1.23, -0.92, 0}},
				{"H", mgl64.Vec3{1.23, 0.92, 0}},
				{"H", mgl64.Vec3{1.23, -0.92, 0}},
			},
			Bonds: []Bond{
				{0, 1, Double},
				{0, 2, Single}, {0, 3, Single},
				{1, 4, Single}, {1, 5, Single},
			},
		}
	},
	"C2H6": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{-0.77, 0, 0}},
				{"C", mgl64.Vec3{0.77, 0, 0}},
				{"H", mgl64.Vec3{-1.16, 1.03, 0}},
				{"H", mgl64.Vec3{-1.16, -0.51, 0.89}},
				{"H", mgl64.Vec3{-1.16, -0.51, -0.89}},
				{"H", mgl64.Vec3{1.16, -1.03, 0}},
				{"H", mgl64.Vec3{1.16, 0.51, 0.89}},
				{"H", mgl64.Vec3{1.16, 0.51, -0.89}},
			},
			Bonds: []Bond{
				{0, 1, Single},
				{0, 2, Single}, {0, 3, Single}, {0, 4, Single},
				{1, 5, Single}, {1, 6, Single}, {1, 7, Single},
			},
		}
	},
	"C6H6": benzene,
	"CH3OH": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{0, 0, 0}},
				{"O", mgl64.Vec3{1.43, 0, 0}},
				{"H", mgl64.Vec3{1.76, 0.90, 0}},
				{"H", mgl64.Vec3{-0.39, -1.03, 0}},
				{"H", mgl64.Vec3{-0.39, 0.51, 0.89}},
				{"H", mgl64.Vec3{-0.39, 0.51, -0.89}},
			},
			Bonds: []Bond{
				{0, 1, Single}, {1, 2, Single},
				{0, 3, Single}, {0, 4, Single}, {0, 5, Single},
			},
		}
	},
	"C2H5OH": func() *Molecule {
		return &Molecule{
			Atoms: []Atom{
				{"C", mgl64.Vec3{0, 0, 0}},
				{"C", mgl64.Vec3{1.51, 0, 0}},
				{"O", mgl64.Vec3{2.02, 1.33, 0}},
				{"H", mgl64.Vec3{2.97, 1.31, 0}},
				{"H", mgl64.Vec3{-0.39, 1.03, 0}},
				{"H", mgl64.Vec3{-0.39, -0.51, 0.89}},
				{"H", mgl64.Vec3{-0.39, -0.51, -0.89}},
				{"H", mgl64.Vec3{1.90, -0.52, 0.89}},
				{"H", mgl64.Vec3{1.90, -0.52, -0.89}},
			},
			Bonds: []Bond{
				{0, 1, Single}, {1, 2, Single}, {2, 3, Single},
				{0, 4, Single}, {0, 5, Single}, {0, 6, Single},
				{1, 7, Single}, {1, 8, Single},
			},
		}
	},
}

// benzene builds the aromatic ring: carbons on a 1.39 Å radius hexagon,
// hydrogens radially outward at 2.48 Å.
func benzene() *Molecule {
	m := &Molecule{}
	for k := 0; k < 6; k++ {
		a := float64(k) * math.Pi / 3
		c, s := math.Cos(a), math.Sin(a)
		m.Atoms = append(m.Atoms, Atom{"C", mgl64.Vec3{1.39 * c, 1.39 * s, 0}})
		m.Atoms = append(m.Atoms, Atom{"H", mgl64.Vec3{2.48 * c, 2.48 * s, 0}})
	}
	for k := 0; k < 6; k++ {
		ci := 2 * k
		cj := 2 * ((k + 1) % 6)
		m.Bonds = append(m.Bonds, Bond{ci, cj, Aromatic})
		m.Bonds = append(m.Bonds, Bond{ci, ci + 1, Single})
	}
	return m
}

var formulaToken = regexp.MustCompile(`([A-Z][a-z]*)(\d*)`)

// Chain-building constants derived from a 1.54 Å single bond at the
// tetrahedral angle.
const (
	chainStepX = 1.26 // 1.54·sin(109.5°/2)
	chainStepY = 0.89 // 1.54·cos(109.5°/2)
	hBondLen   = 1.09
)

// Tetrahedral unit directions used to attach hydrogens to chain atoms.
var hydrogenDirs = [4]mgl64.Vec3{
	{0, 1, 0},
	{0, -0.333, 0.943},
	{0, -0.333, -0.943},
	{0.943, 0.333, 0},
}

// buildChain is the fallback for formulas outside the database: heavy
// atoms form a single zig-zag chain with single bonds, then hydrogens
// are distributed round-robin across the chain.
func buildChain(formula string) (*Molecule, error) {
	var heavy []string
	hydrogens := 0

	matched := 0
	for _, tok := range formulaToken.FindAllStringSubmatch(formula, -1) {
		matched += len(tok[0])
		count := 1
		if tok[2] != "" {
			n, err := strconv.Atoi(tok[2])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("mol: bad count %q in formula %q", tok[2], formula)
			}
			count = n
		}
		if tok[1] == "H" {
			hydrogens += count
			continue
		}
		for i := 0; i < count; i++ {
			heavy = append(heavy, tok[1])
		}
	}

	if matched != len(formula) {
		return nil, fmt.Errorf("mol: cannot parse formula %q", formula)
	}
	if len(heavy) == 0 {
		return nil, fmt.Errorf("mol: no heavy atoms in formula %q", formula)
	}

	m := &Molecule{}
	for i, sym := range heavy {
		y := 0.0
		if i%2 == 1 {
			y = chainStepY
		}
		m.Atoms = append(m.Atoms, Atom{sym, mgl64.Vec3{chainStepX * float64(i), y, 0}})
		if i > 0 {
			m.Bonds = append(m.Bonds, Bond{i - 1, i, Single})
		}
	}

	for j := 0; j < hydrogens; j++ {
		parent := j % len(heavy)
		dir := hydrogenDirs[(j/len(heavy))%len(hydrogenDirs)]
		if parent%2 == 1 {
			// Flip away from the chain on raised atoms.
			dir = mgl64.Vec3{dir.X(), -dir.Y(), dir.Z()}
		}
		pos := m.Atoms[parent].Position.Add(dir.Mul(hBondLen))
		m.Atoms = append(m.Atoms, Atom{"H", pos})
		m.Bonds = append(m.Bonds, Bond{parent, len(m.Atoms) - 1, Single})
	}

	return m, nil
}
