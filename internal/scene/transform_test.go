package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mol2obj/internal/element"
	"mol2obj/internal/mesh"
	"mol2obj/internal/mol"
)

func TestPlace(t *testing.T) {
	tpl := mesh.NewSphere(1.0, 8)
	target := mgl64.Vec3{1, 2, 3}

	placed := Place(tpl, 2.0, target)

	require.Equal(t, len(tpl.Vertices), len(placed.Vertices))
	assert.InDelta(t, target.X(), placed.Center.X(), 1e-9)
	assert.InDelta(t, target.Y(), placed.Center.Y(), 1e-9)
	assert.InDelta(t, target.Z(), placed.Center.Z(), 1e-9)
	assert.InDelta(t, 4.0, placed.MaxExtent(), 1e-9)

	// Uniform scale: pairwise distances grow by exactly the scale factor.
	d0 := tpl.Vertices[10].Sub(tpl.Vertices[40]).Len()
	d1 := placed.Vertices[10].Sub(placed.Vertices[40]).Len()
	assert.InDelta(t, 2.0*d0, d1, 1e-9)

	// Normals pass through unchanged.
	assert.Equal(t, tpl.Normals, placed.Normals)

	// The template itself stays untouched.
	assert.InDelta(t, 0, tpl.Center.Len(), 1e-9)
	assert.InDelta(t, 2.0, tpl.MaxExtent(), 1e-9)
}

func TestPlaceAtom(t *testing.T) {
	tpl := mesh.NewSphere(1.0, 8)
	a := mol.Atom{Element: "O", Position: mgl64.Vec3{1, -1, 0.5}}

	inst := PlaceAtom(tpl, a)

	assert.Equal(t, "O", inst.Element)
	assert.Equal(t, a.Position, inst.Position)
	assert.Equal(t, element.CPKColor("O"), inst.Color)

	assert.InDelta(t, a.Position.X(), inst.Mesh.Center.X(), 1e-9)
	assert.InDelta(t, a.Position.Y(), inst.Mesh.Center.Y(), 1e-9)

	// halfExtent convention: maxExtent/0.5, so the placed diameter ends
	// up at half the van der Waals radius.
	want := element.VanDerWaalsRadius("O") / 2
	assert.InDelta(t, want, inst.Mesh.MaxExtent(), 1e-9)
}

func TestBuildScene(t *testing.T) {
	m, err := mol.Build("H2O")
	require.NoError(t, err)

	atomTpl := mesh.NewSphere(1.0, 8)
	bondTpl := mesh.NewCylinder(0.15, 1.0, 8)

	sc := Build(m, atomTpl, bondTpl)
	require.Len(t, sc.Atoms, 3)
	require.Len(t, sc.Bonds, 2)

	assert.Equal(t, "O", sc.Atoms[0].Element)
	assert.Equal(t, "H", sc.Atoms[1].Element)
	for _, b := range sc.Bonds {
		assert.Equal(t, mol.Single, b.Order)
	}
}
