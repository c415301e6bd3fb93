package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mol2obj/internal/objfmt"
)

func TestGenerateWater(t *testing.T) {
	res, err := Generate("H2O", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "H2O", res.Formula)
	assert.Equal(t, 3, res.AtomCount)
	assert.Equal(t, 2, res.BondCount)

	assert.True(t, strings.HasPrefix(res.OBJ, "# OBJ file for molecule\n"))
	assert.Equal(t, 5, strings.Count(res.OBJ, "\ng "))
	assert.Equal(t, 4, strings.Count(res.MTL, "newmtl "))
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate("CH4", DefaultOptions())
	require.NoError(t, err)
	b, err := Generate("CH4", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.OBJ, b.OBJ)
	assert.Equal(t, a.MTL, b.MTL)
}

func TestGenerateNoTemplate(t *testing.T) {
	_, err := Generate("H2O", Options{})
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestGenerateBadCustomTemplate(t *testing.T) {
	opts := Options{TemplateOBJ: []byte("not an obj file\n")}
	_, err := Generate("H2O", opts)
	require.Error(t, err)

	var parseErr *objfmt.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestGenerateCustomTemplate(t *testing.T) {
	// A tetrahedron works as an atom template just like the sphere.
	tetra := `
v 1 1 1
v 1 -1 -1
v -1 1 -1
v -1 -1 1
f 1 2 3
f 1 4 2
f 1 3 4
f 2 4 3
`
	opts := Options{TemplateOBJ: []byte(tetra), CylinderSegments: 8}
	res, err := Generate("O2", opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.AtomCount)
	assert.Equal(t, 1, res.BondCount)
	assert.Contains(t, res.OBJ, "g atom_O_0\n")
}

func TestGenerateUnknownFormula(t *testing.T) {
	_, err := Generate("h2o", DefaultOptions())
	require.Error(t, err)

	var molErr *MoleculeError
	require.ErrorAs(t, err, &molErr)
	assert.Equal(t, "h2o", molErr.Formula)
	assert.NotNil(t, errors.Unwrap(molErr))
}

func TestGenerateScene(t *testing.T) {
	sc, err := GenerateScene("H2O", DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, sc.Atoms, 3)
	assert.Len(t, sc.Bonds, 2)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.UseSphere)
	assert.Equal(t, 32, opts.SphereSegments)
	assert.Equal(t, 16, opts.CylinderSegments)
}
