package objfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gl/mathgl/mgl64"
)

const triangleWithNormals = `
# simple right triangle in the XY plane
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestDecodeWithNormals(t *testing.T) {
	m, err := Decode([]byte(triangleWithNormals))
	require.NoError(t, err)

	require.Len(t, m.Vertices, 3)
	require.Len(t, m.Normals, 3)
	assert.Equal(t, 1, m.TriangleCount())

	assert.Equal(t, mgl64.Vec3{0, 0, 0}, m.Vertices[0])
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, m.Vertices[1])
	for _, n := range m.Normals {
		assert.Equal(t, mgl64.Vec3{0, 0, 1}, n)
	}

	assert.InDelta(t, 1, m.Size.X(), 1e-12)
	assert.InDelta(t, 1, m.Size.Y(), 1e-12)
	assert.InDelta(t, 0, m.Size.Z(), 1e-12)
}

func TestDecodeSynthesizesNormals(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := Decode([]byte(src))
	require.NoError(t, err)
	require.Len(t, m.Normals, 3)

	// CCW in the XY plane faces +Z.
	for i, n := range m.Normals {
		assert.InDeltaf(t, 0, n.X(), 1e-12, "normal %d", i)
		assert.InDeltaf(t, 0, n.Y(), 1e-12, "normal %d", i)
		assert.InDeltaf(t, 1, n.Z(), 1e-12, "normal %d", i)
	}
}

func TestDecodeVertexTextureTokens(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1/5/1 2/6/1 3/7/1
`
	m, err := Decode([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestDecodeSkipsDegenerateFaces(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2
f 1 2 3
`
	m, err := Decode([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"comments only", "# nothing here\n"},
		{"vertices without faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"vertex index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"normal index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1//1 2//2 3//1\n"},
		{"negative vertex index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -1 -2 -3\n"},
		{"zero vertex index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"bad coordinate", "v 0 zero 0\n"},
		{"short vertex record", "v 0 0\n"},
		{"only degenerate faces", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src))
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "objfmt: line 3: bad face vertex \"x\"",
		(&ParseError{Line: 3, Msg: `bad face vertex "x"`}).Error())
	assert.Equal(t, "objfmt: no geometry",
		(&ParseError{Msg: "no geometry"}).Error())
}
