package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphere(t *testing.T) {
	const segments = 8
	m := NewSphere(1.5, segments)

	require.Equal(t, len(m.Vertices), len(m.Normals))
	assert.Zero(t, len(m.Vertices)%3)
	assert.Equal(t, segments*segments*2, m.TriangleCount())

	for i, n := range m.Normals {
		assert.InDeltaf(t, 1, n.Len(), 1e-9, "normal %d", i)
	}
	for i, v := range m.Vertices {
		assert.InDeltaf(t, 1.5, v.Len(), 1e-9, "vertex %d", i)
	}

	assert.InDelta(t, 3.0, m.Size.X(), 1e-9)
	assert.InDelta(t, 3.0, m.Size.Y(), 1e-9)
	assert.InDelta(t, 3.0, m.Size.Z(), 1e-9)
	assert.InDelta(t, 0, m.Center.Len(), 1e-9)
	assert.InDelta(t, 3.0, m.MaxExtent(), 1e-9)
}

func TestNewSphereDeterministic(t *testing.T) {
	a := NewSphere(1.0, 16)
	b := NewSphere(1.0, 16)
	assert.Equal(t, a, b)
}

func TestNewCylinder(t *testing.T) {
	const segments = 12
	m := NewCylinder(0.15, 1.0, segments)

	require.Equal(t, len(m.Vertices), len(m.Normals))
	assert.Zero(t, len(m.Vertices)%3)
	assert.Equal(t, segments*2, m.TriangleCount())

	for i, v := range m.Vertices {
		// Open cylinder: every vertex sits on one of the two rims.
		assert.InDeltaf(t, 0.5, absf(v.Y()), 1e-9, "vertex %d", i)
	}
	for i, n := range m.Normals {
		assert.InDeltaf(t, 1, n.Len(), 1e-9, "normal %d", i)
		assert.Zerof(t, n.Y(), "normal %d should be radial", i)
	}

	assert.InDelta(t, 1.0, m.Size.Y(), 1e-9)
	assert.InDelta(t, 0, m.Center.Len(), 1e-9)
}

func TestCloneIsDeep(t *testing.T) {
	m := NewSphere(1.0, 4)
	c := m.Clone()
	c.Vertices[0][0] += 100

	assert.NotEqual(t, m.Vertices[0], c.Vertices[0])
	assert.Equal(t, m.Size, c.Size)
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
