package viewmatrix

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRotationIsRigid(t *testing.T) {
	r := ViewRotation(DefaultYawDeg, DefaultPitchDeg)
	v := mgl64.Vec3{1, 2, 3}
	assert.InDelta(t, v.Len(), r.Mul3x1(v).Len(), 1e-12)

	// Zero angles give the identity.
	id := ViewRotation(0, 0)
	got := id.Mul3x1(v)
	assert.InDelta(t, 0, got.Sub(v).Len(), 1e-12)
}

func TestFitAndProject(t *testing.T) {
	verts := []mgl64.Vec3{
		{-1, -1, 0},
		{1, 1, 0},
	}
	r := mgl64.Ident3()

	center, scale := Fit([][]mgl64.Vec3{verts}, r, 100, 10)
	assert.InDelta(t, 0, center.Len(), 1e-12)
	assert.InDelta(t, 40, scale, 1e-12) // (100-20)/2

	px, py, pz := Project(verts, r, center, scale, 100)
	require.Len(t, px, 2)

	// Screen Y grows downward, so the lower-left corner lands high.
	assert.InDelta(t, 10, px[0], 1e-9)
	assert.InDelta(t, 90, py[0], 1e-9)
	assert.InDelta(t, 90, px[1], 1e-9)
	assert.InDelta(t, 10, py[1], 1e-9)
	assert.InDelta(t, 0, pz[0], 1e-12)
}

func TestFitDegenerate(t *testing.T) {
	center, scale := Fit(nil, mgl64.Ident3(), 100, 10)
	assert.Equal(t, mgl64.Vec3{}, center)
	assert.Equal(t, 1.0, scale)

	// A single point spans nothing; the span floor keeps scale finite.
	_, scale = Fit([][]mgl64.Vec3{{{5, 5, 5}}}, mgl64.Ident3(), 100, 10)
	assert.False(t, scale > 1e6)
	assert.True(t, scale > 0)
}
