package mathutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRotationToParallel(t *testing.T) {
	r := RotationTo(mgl64.Vec3{0, 1, 0})
	assert.Equal(t, mgl64.Ident3(), r)
}

func TestRotationToAntiParallel(t *testing.T) {
	r := RotationTo(mgl64.Vec3{0, -1, 0})
	got := r.Mul3x1(AxisY)
	assert.InDelta(t, 0, got.X(), 1e-12)
	assert.InDelta(t, -1, got.Y(), 1e-12)
	assert.InDelta(t, 0, got.Z(), 1e-12)
}

func TestRotationToGeneral(t *testing.T) {
	dirs := []mgl64.Vec3{
		{1, 0, 0},
		{0, 0, 1},
		{-1, 0, 0},
		mgl64.Vec3{1, 1, 1}.Normalize(),
		mgl64.Vec3{-0.2, 0.9, 0.4}.Normalize(),
		mgl64.Vec3{0.001, -0.9, 0.1}.Normalize(),
	}

	for _, dir := range dirs {
		r := RotationTo(dir)
		got := r.Mul3x1(AxisY)
		assert.InDeltaf(t, dir.X(), got.X(), 1e-9, "dir %v", dir)
		assert.InDeltaf(t, dir.Y(), got.Y(), 1e-9, "dir %v", dir)
		assert.InDeltaf(t, dir.Z(), got.Z(), 1e-9, "dir %v", dir)

		// Proper rotation: preserves length of arbitrary vectors.
		v := mgl64.Vec3{0.3, -1.2, 2.5}
		assert.InDelta(t, v.Len(), r.Mul3x1(v).Len(), 1e-9)
	}
}

func TestSafeNormalize(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, SafeNormalize(mgl64.Vec3{}))

	n := SafeNormalize(mgl64.Vec3{3, 4, 0})
	assert.InDelta(t, 1, n.Len(), 1e-12)
}

func TestBounds(t *testing.T) {
	size, center := Bounds([]mgl64.Vec3{
		{-1, 0, 2},
		{3, 2, 2},
		{1, -2, 4},
	})
	assert.Equal(t, mgl64.Vec3{4, 4, 2}, size)
	assert.Equal(t, mgl64.Vec3{1, 0, 3}, center)

	size, center = Bounds(nil)
	assert.Equal(t, mgl64.Vec3{}, size)
	assert.Equal(t, mgl64.Vec3{}, center)
}
