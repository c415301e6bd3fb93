package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LightConfig holds precomputed lighting parameters for the preview
// renderer.
type LightConfig struct {
	LightDir mgl64.Vec3
	ViewDir  mgl64.Vec3
	Half     mgl64.Vec3 // precomputed half-vector for Blinn-Phong

	Ambient  float64
	Hemi     float64
	Direct   float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper left with a soft
// hemisphere fill, tuned for shiny sphere-and-cylinder scenes.
func DefaultLightConfig() LightConfig {
	lightDir := mgl64.Vec3{-1, 1, 1}.Normalize()
	viewDir := mgl64.Vec3{0, 0, -1}

	return LightConfig{
		LightDir: lightDir,
		ViewDir:  viewDir,
		Half:     lightDir.Sub(viewDir).Normalize(),
		Ambient:  0.40,
		Hemi:     0.25,
		Direct:   1.00,
		SpecInt:  0.50,
		SpecPow:  32.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
// Lambertian terms use abs() so back-facing triangles of the open bond
// cylinders still light up.
func (lc *LightConfig) ComputeShade(normal mgl64.Vec3) float64 {
	ndl := math.Abs(normal.Dot(lc.LightDir))

	hemi := (1.0-math.Abs(normal.Y()))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	ndh := normal.Dot(lc.Half)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndl*lc.Direct + spec
}

// ACESTonemap applies ACES filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
