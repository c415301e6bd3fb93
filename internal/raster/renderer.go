// Package raster renders assembled molecule scenes to images for quick
// previews. Flat-shaded, z-buffered, orthographic.
package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/element"
	"mol2obj/internal/scene"
	"mol2obj/internal/viewmatrix"
)

// RenderScene rasterizes every placed instance of sc into a square NRGBA
// image. size is the final edge length; supersample > 1 renders larger
// for a later downsample pass.
func RenderScene(sc *scene.Scene, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	// Shading is flat per face, so only positions and the instance color
	// feed the rasterizer.
	type instance struct {
		verts []mgl64.Vec3
		color [3]float64
	}

	var instances []instance
	var vertexSets [][]mgl64.Vec3
	for _, a := range sc.Atoms {
		instances = append(instances, instance{a.Mesh.Vertices, a.Color})
		vertexSets = append(vertexSets, a.Mesh.Vertices)
	}
	for _, b := range sc.Bonds {
		instances = append(instances, instance{b.Mesh.Vertices, element.BondColor()})
		vertexSets = append(vertexSets, b.Mesh.Vertices)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	if len(instances) == 0 {
		return img
	}

	r := viewmatrix.ViewRotation(viewmatrix.DefaultYawDeg, viewmatrix.DefaultPitchDeg)
	margin := 16 * supersample
	center, scale := viewmatrix.Fit(vertexSets, r, renderSize, margin)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for _, inst := range instances {
		px, py, pz := viewmatrix.Project(inst.verts, r, center, scale, renderSize)
		for j := 0; j+2 < len(inst.verts); j += 3 {
			RasterizeTriangle(fb, px, py, pz, j, j+1, j+2, inst.color, &lc)
		}
	}

	copy(img.Pix, fb.Color)
	return img
}
