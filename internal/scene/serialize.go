package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/element"
)

// Material constants for atoms and bonds (Blinn-Phong, illumination
// model 2 throughout).
const (
	atomSpecular  = 0.2
	atomShininess = 50
	bondSpecular  = 0.3
	bondShininess = 30
)

// materialSet tracks created material names so redundant creation is a
// no-op, and accumulates the MTL text in creation order.
type materialSet struct {
	created map[string]struct{}
	sb      strings.Builder
}

func newMaterialSet() *materialSet {
	return &materialSet{created: make(map[string]struct{})}
}

func (ms *materialSet) add(name string, color element.RGB, specular float64, shininess int) {
	if _, ok := ms.created[name]; ok {
		return
	}
	ms.created[name] = struct{}{}

	fmt.Fprintf(&ms.sb, "newmtl %s\n", name)
	fmt.Fprintf(&ms.sb, "Ka %.3f %.3f %.3f\n", color[0], color[1], color[2])
	fmt.Fprintf(&ms.sb, "Kd %.3f %.3f %.3f\n", color[0], color[1], color[2])
	fmt.Fprintf(&ms.sb, "Ks %.1f %.1f %.1f\n", specular, specular, specular)
	fmt.Fprintf(&ms.sb, "Ns %d\n", shininess)
	ms.sb.WriteString("d 1.0\n")
	ms.sb.WriteString("Illum 2\n\n")
}

// objWriter emits OBJ records and threads the global 1-based vertex
// offset through every appended instance. Face indices for an instance
// always reference exactly [offset, offset+N) and advance the offset
// by N, the instance's vertex count.
type objWriter struct {
	sb     strings.Builder
	offset int
}

func newOBJWriter() *objWriter {
	return &objWriter{offset: 1}
}

func (w *objWriter) line(format string, args ...any) {
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// writeMesh writes one instance's vertices, normals and triangle faces
// with vertex//normal indexing (no texture coordinate slot), then
// advances the global offset.
func (w *objWriter) writeMesh(vertices, normals []mgl64.Vec3) {
	for _, v := range vertices {
		w.line("v %.6f %.6f %.6f", v.X(), v.Y(), v.Z())
	}
	for _, n := range normals {
		w.line("vn %.6f %.6f %.6f", n.X(), n.Y(), n.Z())
	}
	for j := 0; j+2 < len(vertices); j += 3 {
		v1 := w.offset + j
		v2 := w.offset + j + 1
		v3 := w.offset + j + 2
		w.line("f %d//%d %d//%d %d//%d", v1, v1, v2, v2, v3, v3)
	}
	w.offset += len(vertices)
}

// Assemble flattens the scene into OBJ geometry text and MTL material
// text. Ordering is deterministic: atoms in input order, then bond
// instances in input order.
func (sc *Scene) Assemble() (objText, mtlText string) {
	w := newOBJWriter()
	mats := newMaterialSet()

	// Fixed header plus a machine-parseable atom block for downstream
	// consumers.
	w.line("# OBJ file for molecule")
	w.line("mtllib model.mtl")
	w.line("o molecule")
	w.line("")
	w.line("# ATOM_INFO: index,element,position_x,position_y,position_z")
	for i, a := range sc.Atoms {
		w.line("# ATOM_%d: %s %.3f %.3f %.3f", i, a.Element, a.Position.X(), a.Position.Y(), a.Position.Z())
	}
	w.line("")

	for i, a := range sc.Atoms {
		groupName := fmt.Sprintf("atom_%s_%d", a.Element, i)
		matName := "mat_" + groupName

		w.line("g %s", groupName)
		w.line("# ATOM_DATA: %s %d", a.Element, i)
		mats.add(matName, a.Color, atomSpecular, atomShininess)
		w.line("usemtl %s", matName)
		w.writeMesh(a.Mesh.Vertices, a.Mesh.Normals)
		w.line("")
	}

	for i, b := range sc.Bonds {
		mats.add("bond_material", element.BondColor(), bondSpecular, bondShininess)
		w.line("# Bond %d", i)
		w.line("g bond_%d", i)
		w.line("usemtl bond_material")
		w.writeMesh(b.Mesh.Vertices, b.Mesh.Normals)
		w.line("")
	}

	return w.sb.String(), mats.sb.String()
}
