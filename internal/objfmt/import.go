// Package objfmt parses Wavefront OBJ geometry text into the flat
// triangle-list mesh representation used by the synthesis pipeline.
//
// This is a polygon-soup importer, not a validator: it reads v/vn/f
// records, ignores everything else, and makes no manifoldness claims.
package objfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"mol2obj/internal/mathutil"
	"mol2obj/internal/mesh"
)

// ParseError reports malformed or unusable OBJ input.
type ParseError struct {
	Line int // 1-based source line, 0 when not tied to one line
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("objfmt: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("objfmt: %s", e.Msg)
}

// faceRef is one vertex reference within a face record. Indices are
// 0-based after parsing; ni == -1 means no normal reference.
type faceRef struct {
	vi int
	ni int
}

// Load reads an OBJ file from disk and decodes it.
func Load(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("objfmt: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses OBJ text into a flat triangle-list mesh.
//
// Face tokens may be `v`, `v/vt` or `v/vt/vn` with 1-based indices;
// negative (relative) indices are rejected. When the source carries no
// vn records, per-vertex normals are synthesized by accumulating face
// normals. Faces with fewer than 3 vertex references are skipped.
func Decode(data []byte) (*mesh.Mesh, error) {
	var (
		positions []mgl64.Vec3
		normals   []mgl64.Vec3
		faces     [][]faceRef
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			normals = append(normals, n)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objfmt: scan: %w", err)
	}

	if len(positions) == 0 || len(faces) == 0 {
		return nil, &ParseError{Msg: "no geometry (need v and f records)"}
	}

	for _, face := range faces {
		for _, ref := range face {
			if ref.vi < 0 || ref.vi >= len(positions) {
				return nil, &ParseError{Msg: fmt.Sprintf("face vertex index %d out of range [1, %d]", ref.vi+1, len(positions))}
			}
			if ref.ni >= len(normals) {
				return nil, &ParseError{Msg: fmt.Sprintf("face normal index %d out of range [1, %d]", ref.ni+1, len(normals))}
			}
		}
	}

	// No vn records: synthesize per-vertex normals from incident faces.
	synthesized := false
	if len(normals) == 0 {
		normals = synthesizeNormals(positions, faces)
		synthesized = true
	}

	var flatV, flatN []mgl64.Vec3
	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		for _, ref := range face {
			flatV = append(flatV, positions[ref.vi])

			ni := ref.ni
			if ni < 0 && synthesized {
				ni = ref.vi
			}
			if ni >= 0 && ni < len(normals) {
				flatN = append(flatN, normals[ni])
			} else {
				// Placeholder pending the renormalization pass below.
				flatN = append(flatN, mgl64.Vec3{0, 1, 0})
			}
		}
	}

	if len(flatV) == 0 {
		return nil, &ParseError{Msg: "no faces with 3 or more vertices"}
	}

	// Zero-length entries stay zero to avoid division by zero.
	for i := range flatN {
		flatN[i] = mathutil.SafeNormalize(flatN[i])
	}

	return mesh.New(flatV, flatN), nil
}

func parseVec3(fields []string) (mgl64.Vec3, error) {
	if len(fields) < 4 {
		return mgl64.Vec3{}, fmt.Errorf("%s record needs 3 coordinates", fields[0])
	}
	var v mgl64.Vec3
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k+1], 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("bad coordinate %q", fields[k+1])
		}
		v[k] = f
	}
	return v, nil
}

func parseFace(tokens []string) ([]faceRef, error) {
	face := make([]faceRef, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, "/")

		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("bad face vertex %q", tok)
		}
		if vi <= 0 {
			return nil, fmt.Errorf("unsupported non-positive face index %d (relative indices are not supported)", vi)
		}

		ni := -1
		if len(parts) >= 3 && parts[2] != "" {
			ni, err = strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("bad face normal %q", tok)
			}
			if ni <= 0 {
				return nil, fmt.Errorf("unsupported non-positive normal index %d", ni)
			}
			ni--
		}

		face = append(face, faceRef{vi: vi - 1, ni: ni})
	}
	return face, nil
}

// synthesizeNormals computes one face normal per face via the cross product
// of two edges, accumulates it into every incident vertex and renormalizes.
// Vertices with a zero accumulation keep the zero vector.
func synthesizeNormals(positions []mgl64.Vec3, faces [][]faceRef) []mgl64.Vec3 {
	acc := make([]mgl64.Vec3, len(positions))

	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		a := positions[face[0].vi]
		e1 := positions[face[1].vi].Sub(a)
		e2 := positions[face[2].vi].Sub(a)
		fn := mathutil.SafeNormalize(e1.Cross(e2))

		for _, ref := range face {
			acc[ref.vi] = acc[ref.vi].Add(fn)
		}
	}

	for i := range acc {
		acc[i] = mathutil.SafeNormalize(acc[i])
	}
	return acc
}
