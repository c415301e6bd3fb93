// Package generator ties the pipeline together: formula → molecule →
// placed instances → OBJ/MTL text. It also owns the error taxonomy the
// front-ends branch on.
package generator

import (
	"errors"
	"fmt"

	"mol2obj/internal/mesh"
	"mol2obj/internal/mol"
	"mol2obj/internal/objfmt"
	"mol2obj/internal/scene"
)

// ErrNoTemplate reports that no usable atom template was selected:
// neither the built-in sphere nor a valid custom template blob/path.
var ErrNoTemplate = errors.New("generator: no usable atom template")

// MoleculeError reports that the molecule stage failed for a formula.
// It aborts generation before any mesh work begins.
type MoleculeError struct {
	Formula string
	Err     error
}

func (e *MoleculeError) Error() string {
	return fmt.Sprintf("generator: build molecule %q: %v", e.Formula, e.Err)
}

func (e *MoleculeError) Unwrap() error { return e.Err }

// SynthesisError reports an unexpected failure during transform or
// serialization, caught at the top level.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("generator: synthesis: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Options selects the atom template and tessellation detail.
type Options struct {
	// UseSphere selects the built-in sphere template. When false, one of
	// TemplateOBJ or TemplatePath must supply a custom template.
	UseSphere    bool
	TemplateOBJ  []byte
	TemplatePath string

	SphereSegments   int
	CylinderSegments int
}

// DefaultOptions matches the reference output: a unit sphere at 32
// segments for atoms and a 0.15-radius, 16-segment cylinder for bonds.
func DefaultOptions() Options {
	return Options{
		UseSphere:        true,
		SphereSegments:   32,
		CylinderSegments: 16,
	}
}

// Result is the serialized model pair plus summary metadata.
type Result struct {
	Formula   string
	OBJ       string
	MTL       string
	AtomCount int
	BondCount int
}

// Generate produces the OBJ/MTL pair for a chemical formula. Failures are
// typed: *MoleculeError when the molecule stage fails, ErrNoTemplate when
// no atom template is usable, *objfmt.ParseError for a malformed custom
// template and *SynthesisError for unexpected mesh-stage failures. No
// partial output is ever returned.
func Generate(formula string, opts Options) (*Result, error) {
	atomTemplate, err := resolveTemplate(opts)
	if err != nil {
		return nil, err
	}

	if opts.CylinderSegments <= 0 {
		opts.CylinderSegments = 16
	}
	bondTemplate := mesh.NewCylinder(0.15, 1.0, opts.CylinderSegments)

	m, err := mol.Build(formula)
	if err != nil {
		return nil, &MoleculeError{Formula: formula, Err: err}
	}

	objText, mtlText, err := synthesize(m, atomTemplate, bondTemplate)
	if err != nil {
		return nil, err
	}

	return &Result{
		Formula:   formula,
		OBJ:       objText,
		MTL:       mtlText,
		AtomCount: len(m.Atoms),
		BondCount: len(m.Bonds),
	}, nil
}

// GenerateScene is Generate without serialization, for callers that
// consume placed instances directly (the preview renderer).
func GenerateScene(formula string, opts Options) (*scene.Scene, error) {
	atomTemplate, err := resolveTemplate(opts)
	if err != nil {
		return nil, err
	}
	if opts.CylinderSegments <= 0 {
		opts.CylinderSegments = 16
	}
	bondTemplate := mesh.NewCylinder(0.15, 1.0, opts.CylinderSegments)

	m, err := mol.Build(formula)
	if err != nil {
		return nil, &MoleculeError{Formula: formula, Err: err}
	}

	return scene.Build(m, atomTemplate, bondTemplate), nil
}

func resolveTemplate(opts Options) (*mesh.Mesh, error) {
	switch {
	case opts.UseSphere:
		segs := opts.SphereSegments
		if segs <= 0 {
			segs = 32
		}
		return mesh.NewSphere(1.0, segs), nil
	case opts.TemplateOBJ != nil:
		return objfmt.Decode(opts.TemplateOBJ)
	case opts.TemplatePath != "":
		return objfmt.Load(opts.TemplatePath)
	default:
		return nil, ErrNoTemplate
	}
}

// synthesize runs placement and serialization with a panic guard so a
// mesh-stage bug surfaces as a descriptive error instead of corrupt
// output.
func synthesize(m *mol.Molecule, atomTemplate, bondTemplate *mesh.Mesh) (objText, mtlText string, err error) {
	defer func() {
		if r := recover(); r != nil {
			objText, mtlText = "", ""
			err = &SynthesisError{Err: fmt.Errorf("%v", r)}
		}
	}()

	sc := scene.Build(m, atomTemplate, bondTemplate)
	objText, mtlText = sc.Assemble()
	return objText, mtlText, nil
}
