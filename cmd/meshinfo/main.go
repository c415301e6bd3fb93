// meshinfo inspects an OBJ file through the importer and prints the flat
// mesh statistics the pipeline would see for a custom atom template.
package main

import (
	"flag"
	"fmt"
	"os"

	"mol2obj/internal/objfmt"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshinfo FILE.obj")
		os.Exit(2)
	}
	path := flag.Arg(0)

	m, err := objfmt.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:      %s\n", path)
	fmt.Printf("Vertices:  %d\n", len(m.Vertices))
	fmt.Printf("Normals:   %d\n", len(m.Normals))
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("Size:      %.4f %.4f %.4f\n", m.Size.X(), m.Size.Y(), m.Size.Z())
	fmt.Printf("Center:    %.4f %.4f %.4f\n", m.Center.X(), m.Center.Y(), m.Center.Z())

	zeroNormals := 0
	for _, n := range m.Normals {
		if n.Len() < 1e-9 {
			zeroNormals++
		}
	}
	if zeroNormals > 0 {
		fmt.Printf("Warning:   %d zero-length normals\n", zeroNormals)
	}
}
