// Package element holds the fixed chemical lookup tables used when styling
// atom instances: van der Waals radii and CPK display colors.
package element

// RGB is a color triple with components in [0, 1].
type RGB [3]float64

// vdwRadii lists van der Waals radii in angstroms.
var vdwRadii = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Br": 1.85,
	"I":  1.98,
	"B":  1.92,
	"Si": 2.10,
	"Fe": 2.00,
	"Mg": 1.73,
	"Ca": 2.00,
}

// cpkColors follows the CPK coloring convention.
var cpkColors = map[string]RGB{
	"H":  {1.0, 1.0, 1.0},    // white
	"C":  {0.3, 0.3, 0.3},    // gray
	"N":  {0.0, 0.0, 1.0},    // blue
	"O":  {1.0, 0.0, 0.0},    // red
	"F":  {0.0, 1.0, 0.0},    // green
	"Cl": {0.0, 1.0, 0.0},    // green
	"Br": {0.55, 0.27, 0.07}, // brown
	"I":  {0.58, 0.0, 0.83},  // purple
	"P":  {1.0, 0.65, 0.0},   // orange
	"S":  {1.0, 1.0, 0.0},    // yellow
	"B":  {1.0, 0.65, 0.0},   // orange
	"Si": {0.5, 0.5, 0.5},    // gray
	"Fe": {1.0, 0.55, 0.0},   // orange
	"Mg": {0.13, 0.55, 0.13}, // green
	"Ca": {0.5, 0.5, 0.5},    // gray
}

// VanDerWaalsRadius returns the tabulated radius for symbol, or 1.5 for
// elements outside the table.
func VanDerWaalsRadius(symbol string) float64 {
	if r, ok := vdwRadii[symbol]; ok {
		return r
	}
	return 1.5
}

// CPKColor returns the display color for symbol, or a light gray default.
func CPKColor(symbol string) RGB {
	if c, ok := cpkColors[symbol]; ok {
		return c
	}
	return RGB{0.8, 0.8, 0.8}
}

// BondColor is the shared display color for all bond cylinders.
func BondColor() RGB {
	return RGB{0.8, 0.8, 0.8}
}
