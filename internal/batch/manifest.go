package batch

import (
	"encoding/json"
	"os"
	"path"
)

// ManifestEntry represents one generated molecule in the output manifest.
type ManifestEntry struct {
	Formula   string `json:"formula"`
	AtomCount int    `json:"atom_count"`
	BondCount int    `json:"bond_count"`
	Model     string `json:"model"`
	Material  string `json:"material"`
	Preview   string `json:"preview,omitempty"`
}

// WriteManifest writes manifest.json listing every successfully generated
// model, with paths relative to the output directory.
func WriteManifest(outPath string, results []Result, withPreview bool) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		e := ManifestEntry{
			Formula:   r.Formula,
			AtomCount: r.AtomCount,
			BondCount: r.BondCount,
			Model:     path.Join(r.Formula, "model.obj"),
			Material:  path.Join(r.Formula, "model.mtl"),
		}
		if withPreview {
			e.Preview = path.Join(r.Formula, "preview.webp")
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0644)
}
