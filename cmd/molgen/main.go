package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mol2obj/internal/batch"
	"mol2obj/internal/config"
	"mol2obj/internal/generator"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	listFile := flag.String("list", "", "File with one chemical formula per line")
	outputDir := flag.String("out", "", "Output directory (default: models)")
	template := flag.String("template", "", "Custom atom template OBJ file (default: built-in sphere)")
	preview := flag.Bool("preview", false, "Also render a WebP preview per molecule")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir:    *outputDir,
		AtomTemplate: *template,
		Workers:      *workers,
	})
	if *preview {
		cfg.Preview = true
	}

	formulas := flag.Args()
	if *listFile != "" {
		fromFile, err := readFormulaList(*listFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading formula list: %v\n", err)
			os.Exit(1)
		}
		formulas = append(formulas, fromFile...)
	}

	if len(formulas) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: molgen [flags] FORMULA [FORMULA...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := generator.DefaultOptions()
	opts.SphereSegments = cfg.SphereSegments
	opts.CylinderSegments = cfg.CylinderSegments
	if cfg.AtomTemplate != "" {
		opts.UseSphere = false
		opts.TemplatePath = cfg.AtomTemplate
	}

	fmt.Printf("Molecule OBJ generator\n")
	fmt.Printf("Molecules: %d, Workers: %d\n", len(formulas), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Options:     opts,
		Preview:     cfg.Preview,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, formulas)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Generated: %d/%d\n", success, len(formulas))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.Formula, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results, cfg.Preview); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func readFormulaList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var formulas []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		formulas = append(formulas, line)
	}
	return formulas, scanner.Err()
}
