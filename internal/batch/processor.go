// Package batch generates model files for many formulas concurrently.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"mol2obj/internal/generator"
	"mol2obj/internal/postprocess"
	"mol2obj/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Options     generator.Options
	Preview     bool
	RenderSize  int
	Supersample int
	Workers     int
}

// Result holds the outcome of processing one formula.
type Result struct {
	Formula   string
	AtomCount int
	BondCount int
	Success   bool
	Error     string
}

// Run processes all formulas using a worker pool and reports progress on
// stdout every couple of seconds.
func Run(cfg Config, formulas []string) []Result {
	total := len(formulas)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f molecules/sec\n", p, total, rate)
				}
			}
		}
	}()

	workChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workChan {
				results[idx] = processFormula(cfg, formulas[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range formulas {
		workChan <- i
	}
	close(workChan)

	wg.Wait()
	close(done)

	return results
}

func processFormula(cfg Config, formula string) Result {
	res, err := generator.Generate(formula, cfg.Options)
	if err != nil {
		return Result{Formula: formula, Error: err.Error()}
	}

	dir := filepath.Join(cfg.OutputDir, formula)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{Formula: formula, Error: err.Error()}
	}

	if err := os.WriteFile(filepath.Join(dir, "model.obj"), []byte(res.OBJ), 0644); err != nil {
		return Result{Formula: formula, Error: err.Error()}
	}
	if err := os.WriteFile(filepath.Join(dir, "model.mtl"), []byte(res.MTL), 0644); err != nil {
		return Result{Formula: formula, Error: err.Error()}
	}

	if cfg.Preview {
		if err := writePreview(cfg, formula, filepath.Join(dir, "preview.webp")); err != nil {
			return Result{Formula: formula, Error: err.Error()}
		}
	}

	return Result{
		Formula:   formula,
		AtomCount: res.AtomCount,
		BondCount: res.BondCount,
		Success:   true,
	}
}

func writePreview(cfg Config, formula, outPath string) error {
	sc, err := generator.GenerateScene(formula, cfg.Options)
	if err != nil {
		return err
	}

	img := raster.RenderScene(sc, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}
