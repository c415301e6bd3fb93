// molserver exposes the generator over HTTP: zipped OBJ/MTL model pairs
// and WebP previews, keyed by chemical formula.
package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"mol2obj/internal/config"
	"mol2obj/internal/generator"
	"mol2obj/internal/objfmt"
	"mol2obj/internal/postprocess"
	"mol2obj/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	addr := flag.String("addr", "", "Listen address (default :8080)")
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
	cfg.Resolve(config.Flags{ListenAddr: *addr})

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := &server{cfg: cfg, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /generate", srv.handleGenerate)
	mux.HandleFunc("GET /preview", srv.handlePreview)

	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, withCORS(mux)); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

type server struct {
	cfg config.Config
	log *slog.Logger
}

func (s *server) options() generator.Options {
	opts := generator.DefaultOptions()
	opts.SphereSegments = s.cfg.SphereSegments
	opts.CylinderSegments = s.cfg.CylinderSegments
	if s.cfg.AtomTemplate != "" {
		opts.UseSphere = false
		opts.TemplatePath = s.cfg.AtomTemplate
	}
	return opts
}

// handleGenerate streams a zip holding model.obj and model.mtl.
func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	formula := r.URL.Query().Get("formula")

	res, err := generator.Generate(formula, s.options())
	if err != nil {
		s.fail(w, formula, err)
		return
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, body string }{
		{"model.obj", res.OBJ},
		{"model.mtl", res.MTL},
	} {
		fw, err := zw.Create(f.name)
		if err == nil {
			_, err = fw.Write([]byte(f.body))
		}
		if err != nil {
			http.Error(w, "zip assembly failed", http.StatusInternalServerError)
			return
		}
	}
	if err := zw.Close(); err != nil {
		http.Error(w, "zip assembly failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/x-zip-compressed")
	w.Header().Set("Content-Disposition", "attachment; filename=model.zip")
	w.Write(buf.Bytes())

	s.log.Info("generated", "formula", formula,
		"atoms", res.AtomCount, "bonds", res.BondCount,
		"dur", time.Since(start).Round(time.Millisecond))
}

// handlePreview renders the molecule to a WebP image.
func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	formula := r.URL.Query().Get("formula")

	sc, err := generator.GenerateScene(formula, s.options())
	if err != nil {
		s.fail(w, formula, err)
		return
	}

	img := raster.RenderScene(sc, s.cfg.RenderSize, s.cfg.Supersample)
	if s.cfg.Supersample > 1 {
		img = postprocess.Downsample(img, s.cfg.RenderSize)
	}

	w.Header().Set("Content-Type", "image/webp")
	if err := nativewebp.Encode(w, img, nil); err != nil {
		s.log.Error("webp encode", "formula", formula, "err", err)
		return
	}

	s.log.Info("previewed", "formula", formula, "dur", time.Since(start).Round(time.Millisecond))
}

// fail maps the generator error taxonomy onto HTTP statuses.
func (s *server) fail(w http.ResponseWriter, formula string, err error) {
	var molErr *generator.MoleculeError
	var parseErr *objfmt.ParseError

	status := http.StatusInternalServerError
	msg := "generation failed"
	switch {
	case errors.As(err, &molErr):
		status = http.StatusUnprocessableEntity
		msg = "no chemistry molecule"
	case errors.Is(err, generator.ErrNoTemplate), errors.As(err, &parseErr):
		status = http.StatusBadRequest
		msg = "invalid atom template"
	}

	s.log.Warn("request failed", "formula", formula, "status", status, "err", err)
	http.Error(w, msg, status)
}

// withCORS mirrors the permissive CORS policy of the original service.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
