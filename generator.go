package skiscenes

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
)

// Generator renders scenes and writes them as JPEG files into one
// output directory.
//
// A Generator is not safe for concurrent use: scenes share its
// random source.
type Generator struct {
	dir     string
	quality int
	rng     *rand.Rand
	out     io.Writer
}

// NewGenerator creates a generator writing into dir.
// Without options it uses DefaultQuality, a freshly seeded random source
// and discards progress output.
func NewGenerator(dir string, opts ...Option) *Generator {
	g := &Generator{
		dir:     dir,
		quality: DefaultQuality,
		out:     io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Dir returns the output directory.
func (g *Generator) Dir() string {
	return g.dir
}

// Quality returns the JPEG quality.
func (g *Generator) Quality() int {
	return g.quality
}

// Render paints s at the size given by cfg and returns the pixels
// without writing anything.
func (g *Generator) Render(s *Scene, cfg Config) (image.Image, error) {
	cfg = cfg.withDefaults(s.Defaults)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render %s: %w", s.Name, err)
	}
	dc, err := g.paint(s, cfg)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", s.Name, err)
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Generate renders s and writes it to Dir()/cfg.Filename, returning the
// written path. The output directory must already exist.
func (g *Generator) Generate(s *Scene, cfg Config) (string, error) {
	cfg = cfg.withDefaults(s.Defaults)
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("generate %s: %w", s.Name, err)
	}

	dc, err := g.paint(s, cfg)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", s.Name, err)
	}
	defer dc.Close()

	path := filepath.Join(g.dir, cfg.Filename)
	err = writeFile(path, func(w io.Writer) error {
		return dc.EncodeJPEG(w, g.quality)
	})
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", s.Name, err)
	}

	Logger().Info("scene written", "scene", s.Name, "path", path)
	g.progress(cfg.Filename, s.Title)
	return path, nil
}

// paint allocates a canvas cleared to the scene background and draws
// the scene on it. The caller owns the returned context.
func (g *Generator) paint(s *Scene, cfg Config) (*gg.Context, error) {
	start := time.Now()

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.ClearWithColor(s.Background)

	if err := s.paint(dc, float64(cfg.Width), float64(cfg.Height), g.rng); err != nil {
		_ = dc.Close()
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("flush: %w", err)
	}

	Logger().Debug("scene rendered",
		"scene", s.Name,
		"width", cfg.Width,
		"height", cfg.Height,
		"elapsed", time.Since(start))
	return dc, nil
}

// Run creates the output directory, generates every scene with its
// defaults and then writes DefaultCopies. The first failing step stops
// the run; its error names the step.
func (g *Generator) Run(ctx context.Context) error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, s := range catalogue {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.Generate(s, Config{}); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return g.Finalize(DefaultCopies)
}
