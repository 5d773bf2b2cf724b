package skiscenes

import (
	"io"
	"math/rand/v2"
)

// Option configures a Generator during creation.
//
// Example:
//
//	// Reproducible output written at a lower quality
//	g := skiscenes.NewGenerator("out", skiscenes.WithSeed(42), skiscenes.WithQuality(75))
type Option func(*Generator)

// WithQuality sets the JPEG quality (1-100). Values outside the range are
// clamped by the encoder.
func WithQuality(q int) Option {
	return func(g *Generator) {
		g.quality = q
	}
}

// WithRand sets the random source used for decorative placement.
// A nil source leaves the default entropy-seeded source in place.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed makes decorative placement reproducible across runs.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithOutput sets where progress lines are written. The default discards them.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		if w == nil {
			w = io.Discard
		}
		g.out = w
	}
}
