// Package skiscenes procedurally generates placeholder ski and mountain
// scenes as JPEG images.
//
// # Overview
//
// Each scene is a short, fixed sequence of filled polygons drawn with the gg
// 2D graphics library. Coordinates are fractions of the requested width and
// height, so every scene renders at any size.
//
// # Quick Start
//
//	g := skiscenes.NewGenerator("public/images")
//	if err := g.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Run writes the five scenes in catalogue order and then duplicates two of
// them (see [DefaultCopies]). A single scene can be written with
// [Generator.Generate]:
//
//	path, err := g.Generate(skiscenes.SkiAction, skiscenes.Config{Width: 400})
//
// # Randomness
//
// The ski action scene scatters snowflakes using the generator's random
// source. By default the source is freshly seeded on every run; use
// [WithSeed] for reproducible output.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to enable diagnostics.
package skiscenes
