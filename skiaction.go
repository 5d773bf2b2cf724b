package skiscenes

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

const (
	trailSegments  = 19
	trailAmplitude = 30
	trailWidth     = 3
	snowflakes     = 15
	snowflakeSize  = 2
)

var trailColor = gg.Hex("#4169E1")

// paintSkiAction draws a diagonal slope, a zig-zag ski track across it
// and a few snowflakes scattered over the upper 70% of the canvas.
func paintSkiAction(dc *gg.Context, w, h float64, rng *rand.Rand) error {
	err := fillPolygon(dc, gg.White,
		gg.Pt(0, h*0.4),
		gg.Pt(w, h*0.7),
		gg.Pt(w, h),
		gg.Pt(0, h),
	)
	if err != nil {
		return err
	}

	if err := strokePolyline(dc, trailColor, trailWidth, trailPoints(w, h)...); err != nil {
		return err
	}

	maxX := int(w)
	maxY := int(h * 0.7)
	for range snowflakes {
		x := float64(rng.IntN(maxX + 1))
		y := float64(rng.IntN(maxY + 1))
		if err := fillCircle(dc, gg.White, x, y, snowflakeSize); err != nil {
			return err
		}
	}
	return nil
}

// trailPoints returns the trailSegments+1 vertices of the ski track.
// The offset flips sign every two vertices and grows linearly along x.
func trailPoints(w, h float64) []gg.Point {
	pts := make([]gg.Point, trailSegments+1)
	for i := range pts {
		sign := 1.0
		if i%4 >= 2 {
			sign = -1
		}
		x := float64(i) * (w / trailSegments)
		y := h*0.5 + trailAmplitude*sign*(float64(i)/(trailSegments+1))
		pts[i] = gg.Pt(x, y)
	}
	return pts
}
