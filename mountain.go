package skiscenes

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

var mountainGray = gg.Hex("#A0A0A0")

func paintMountainView(dc *gg.Context, w, h float64, _ *rand.Rand) error {
	err := fillPolygon(dc, mountainGray,
		gg.Pt(0, h*0.5),
		gg.Pt(w*0.15, h*0.2),
		gg.Pt(w*0.3, h*0.3),
		gg.Pt(w*0.5, h*0.15),
		gg.Pt(w*0.7, h*0.25),
		gg.Pt(w*0.85, h*0.35),
		gg.Pt(w, h*0.45),
		gg.Pt(w, h),
		gg.Pt(0, h),
	)
	if err != nil {
		return err
	}

	for _, patch := range snowPatches(snowLine(w, h)) {
		if err := fillPolygon(dc, gg.White, patch...); err != nil {
			return err
		}
	}
	return nil
}

func snowLine(w, h float64) []gg.Point {
	return []gg.Point{
		gg.Pt(w*0.15, h*0.2),
		gg.Pt(w*0.25, h*0.22),
		gg.Pt(w*0.35, h*0.28),
		gg.Pt(w*0.5, h*0.15),
		gg.Pt(w*0.65, h*0.18),
		gg.Pt(w*0.7, h*0.25),
		gg.Pt(w*0.8, h*0.27),
		gg.Pt(w*0.85, h*0.35),
	}
}

// snowPatches pairs up consecutive snow line points, stepping by two,
// and extends each pair straight up to the top edge.
func snowPatches(line []gg.Point) [][]gg.Point {
	var patches [][]gg.Point
	for i := 0; i+1 < len(line); i += 2 {
		a, b := line[i], line[i+1]
		patches = append(patches, []gg.Point{a, b, gg.Pt(b.X, 0), gg.Pt(a.X, 0)})
	}
	return patches
}
