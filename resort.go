package skiscenes

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

var (
	resortGray   = gg.Hex("#B0B0B0")
	stationBrown = gg.Hex("#8B4513")
)

// Slope strip offsets in pixels from the strip's left edge.
const (
	slopeTopWidth    = 50
	slopeBottomLeft  = 30
	slopeBottomRight = 80
)

// paintResortView draws a background range, three parallel pistes and
// the top station of the lift.
func paintResortView(dc *gg.Context, w, h float64, _ *rand.Rand) error {
	err := fillPolygon(dc, resortGray,
		gg.Pt(0, h*0.4),
		gg.Pt(w*0.3, h*0.2),
		gg.Pt(w*0.7, h*0.3),
		gg.Pt(w, h*0.35),
		gg.Pt(w, h),
		gg.Pt(0, h),
	)
	if err != nil {
		return err
	}

	for i := range 3 {
		x := w * (0.2 + float64(i)*0.3)
		err := fillPolygon(dc, gg.White,
			gg.Pt(x, h*0.25),
			gg.Pt(x+slopeTopWidth, h*0.25),
			gg.Pt(x+slopeBottomRight, h*0.8),
			gg.Pt(x+slopeBottomLeft, h*0.8),
		)
		if err != nil {
			return err
		}
	}

	return fillBox(dc, stationBrown, w*0.4, h*0.2, w*0.6, h*0.25)
}
