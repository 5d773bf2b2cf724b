package skiscenes

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

var hillGray = gg.Hex("#E8E8E8")

// paintSimpleSnow layers a white foreground hill over a gray one.
func paintSimpleSnow(dc *gg.Context, w, h float64, _ *rand.Rand) error {
	err := fillPolygon(dc, hillGray,
		gg.Pt(0, h*0.6),
		gg.Pt(w*0.4, h*0.3),
		gg.Pt(w*0.8, h*0.5),
		gg.Pt(w, h*0.4),
		gg.Pt(w, h),
		gg.Pt(0, h),
	)
	if err != nil {
		return err
	}
	return fillPolygon(dc, gg.White,
		gg.Pt(0, h*0.8),
		gg.Pt(w*0.6, h*0.6),
		gg.Pt(w, h*0.75),
		gg.Pt(w, h),
		gg.Pt(0, h),
	)
}
