package skiscenes

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// Snow cap triangle size in pixels, independent of canvas size.
const (
	capHalfWidth = 30
	capHeight    = 40
)

// paintAlpineBackground draws three layered ranges, each darker and
// slightly higher than the previous, then caps three peaks with snow.
func paintAlpineBackground(dc *gg.Context, w, h float64, _ *rand.Rand) error {
	for i := range 3 {
		fi := float64(i)
		g := float64(180 - i*30)
		col := gg.RGB(g/255, g/255, (g+20)/255)

		err := fillPolygon(dc, col,
			gg.Pt(0, h*(0.6+fi*0.05)),
			gg.Pt(w*0.2, h*(0.3-fi*0.02)),
			gg.Pt(w*0.4, h*(0.35-fi*0.02)),
			gg.Pt(w*0.6, h*(0.25-fi*0.02)),
			gg.Pt(w*0.8, h*(0.4-fi*0.02)),
			gg.Pt(w, h*(0.5+fi*0.05)),
			gg.Pt(w, h),
			gg.Pt(0, h),
		)
		if err != nil {
			return err
		}
	}

	peaks := []gg.Point{
		gg.Pt(w*0.2, h*0.3),
		gg.Pt(w*0.6, h*0.25),
		gg.Pt(w*0.8, h*0.4),
	}
	for _, p := range peaks {
		err := fillPolygon(dc, gg.White,
			p,
			gg.Pt(p.X-capHalfWidth, p.Y+capHeight),
			gg.Pt(p.X+capHalfWidth, p.Y+capHeight),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
