package skiscenes

import "github.com/gogpu/gg"

// fillPolygon fills the closed polygon through pts.
// An empty point list draws nothing. Degenerate polygons collapse
// to lines or points without error.
func fillPolygon(dc *gg.Context, col gg.RGBA, pts ...gg.Point) error {
	if len(pts) == 0 {
		return nil
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetFillBrush(gg.Solid(col))
	return dc.Fill()
}

// fillCircle fills a circle of radius r centred at (x, y).
func fillCircle(dc *gg.Context, col gg.RGBA, x, y, r float64) error {
	dc.DrawCircle(x, y, r)
	dc.SetFillBrush(gg.Solid(col))
	return dc.Fill()
}

// fillBox fills the axis-aligned box with corners (x0, y0) and (x1, y1).
func fillBox(dc *gg.Context, col gg.RGBA, x0, y0, x1, y1 float64) error {
	dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	dc.SetFillBrush(gg.Solid(col))
	return dc.Fill()
}

// strokePolyline strokes the open polyline through pts as one connected path.
func strokePolyline(dc *gg.Context, col gg.RGBA, width float64, pts ...gg.Point) error {
	if len(pts) < 2 {
		return nil
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.SetStrokeBrush(gg.Solid(col))
	dc.SetLineWidth(width)
	dc.SetLineJoin(gg.LineJoinRound)
	return dc.Stroke()
}
