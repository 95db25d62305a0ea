package clockface

import "github.com/go-drift/rgbclock/pkg/graphics"

// PaintArc fills the pie slice of seg around center. The slice sweeps
// clockwise from seg.Start to seg.End; equal endpoints paint nothing.
func PaintArc(canvas graphics.Canvas, center graphics.Offset, radius float64, seg ArcSegment) {
	path := graphics.NewPath()
	path.MoveTo(center.X, center.Y)
	path.ArcTo(center, radius, TimeToAngle(seg.Start), TimeToAngle(seg.End), false)
	path.Close()
	canvas.DrawPath(path, graphics.FillPaint(seg.Color))
}

// PaintRing paints every slice of a ring in order.
func PaintRing(canvas graphics.Canvas, center graphics.Offset, ring RingSpec, segs []ArcSegment) {
	for _, seg := range segs {
		PaintArc(canvas, center, ring.Radius, seg)
	}
}
