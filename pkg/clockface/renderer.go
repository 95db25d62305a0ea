package clockface

import (
	"fmt"

	"github.com/go-drift/rgbclock/pkg/graphics"
)

const (
	// DefaultRadius is the face radius used when Options.Radius is zero.
	DefaultRadius = 200
	// DefaultNotchLength is the length of the hour ticks.
	DefaultNotchLength = 5

	outlineWidth    = 2
	centerDotRadius = 3
	notchStep       = 5
)

// Options configures a Renderer.
type Options struct {
	// Radius of the dial. Must exceed HoursRingInset.
	Radius float64
	// Center of the dial. Nil centers the dial on the canvas.
	Center *graphics.Offset
	// DisplayHands draws a straight hand over each ring.
	DisplayHands bool
	// NotchLength is the length of the hour ticks.
	NotchLength float64
}

// Renderer paints clock frames.
type Renderer struct {
	opts  Options
	rings []RingSpec
}

// NewRenderer validates opts and returns a renderer.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Radius == 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Radius <= HoursRingInset {
		return nil, fmt.Errorf("clockface: radius %g must be greater than %d", opts.Radius, HoursRingInset)
	}
	if opts.NotchLength == 0 {
		opts.NotchLength = DefaultNotchLength
	}
	if opts.NotchLength < 0 || opts.NotchLength > opts.Radius {
		return nil, fmt.Errorf("clockface: notch length %g out of range", opts.NotchLength)
	}
	return &Renderer{opts: opts, rings: Rings(opts.Radius)}, nil
}

// Options returns the effective options after defaults were applied.
func (r *Renderer) Options() Options {
	return r.opts
}

// Rings returns the ring layout in paint order.
func (r *Renderer) Rings() []RingSpec {
	return append([]RingSpec(nil), r.rings...)
}

// Center returns the dial center on canvas.
func (r *Renderer) Center(canvas graphics.Canvas) graphics.Offset {
	if r.opts.Center != nil {
		return *r.opts.Center
	}
	return canvas.Size().Center()
}

// RingSegments pairs a ring with its slices for one frame.
type RingSegments struct {
	Ring     RingSpec
	Segments []ArcSegment
}

// Segments partitions every ring for s without painting.
func (r *Renderer) Segments(s TimeSnapshot) []RingSegments {
	out := make([]RingSegments, len(r.rings))
	for i, ring := range r.rings {
		out[i] = RingSegments{Ring: ring, Segments: Partition(ring.Kind, s)}
	}
	return out
}

// RenderFrame paints a complete frame for s. The canvas is cleared first,
// so the same snapshot always produces the same sequence of draw calls.
func (r *Renderer) RenderFrame(canvas graphics.Canvas, s TimeSnapshot) {
	size := canvas.Size()
	center := r.Center(canvas)

	canvas.Clear(graphics.ColorTransparent)
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.FillPaint(ColorBackground))

	canvas.DrawCircle(center, r.opts.Radius, graphics.Paint{
		Color:       ColorDial,
		Style:       graphics.PaintStyleFillAndStroke,
		StrokeWidth: outlineWidth,
		StrokeColor: ColorInk,
	})
	r.paintNotches(canvas, center)

	for _, rs := range r.Segments(s) {
		PaintRing(canvas, center, rs.Ring, rs.Segments)
	}

	if r.opts.DisplayHands {
		for _, ring := range r.rings {
			canvas.DrawLine(center, PointAt(center, ring.Radius, s.Value(ring.Kind)), graphics.StrokePaint(ColorInk, outlineWidth))
		}
	}

	canvas.DrawCircle(center, centerDotRadius, graphics.FillPaint(ColorInk))
}

// paintNotches draws a tick at every hour position on the rim.
func (r *Renderer) paintNotches(canvas graphics.Canvas, center graphics.Offset) {
	paint := graphics.StrokePaint(ColorInk, outlineWidth)
	inner := r.opts.Radius - r.opts.NotchLength
	for u := 0; u < UnitsPerTurn; u += notchStep {
		canvas.DrawLine(PointAt(center, inner, float64(u)), PointAt(center, r.opts.Radius, float64(u)), paint)
	}
}
