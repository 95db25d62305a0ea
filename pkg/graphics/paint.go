package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Fills reports whether the style paints the shape interior.
func (s PaintStyle) Fills() bool {
	return s == PaintStyleFill || s == PaintStyleFillAndStroke
}

// Strokes reports whether the style paints the shape outline.
func (s PaintStyle) Strokes() bool {
	return s == PaintStyleStroke || s == PaintStyleFillAndStroke
}

// Paint describes how to draw a shape on the canvas.
//
// When Style is PaintStyleFillAndStroke the interior uses Color and the
// outline uses StrokeColor.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels
	StrokeColor Color      // Outline color for PaintStyleFillAndStroke
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
	}
}

// FillPaint returns a fill paint in the given color.
func FillPaint(c Color) Paint {
	p := DefaultPaint()
	p.Color = c
	return p
}

// StrokePaint returns a stroke paint in the given color and width.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

// outlineColor returns the color used for the stroke pass.
func (p Paint) outlineColor() Color {
	if p.Style == PaintStyleFillAndStroke {
		return p.StrokeColor
	}
	return p.Color
}
