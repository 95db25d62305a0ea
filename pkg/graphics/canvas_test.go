package graphics

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"
)

func TestColor(t *testing.T) {
	c := RGB(0, 255, 128)
	if c != Color(0xFF00FF80) {
		t.Errorf("RGB = %#x", uint32(c))
	}
	if got := c.String(); got != "rgba(0, 255, 128, 1)" {
		t.Errorf("String() = %q", got)
	}
	if got := c.Hex(); got != "#00FF80" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.WithAlpha(0.5).NRGBA(); got != (color.NRGBA{R: 0, G: 255, B: 128, A: 128}) {
		t.Errorf("NRGBA() = %v", got)
	}
	if RGBA(1, 2, 3, 2) != RGBA8(1, 2, 3, 255) {
		t.Error("alpha should clamp to 1")
	}
}

func TestPaintStyle(t *testing.T) {
	if !PaintStyleFillAndStroke.Fills() || !PaintStyleFillAndStroke.Strokes() {
		t.Error("fill_and_stroke should fill and stroke")
	}
	if PaintStyleFill.Strokes() || PaintStyleStroke.Fills() {
		t.Error("single styles should not mix")
	}
	if PaintStyle(9).String() != "PaintStyle(9)" {
		t.Error("unexpected unknown style string")
	}
}

func TestRasterCanvas_FillCircle(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	c.Clear(ColorBlack)
	c.DrawCircle(Offset{X: 20, Y: 20}, 10, FillPaint(ColorRed))

	if got := c.Image().RGBAAt(20, 20); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("center pixel = %v, want red", got)
	}
	if got := c.Image().RGBAAt(2, 2); got != (color.RGBA{A: 255}) {
		t.Errorf("corner pixel = %v, want black", got)
	}
	if s := c.Size(); s.Width != 40 || s.Height != 40 {
		t.Errorf("Size() = %v", s)
	}
}

func TestRasterCanvas_FillAndStrokeCircle(t *testing.T) {
	c := NewRasterCanvas(60, 60)
	c.Clear(ColorBlack)
	c.DrawCircle(Offset{X: 30, Y: 30}, 20, Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFillAndStroke,
		StrokeWidth: 4,
		StrokeColor: ColorBlue,
	})

	if got := c.Image().RGBAAt(30, 30); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("interior pixel = %v, want white", got)
	}
	// (30, 10) sits on the rim; the stroke straddles it.
	if got := c.Image().RGBAAt(30, 10); got.B != 255 || got.R > 10 {
		t.Errorf("rim pixel = %v, want blue", got)
	}
}

func TestRasterCanvas_Line(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.Clear(ColorWhite)
	c.DrawLine(Offset{X: 0, Y: 10}, Offset{X: 20, Y: 10}, StrokePaint(ColorBlack, 4))

	if got := c.Image().RGBAAt(5, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel on line = %v, want black", got)
	}
	if got := c.Image().RGBAAt(5, 2); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel off line = %v, want white", got)
	}
}

func TestRasterCanvas_PieSlice(t *testing.T) {
	c := NewRasterCanvas(100, 100)
	c.Clear(ColorBlack)
	center := Offset{X: 50, Y: 50}
	p := NewPath()
	p.MoveTo(center.X, center.Y)
	p.ArcTo(center, 40, 0, math.Pi/2, false)
	p.Close()
	c.DrawPath(p, FillPaint(ColorGreen))

	// Clockwise from 3 o'clock to 6 o'clock is the lower-right quadrant.
	if got := c.Image().RGBAAt(70, 70); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("inside slice = %v, want green", got)
	}
	if got := c.Image().RGBAAt(30, 30); got != (color.RGBA{A: 255}) {
		t.Errorf("outside slice = %v, want black", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewRasterCanvas(8, 4)
	c.Clear(ColorRed)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, c.Image()); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("bounds = %v", b)
	}
}

func TestSVGCanvas(t *testing.T) {
	c := NewSVGCanvas(Size{Width: 100, Height: 80})
	c.DrawCircle(Offset{X: 1, Y: 2}, 3, FillPaint(ColorRed))
	c.Clear(ColorBlack)
	c.DrawCircle(Offset{X: 50, Y: 40}, 30, Paint{Color: ColorWhite, Style: PaintStyleFillAndStroke, StrokeWidth: 2, StrokeColor: ColorBlack})
	c.DrawLine(Offset{X: 0, Y: 0}, Offset{X: 10, Y: 10}, StrokePaint(ColorBlack, 2))

	p := NewPath()
	p.MoveTo(50, 40)
	p.ArcTo(Offset{X: 50, Y: 40}, 20, -math.Pi/2, 0, false)
	p.Close()
	c.DrawPath(p, FillPaint(ColorBlue.WithAlpha(0.5)))

	out := string(c.Bytes())
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="80" viewBox="0 0 100 80">`,
		`<rect x="0" y="0" width="100" height="80" fill="#000000"/>`,
		`<circle cx="50" cy="40" r="30" fill="#FFFFFF" stroke="#000000" stroke-width="2"/>`,
		`<line x1="0" y1="0" x2="10" y2="10" fill="none" stroke="#000000" stroke-width="2"/>`,
		`<path d="M50 40 L50 20 A20 20 0 0 1 70 40 Z" fill="#0000FF" fill-opacity="0.502"/>`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `cx="1"`) {
		t.Error("Clear should discard earlier elements")
	}
}

func TestSVGCanvas_FullCircleArc(t *testing.T) {
	p := NewPath()
	p.ArcTo(Offset{X: 10, Y: 10}, 5, 0, 2*math.Pi, false)
	d := pathData(p)
	if strings.Count(d, "A") != 2 {
		t.Errorf("full circle should be two arcs, got %q", d)
	}
}
