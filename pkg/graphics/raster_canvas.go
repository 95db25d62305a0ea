package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// flattenTolerance is the maximum distance, in pixels, between a curve and
// the chords that replace it during rasterization.
const flattenTolerance = 0.2

// RasterCanvas draws into an in-memory RGBA image with anti-aliasing.
//
// Fills are scan converted by golang.org/x/image/vector. Strokes are
// expanded into one quad per segment and filled, so they have butt caps
// and no joins.
type RasterCanvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

// NewRasterCanvas allocates a canvas of the given pixel dimensions.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is overwritten by later draw calls.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the size of the canvas in pixels.
func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear fills the entire canvas with the given color, replacing its contents.
func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.DrawPath(path, paint)
}

// DrawCircle draws a circle with the provided paint.
func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	path := NewPath()
	path.ArcTo(center, radius, 0, 2*math.Pi, false)
	path.Close()
	c.DrawPath(path, paint)
}

// DrawLine draws a line segment with the provided paint. Lines are always
// stroked regardless of the paint style.
func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	c.beginPass()
	c.strokeSegment(start, end, width)
	c.endPass(paint.outlineColor())
}

// DrawPath draws a path with the provided paint.
func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	lines := path.Flatten(flattenTolerance)
	if paint.Style.Fills() {
		c.beginPass()
		for _, pl := range lines {
			c.fillPolyline(pl)
		}
		c.endPass(paint.Color)
	}
	if paint.Style.Strokes() {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		c.beginPass()
		for _, pl := range lines {
			c.strokePolyline(pl, width)
		}
		c.endPass(paint.outlineColor())
	}
}

func (c *RasterCanvas) beginPass() {
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.DrawOp = draw.Over
}

func (c *RasterCanvas) endPass(color Color) {
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{})
}

func (c *RasterCanvas) fillPolyline(pl Polyline) {
	if len(pl.Points) < 3 {
		return
	}
	first := pl.Points[0]
	c.rast.MoveTo(float32(first.X), float32(first.Y))
	for _, pt := range pl.Points[1:] {
		c.rast.LineTo(float32(pt.X), float32(pt.Y))
	}
	c.rast.ClosePath()
}

func (c *RasterCanvas) strokePolyline(pl Polyline, width float64) {
	for i := 1; i < len(pl.Points); i++ {
		c.strokeSegment(pl.Points[i-1], pl.Points[i], width)
	}
	if pl.Closed && len(pl.Points) > 2 {
		c.strokeSegment(pl.Points[len(pl.Points)-1], pl.Points[0], width)
	}
}

// strokeSegment adds a quad covering the segment widened by width. Every
// quad has the same winding so overlapping quads never cancel out.
func (c *RasterCanvas) strokeSegment(a, b Offset, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if floatEqual(length, 0) {
		return
	}
	half := width / 2
	nx, ny := -dy/length*half, dx/length*half
	c.rast.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	c.rast.LineTo(float32(b.X+nx), float32(b.Y+ny))
	c.rast.LineTo(float32(b.X-nx), float32(b.Y-ny))
	c.rast.LineTo(float32(a.X-nx), float32(a.Y-ny))
	c.rast.ClosePath()
}
