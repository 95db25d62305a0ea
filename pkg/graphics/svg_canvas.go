package graphics

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SVGCanvas records drawing calls as SVG elements.
type SVGCanvas struct {
	size Size
	body strings.Builder
}

// NewSVGCanvas creates an SVG canvas with the given viewport size.
func NewSVGCanvas(size Size) *SVGCanvas {
	return &SVGCanvas{size: size}
}

// Size returns the viewport size.
func (c *SVGCanvas) Size() Size {
	return c.size
}

// Clear discards previously drawn elements and paints the whole viewport.
func (c *SVGCanvas) Clear(color Color) {
	c.body.Reset()
	if color == ColorTransparent {
		return
	}
	c.DrawRect(RectFromLTWH(0, 0, c.size.Width, c.size.Height), FillPaint(color))
}

// DrawRect draws a rectangle with the provided paint.
func (c *SVGCanvas) DrawRect(rect Rect, paint Paint) {
	fmt.Fprintf(&c.body, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(rect.Left), num(rect.Top), num(rect.Width()), num(rect.Height()), paintAttrs(paint))
}

// DrawCircle draws a circle with the provided paint.
func (c *SVGCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	fmt.Fprintf(&c.body, `<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
		num(center.X), num(center.Y), num(radius), paintAttrs(paint))
}

// DrawLine draws a line segment with the provided paint.
func (c *SVGCanvas) DrawLine(start, end Offset, paint Paint) {
	paint.Style = PaintStyleStroke
	fmt.Fprintf(&c.body, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		num(start.X), num(start.Y), num(end.X), num(end.Y), paintAttrs(paint))
}

// DrawPath draws a path with the provided paint.
func (c *SVGCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	fmt.Fprintf(&c.body, `<path d="%s"%s/>`+"\n", pathData(path), paintAttrs(paint))
}

// Bytes returns the complete SVG document.
func (c *SVGCanvas) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(c.size.Width), num(c.size.Height), num(c.size.Width), num(c.size.Height))
	buf.WriteString(c.body.String())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func paintAttrs(p Paint) string {
	var sb strings.Builder
	if p.Style.Fills() {
		writeColorAttr(&sb, "fill", p.Color)
	} else {
		sb.WriteString(` fill="none"`)
	}
	if p.Style.Strokes() {
		writeColorAttr(&sb, "stroke", p.outlineColor())
		width := p.StrokeWidth
		if width <= 0 {
			width = 1
		}
		fmt.Fprintf(&sb, ` stroke-width="%s"`, num(width))
	}
	return sb.String()
}

func writeColorAttr(sb *strings.Builder, name string, c Color) {
	fmt.Fprintf(sb, ` %s="%s"`, name, c.Hex())
	if a := c.Alpha(); a < 1 {
		fmt.Fprintf(sb, ` %s-opacity="%s"`, name, num(a))
	}
}

// pathData converts path commands into an SVG "d" attribute.
func pathData(p *Path) string {
	var (
		sb         strings.Builder
		hasCurrent bool
	)
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			fmt.Fprintf(&sb, "M%s %s ", num(cmd.Args[0]), num(cmd.Args[1]))
			hasCurrent = true
		case PathOpLineTo:
			fmt.Fprintf(&sb, "L%s %s ", num(cmd.Args[0]), num(cmd.Args[1]))
			hasCurrent = true
		case PathOpArcTo:
			cx, cy, r := cmd.Args[0], cmd.Args[1], cmd.Args[2]
			start := cmd.Args[3]
			sweep := ArcSweep(start, cmd.Args[4], cmd.Args[5] != 0)
			sx, sy := cx+r*math.Cos(start), cy+r*math.Sin(start)
			if hasCurrent {
				fmt.Fprintf(&sb, "L%s %s ", num(sx), num(sy))
			} else {
				fmt.Fprintf(&sb, "M%s %s ", num(sx), num(sy))
			}
			hasCurrent = true
			// An SVG arc cannot end where it starts, so full sweeps are
			// emitted as two halves.
			pieces := 1
			if math.Abs(sweep) > math.Pi {
				pieces = 2
			}
			for i := 1; i <= pieces; i++ {
				theta := start + sweep*float64(i)/float64(pieces)
				ex, ey := cx+r*math.Cos(theta), cy+r*math.Sin(theta)
				sweepFlag := 1
				if sweep < 0 {
					sweepFlag = 0
				}
				fmt.Fprintf(&sb, "A%s %s 0 0 %d %s %s ", num(r), num(r), sweepFlag, num(ex), num(ey))
			}
		case PathOpClose:
			sb.WriteString("Z ")
			hasCurrent = false
		}
	}
	return strings.TrimSpace(sb.String())
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
