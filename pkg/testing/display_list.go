package testing

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/rgbclock/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String renders the op on one line with keys in a stable order.
func (o DisplayOp) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	parts := make([]string, 0, len(o.Params))
	for _, k := range sortedKeys(o.Params) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, o.Params[k]))
	}
	return o.Op + "(" + strings.Join(parts, " ") + ")"
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// RecordOps runs paint against a recording canvas of the given size and
// returns the calls it made.
func RecordOps(size graphics.Size, paint func(graphics.Canvas)) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	paint(canvas)
	return canvas.ops
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(sortedMap("rect", serializeRect(rect)), paint),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		), paint),
	})
}

func (c *serializingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: withPaint(sortedMap(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
		), paint),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: withPaint(sortedMap("commands", serializePath(path)), paint),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// --- Serialization helpers ---

func withPaint(params map[string]any, p graphics.Paint) map[string]any {
	params["color"] = serializeColor(p.Color)
	params["style"] = p.Style.String()
	if p.Style.Strokes() {
		params["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.Style == graphics.PaintStyleFillAndStroke {
		params["strokeColor"] = serializeColor(p.StrokeColor)
	}
	return params
}

func serializePath(p *graphics.Path) []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		args := make([]string, len(cmd.Args))
		for i, a := range cmd.Args {
			args[i] = fmt.Sprint(round2(a))
		}
		if len(args) == 0 {
			out = append(out, cmd.Op.String())
			continue
		}
		out = append(out, cmd.Op.String()+" "+strings.Join(args, " "))
	}
	return out
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
