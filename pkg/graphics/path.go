package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpArcTo                // Line to the arc start, then arc around (cx, cy)
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpArcTo:
		return "arc_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], ArcTo=[cx,cy,radius,start,end,ccw]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, ArcTo and Close. Use with
// Canvas.DrawPath to stroke or fill.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// ArcTo adds a circular arc around center from startAngle to endAngle
// (radians, 0 pointing right, increasing clockwise on screen). If the path
// has a current point, a straight line joins it to the start of the arc.
//
// When counterClockwise is false the arc sweeps in the increasing-angle
// direction; a sweep of 2π or more draws the full circle.
func (p *Path) ArcTo(center Offset, radius, startAngle, endAngle float64, counterClockwise bool) {
	ccw := 0.0
	if counterClockwise {
		ccw = 1
	}
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpArcTo,
		Args: []float64{center.X, center.Y, radius, startAngle, endAngle, ccw},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Offset
	Closed bool
}

// ArcSweep returns the signed angle an arc from start to end covers.
// Clockwise sweeps are in [0, 2π]; counter-clockwise sweeps in [-2π, 0].
func ArcSweep(startAngle, endAngle float64, counterClockwise bool) float64 {
	sweep := endAngle - startAngle
	if !counterClockwise {
		if sweep >= 2*math.Pi {
			return 2 * math.Pi
		}
		if sweep < 0 {
			sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
		}
		return sweep
	}
	if sweep <= -2*math.Pi {
		return -2 * math.Pi
	}
	if sweep > 0 {
		sweep = math.Mod(sweep, 2*math.Pi) - 2*math.Pi
	}
	return sweep
}

// Flatten converts the path into polylines, approximating arcs with line
// segments whose distance from the true curve stays below tolerance.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out     []Polyline
		current *Polyline
	)
	start := func(pt Offset) {
		out = append(out, Polyline{Points: []Offset{pt}})
		current = &out[len(out)-1]
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			start(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpLineTo:
			pt := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			if current == nil {
				start(pt)
				continue
			}
			current.Points = append(current.Points, pt)
		case PathOpArcTo:
			center := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			radius := cmd.Args[2]
			sweep := ArcSweep(cmd.Args[3], cmd.Args[4], cmd.Args[5] != 0)
			steps := arcSteps(radius, sweep, tolerance)
			for i := 0; i <= steps; i++ {
				theta := cmd.Args[3] + sweep*float64(i)/float64(steps)
				pt := Offset{
					X: center.X + radius*math.Cos(theta),
					Y: center.Y + radius*math.Sin(theta),
				}
				if current == nil {
					start(pt)
					continue
				}
				current.Points = append(current.Points, pt)
			}
		case PathOpClose:
			if current != nil {
				current.Closed = true
				current = nil
			}
		}
	}
	return out
}

// arcSteps returns how many chords approximate an arc within tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	if radius <= tolerance {
		return 1
	}
	step := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 1 {
		n = 1
	}
	return n
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}
