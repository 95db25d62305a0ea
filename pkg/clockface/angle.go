package clockface

import (
	"math"

	"github.com/go-drift/rgbclock/pkg/graphics"
)

// TimeToAngle converts a value on the 60-unit scale into radians, with 0
// pointing at 12 o'clock and angles increasing clockwise.
func TimeToAngle(units float64) float64 {
	return units/UnitsPerTurn*2*math.Pi - math.Pi/2
}

// PointAt returns the point at radius from center in the direction of units.
func PointAt(center graphics.Offset, radius, units float64) graphics.Offset {
	theta := TimeToAngle(units)
	return graphics.Offset{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y + radius*math.Sin(theta),
	}
}
