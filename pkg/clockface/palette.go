package clockface

import "github.com/go-drift/rgbclock/pkg/graphics"

// Ring colors. All are fully opaque.
var (
	// ColorSeconds fills the seconds ring.
	ColorSeconds = graphics.RGB(0, 0, 255)

	// ColorMinuteLow fills the minutes ring up to the seconds value.
	ColorMinuteLow = graphics.RGB(0, 255, 255)
	// ColorMinuteHigh fills the minutes ring from the seconds value to the minutes value.
	ColorMinuteHigh = graphics.RGB(0, 255, 0)

	// ColorHourBase fills the hours ring up to the first breakpoint.
	ColorHourBase = graphics.RGB(255, 255, 255)
	// ColorHourSeconds fills the span between the seconds and minutes values.
	ColorHourSeconds = graphics.RGB(255, 255, 0)
	// ColorHourMinutes fills the span between the minutes and seconds values.
	ColorHourMinutes = graphics.RGB(255, 0, 255)
	// ColorHourRest fills the span up to the hours value once both faster units are behind.
	ColorHourRest = graphics.RGB(255, 0, 0)
)

// Face colors.
var (
	ColorBackground = graphics.ColorBlack
	ColorDial       = graphics.ColorWhite
	ColorInk        = graphics.ColorBlack
)
