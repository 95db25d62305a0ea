package clockface

import (
	"fmt"

	"github.com/go-drift/rgbclock/pkg/graphics"
)

// ArcSegment is one colored pie slice on a ring, from Start to End units.
type ArcSegment struct {
	Start float64
	End   float64
	Color graphics.Color
}

// MinuteCase identifies how the seconds value relates to the minutes value.
type MinuteCase int

const (
	// MinuteSecondsWithin means seconds <= minutes.
	MinuteSecondsWithin MinuteCase = iota
	// MinuteSecondsLapped means seconds > minutes; the excess is clipped.
	MinuteSecondsLapped
)

func (c MinuteCase) String() string {
	switch c {
	case MinuteSecondsWithin:
		return "seconds_within"
	case MinuteSecondsLapped:
		return "seconds_lapped"
	default:
		return fmt.Sprintf("MinuteCase(%d)", int(c))
	}
}

// HourCase identifies the ordering of seconds and minutes against hours.
type HourCase int

const (
	// HourSecondsFirst means seconds <= minutes <= hours.
	HourSecondsFirst HourCase = iota
	// HourMinutesFirst means minutes < seconds <= hours.
	HourMinutesFirst
	// HourSecondsClipped means minutes <= hours < seconds.
	HourSecondsClipped
	// HourMinutesClipped means seconds <= hours < minutes.
	HourMinutesClipped
	// HourAllClipped means hours is below both seconds and minutes.
	HourAllClipped
)

func (c HourCase) String() string {
	switch c {
	case HourSecondsFirst:
		return "seconds_first"
	case HourMinutesFirst:
		return "minutes_first"
	case HourSecondsClipped:
		return "seconds_clipped"
	case HourMinutesClipped:
		return "minutes_clipped"
	case HourAllClipped:
		return "all_clipped"
	default:
		return fmt.Sprintf("HourCase(%d)", int(c))
	}
}

// ClassifyMinutes returns the minutes ring case for s.
func ClassifyMinutes(s TimeSnapshot) MinuteCase {
	if s.SecondUnits <= s.MinuteUnits {
		return MinuteSecondsWithin
	}
	return MinuteSecondsLapped
}

// ClassifyHours returns the hours ring case for s.
func ClassifyHours(s TimeSnapshot) HourCase {
	sec, minute, hour := s.SecondUnits, s.MinuteUnits, s.HourUnits
	if minute <= hour {
		switch {
		case sec <= minute:
			return HourSecondsFirst
		case sec <= hour:
			return HourMinutesFirst
		default:
			return HourSecondsClipped
		}
	}
	if sec <= hour {
		return HourMinutesClipped
	}
	return HourAllClipped
}

// breakpoint names a position on a ring by the time value it comes from.
type breakpoint int

const (
	atZero breakpoint = iota
	atSeconds
	atMinutes
	atHours
)

func (b breakpoint) units(s TimeSnapshot) float64 {
	switch b {
	case atSeconds:
		return s.SecondUnits
	case atMinutes:
		return s.MinuteUnits
	case atHours:
		return s.HourUnits
	default:
		return 0
	}
}

// slice is one entry of a ring layout.
type slice struct {
	from, to breakpoint
	color    graphics.Color
}

// minuteLayouts and hourLayouts list, per case, the slices painted in order.
// Anything past the ring's own value is dropped instead of wrapping.
var (
	minuteLayouts = [...][]slice{
		MinuteSecondsWithin: {
			{atZero, atSeconds, ColorMinuteLow},
			{atSeconds, atMinutes, ColorMinuteHigh},
		},
		MinuteSecondsLapped: {
			{atZero, atMinutes, ColorMinuteLow},
		},
	}

	hourLayouts = [...][]slice{
		HourSecondsFirst: {
			{atZero, atSeconds, ColorHourBase},
			{atSeconds, atMinutes, ColorHourSeconds},
			{atMinutes, atHours, ColorHourRest},
		},
		HourMinutesFirst: {
			{atZero, atMinutes, ColorHourBase},
			{atMinutes, atSeconds, ColorHourMinutes},
			{atSeconds, atHours, ColorHourRest},
		},
		HourSecondsClipped: {
			{atZero, atMinutes, ColorHourBase},
			{atMinutes, atHours, ColorHourMinutes},
		},
		HourMinutesClipped: {
			{atZero, atSeconds, ColorHourBase},
			{atSeconds, atHours, ColorHourSeconds},
		},
		HourAllClipped: {
			{atZero, atHours, ColorHourBase},
		},
	}
)

func resolve(layout []slice, s TimeSnapshot) []ArcSegment {
	out := make([]ArcSegment, len(layout))
	for i, sl := range layout {
		out[i] = ArcSegment{
			Start: sl.from.units(s),
			End:   sl.to.units(s),
			Color: sl.color,
		}
	}
	return out
}

// PartitionSeconds returns the single slice of the seconds ring.
func PartitionSeconds(s TimeSnapshot) []ArcSegment {
	return []ArcSegment{{Start: 0, End: s.SecondUnits, Color: ColorSeconds}}
}

// PartitionMinutes returns the slices of the minutes ring: two when the
// seconds are at or below the minutes, otherwise one up to the minutes.
func PartitionMinutes(s TimeSnapshot) []ArcSegment {
	return resolve(minuteLayouts[ClassifyMinutes(s)], s)
}

// PartitionHours returns the one to three slices of the hours ring.
func PartitionHours(s TimeSnapshot) []ArcSegment {
	return resolve(hourLayouts[ClassifyHours(s)], s)
}

// Partition returns the slices for the given ring.
func Partition(kind RingKind, s TimeSnapshot) []ArcSegment {
	switch kind {
	case RingSeconds:
		return PartitionSeconds(s)
	case RingMinutes:
		return PartitionMinutes(s)
	case RingHours:
		return PartitionHours(s)
	default:
		return nil
	}
}
