package clockface

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/rgbclock/pkg/animation"
)

// UnitsPerTurn is the size of the shared circular scale.
const UnitsPerTurn = 60

// hourScale maps a 12-hour dial onto the 60-unit scale.
const hourScale = UnitsPerTurn / 12

// TimeSnapshot holds one frame's time values on the shared 60-unit scale.
type TimeSnapshot struct {
	HourUnits   float64
	MinuteUnits float64
	SecondUnits float64
}

// SnapshotFromHMS converts a 24-hour wall-clock reading into time units.
// Hours wrap onto a 12-hour dial, so 3 and 15 both yield 15 hour units.
func SnapshotFromHMS(hour, minute, second int) TimeSnapshot {
	return TimeSnapshot{
		HourUnits:   float64((hour % 12) * hourScale),
		MinuteUnits: float64(minute),
		SecondUnits: float64(second),
	}
}

// SnapshotFromTime converts t, in its own location, into time units.
func SnapshotFromTime(t time.Time) TimeSnapshot {
	return SnapshotFromHMS(t.Hour(), t.Minute(), t.Second())
}

// ParseHMS parses a 24-hour "HH:MM:SS" or "HH:MM" reading.
func ParseHMS(value string) (TimeSnapshot, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return SnapshotFromTime(t), nil
		}
	}
	return TimeSnapshot{}, fmt.Errorf("clockface: invalid time %q (want HH:MM:SS)", value)
}

// Sample reads the current time from clock.
func Sample(clock animation.Clock) TimeSnapshot {
	return SnapshotFromTime(clock.Now())
}

// Valid reports whether every value lies in [0, 60).
func (s TimeSnapshot) Valid() bool {
	return inUnitRange(s.HourUnits) && inUnitRange(s.MinuteUnits) && inUnitRange(s.SecondUnits)
}

// Value returns the units shown by the given ring.
func (s TimeSnapshot) Value(kind RingKind) float64 {
	switch kind {
	case RingSeconds:
		return s.SecondUnits
	case RingMinutes:
		return s.MinuteUnits
	default:
		return s.HourUnits
	}
}

func (s TimeSnapshot) String() string {
	return fmt.Sprintf("h=%g m=%g s=%g", s.HourUnits, s.MinuteUnits, s.SecondUnits)
}

func inUnitRange(v float64) bool {
	return v >= 0 && v < UnitsPerTurn
}
