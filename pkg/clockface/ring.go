package clockface

import "fmt"

// RingKind identifies one of the three concentric rings.
type RingKind int

const (
	RingSeconds RingKind = iota
	RingMinutes
	RingHours
)

func (k RingKind) String() string {
	switch k {
	case RingSeconds:
		return "seconds"
	case RingMinutes:
		return "minutes"
	case RingHours:
		return "hours"
	default:
		return fmt.Sprintf("RingKind(%d)", int(k))
	}
}

// Ring insets from the face radius.
const (
	SecondsRingInset = 20
	MinutesRingInset = 40
	HoursRingInset   = 100
)

// RingSpec places a ring on the face.
type RingSpec struct {
	Kind   RingKind
	Radius float64
}

// Rings returns the rings for a face of the given radius in paint order,
// outermost first.
func Rings(radius float64) []RingSpec {
	return []RingSpec{
		{Kind: RingSeconds, Radius: radius - SecondsRingInset},
		{Kind: RingMinutes, Radius: radius - MinutesRingInset},
		{Kind: RingHours, Radius: radius - HoursRingInset},
	}
}
