package clockface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/rgbclock/pkg/animation"
)

func TestSnapshotFromHMS(t *testing.T) {
	tests := []struct {
		h, m, s int
		want    TimeSnapshot
	}{
		{0, 0, 0, TimeSnapshot{0, 0, 0}},
		{3, 15, 45, TimeSnapshot{15, 15, 45}},
		{15, 15, 45, TimeSnapshot{15, 15, 45}},
		{12, 59, 59, TimeSnapshot{0, 59, 59}},
		{23, 30, 1, TimeSnapshot{55, 30, 1}},
		{7, 42, 9, TimeSnapshot{35, 42, 9}},
	}
	for _, tt := range tests {
		got := SnapshotFromHMS(tt.h, tt.m, tt.s)
		assert.Equal(t, tt.want, got, "%02d:%02d:%02d", tt.h, tt.m, tt.s)
		assert.True(t, got.Valid())
	}
}

func TestSample(t *testing.T) {
	clock := animation.FixedClock(time.Date(2024, 6, 1, 17, 42, 8, 500, time.UTC))
	assert.Equal(t, TimeSnapshot{HourUnits: 25, MinuteUnits: 42, SecondUnits: 8}, Sample(clock))

	clock = animation.FixedClock(time.Date(2024, 5, 1, 21, 15, 59, 0, time.UTC))
	assert.Equal(t, TimeSnapshot{HourUnits: 45, MinuteUnits: 15, SecondUnits: 59}, Sample(clock))
}

func TestValid(t *testing.T) {
	assert.False(t, TimeSnapshot{HourUnits: 60}.Valid())
	assert.False(t, TimeSnapshot{SecondUnits: -1}.Valid())
	assert.True(t, TimeSnapshot{59.9, 0, 0}.Valid())
	assert.True(t, TimeSnapshot{HourUnits: 59.9, MinuteUnits: 0, SecondUnits: 30}.Valid())
}

func TestParseHMS(t *testing.T) {
	s, err := ParseHMS("05:30:10")
	require.NoError(t, err)
	assert.Equal(t, TimeSnapshot{HourUnits: 25, MinuteUnits: 30, SecondUnits: 10}, s)

	s, err = ParseHMS(" 13:07 ")
	require.NoError(t, err)
	assert.Equal(t, TimeSnapshot{HourUnits: 5, MinuteUnits: 7}, s)

	for _, bad := range []string{"", "25:00:00", "10:61", "noon", "10:00:00:00"} {
		_, err := ParseHMS(bad)
		assert.Error(t, err, bad)
	}
}

func TestSnapshotValue(t *testing.T) {
	s := TimeSnapshot{HourUnits: 1, MinuteUnits: 2, SecondUnits: 3}
	assert.Equal(t, 3.0, s.Value(RingSeconds))
	assert.Equal(t, 2.0, s.Value(RingMinutes))
	assert.Equal(t, 1.0, s.Value(RingHours))
	assert.Equal(t, "h=1 m=2 s=3", s.String())
}
