package clockface

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/rgbclock/pkg/graphics"
	rgbtest "github.com/go-drift/rgbclock/pkg/testing"
)

var faceSize = graphics.Size{Width: 500, Height: 500}

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts)
	require.NoError(t, err)
	return r
}

func TestNewRenderer_Defaults(t *testing.T) {
	r := newRenderer(t, Options{})
	assert.Equal(t, float64(DefaultRadius), r.Options().Radius)
	assert.Equal(t, float64(DefaultNotchLength), r.Options().NotchLength)
	assert.False(t, r.Options().DisplayHands)
	assert.Equal(t, []RingSpec{
		{Kind: RingSeconds, Radius: 180},
		{Kind: RingMinutes, Radius: 160},
		{Kind: RingHours, Radius: 100},
	}, r.Rings())
}

func TestNewRenderer_RejectsSmallRadius(t *testing.T) {
	_, err := NewRenderer(Options{Radius: 100})
	require.Error(t, err)
	_, err = NewRenderer(Options{Radius: -5})
	require.Error(t, err)
	_, err = NewRenderer(Options{Radius: 150, NotchLength: 200})
	require.Error(t, err)
}

func TestRenderFrame_PaintOrder(t *testing.T) {
	r := newRenderer(t, Options{})
	s := SnapshotFromHMS(5, 30, 10)
	ops := rgbtest.RecordOps(faceSize, func(c graphics.Canvas) { r.RenderFrame(c, s) })

	var names []string
	for _, op := range ops {
		names = append(names, op.Op)
	}
	want := []string{"clear", "drawRect", "drawCircle"}
	for i := 0; i < 12; i++ {
		want = append(want, "drawLine")
	}
	// seconds 1, minutes 2, hours 2
	for i := 0; i < 5; i++ {
		want = append(want, "drawPath")
	}
	want = append(want, "drawCircle")
	require.Equal(t, want, names)

	assert.Equal(t, "0x00000000", ops[0].Params["color"])
	assert.Equal(t, "0xFF000000", ops[1].Params["color"])

	dial := ops[2].Params
	assert.Equal(t, 200.0, dial["radius"])
	assert.Equal(t, "0xFFFFFFFF", dial["color"])
	assert.Equal(t, "0xFF000000", dial["strokeColor"])
	assert.Equal(t, 2.0, dial["strokeWidth"])

	// The 12 o'clock notch runs from radius 195 to 200 straight up.
	notch := ops[3].Params
	assert.Equal(t, 250.0, notch["x1"])
	assert.Equal(t, 55.0, notch["y1"])
	assert.Equal(t, 50.0, notch["y2"])

	pathColors := []string{
		"0xFF0000FF",
		"0xFF00FFFF", "0xFF00FF00",
		"0xFFFFFFFF", "0xFFFFFF00",
	}
	for i, c := range pathColors {
		assert.Equal(t, c, ops[15+i].Params["color"], "path %d", i)
	}

	dot := ops[len(ops)-1].Params
	assert.Equal(t, 3.0, dot["radius"])
	assert.Equal(t, "0xFF000000", dot["color"])
}

func TestRenderFrame_ArcGeometry(t *testing.T) {
	r := newRenderer(t, Options{})
	ops := rgbtest.RecordOps(faceSize, func(c graphics.Canvas) {
		r.RenderFrame(c, SnapshotFromHMS(0, 0, 15))
	})
	seconds := ops[15].Params["commands"].([]string)
	require.Equal(t, []string{
		"move_to 250 250",
		"arc_to 250 250 180 -1.57 0 0",
		"close",
	}, seconds)
}

func TestRenderFrame_Idempotent(t *testing.T) {
	r := newRenderer(t, Options{DisplayHands: true})
	s := SnapshotFromHMS(9, 41, 27)
	paint := func(c graphics.Canvas) { r.RenderFrame(c, s) }

	first := rgbtest.CaptureSnapshot(faceSize, paint)
	second := rgbtest.CaptureSnapshot(faceSize, paint)
	assert.Empty(t, first.Diff(second))
}

func TestRenderFrame_Hands(t *testing.T) {
	s := SnapshotFromHMS(3, 0, 45)
	without := rgbtest.RecordOps(faceSize, func(c graphics.Canvas) {
		newRenderer(t, Options{}).RenderFrame(c, s)
	})
	with := rgbtest.RecordOps(faceSize, func(c graphics.Canvas) {
		newRenderer(t, Options{DisplayHands: true}).RenderFrame(c, s)
	})
	require.Len(t, with, len(without)+3)

	hands := with[len(with)-4 : len(with)-1]
	// seconds hand points left (45 units), minutes up, hours right
	assert.Equal(t, 70.0, hands[0].Params["x2"])
	assert.Equal(t, 250.0, hands[0].Params["y2"])
	assert.Equal(t, 250.0, hands[1].Params["x2"])
	assert.Equal(t, 90.0, hands[1].Params["y2"])
	assert.Equal(t, 350.0, hands[2].Params["x2"])
	assert.Equal(t, 250.0, hands[2].Params["y2"])
}

func TestRenderFrame_CustomCenter(t *testing.T) {
	r := newRenderer(t, Options{Radius: 120, Center: &graphics.Offset{X: 130, Y: 140}})
	ops := rgbtest.RecordOps(faceSize, func(c graphics.Canvas) { r.RenderFrame(c, TimeSnapshot{}) })
	dot := ops[len(ops)-1].Params
	assert.Equal(t, 130.0, dot["cx"])
	assert.Equal(t, 140.0, dot["cy"])
}

func TestRenderFrame_ReplaysThroughDisplayList(t *testing.T) {
	r := newRenderer(t, Options{})
	s := SnapshotFromHMS(11, 5, 50)

	recorder := &graphics.PictureRecorder{}
	r.RenderFrame(recorder.BeginRecording(faceSize), s)
	dl := recorder.EndRecording()

	direct := rgbtest.CaptureSnapshot(faceSize, func(c graphics.Canvas) { r.RenderFrame(c, s) })
	replayed := &rgbtest.Snapshot{Size: direct.Size, DisplayOps: rgbtest.SerializeDisplayList(dl)}
	assert.Empty(t, direct.Diff(replayed))
}

func TestRenderFrame_Raster(t *testing.T) {
	r := newRenderer(t, Options{})
	canvas := graphics.NewRasterCanvas(500, 500)
	// 05:30:10 gives hour=25 min=30 sec=10.
	r.RenderFrame(canvas, SnapshotFromHMS(5, 30, 10))
	img := canvas.Image()
	center := graphics.Offset{X: 250, Y: 250}

	tests := []struct {
		name   string
		radius float64
		units  float64
		want   graphics.Color
	}{
		{"seconds slice", 170, 5, ColorSeconds},
		{"dial past seconds", 170, 45, ColorDial},
		{"minutes below seconds", 130, 5, ColorMinuteLow},
		{"minutes above seconds", 130, 20, ColorMinuteHigh},
		{"minutes through hours ring", 50, 27, ColorMinuteHigh},
		{"hours base", 50, 5, ColorHourBase},
		{"hours seconds span", 50, 20, ColorHourSeconds},
		{"dial past minutes", 50, 40, ColorDial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPixel(t, img, PointAt(center, tt.radius, tt.units), tt.want)
		})
	}

	assertPixel(t, img, graphics.Offset{X: 5, Y: 5}, ColorBackground)
	assertPixel(t, img, center, ColorInk)
}

func assertPixel(t *testing.T, img *image.RGBA, at graphics.Offset, want graphics.Color) {
	t.Helper()
	got := img.RGBAAt(int(math.Floor(at.X)), int(math.Floor(at.Y)))
	w := want.NRGBA()
	assert.Equal(t, color.RGBA{R: w.R, G: w.G, B: w.B, A: w.A}, got, "pixel at %v", at)
}

func TestRenderFrame_Golden(t *testing.T) {
	r := newRenderer(t, Options{})
	snap := rgbtest.CaptureSnapshot(faceSize, func(c graphics.Canvas) {
		r.RenderFrame(c, SnapshotFromHMS(5, 30, 10))
	})
	snap.MatchesFile(t, "testdata/frame_05-30-10.json")
}
