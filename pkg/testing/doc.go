// Package testing provides test doubles and canvas recorders for rgbclock.
//
// # Deterministic Time
//
// FakeClock stands in for the wall clock and ManualScheduler for the
// display refresh, so a loop can be stepped one frame at a time:
//
//	clk := rgbtest.NewFakeClockAt(time.Date(2024, 1, 1, 3, 20, 10, 0, time.UTC))
//	sched := rgbtest.NewManualScheduler()
//	loop := animation.NewLoop(sched, func() { frames = append(frames, clockface.Sample(clk)) })
//	loop.Start()
//	clk.Advance(time.Second)
//	sched.Pump()
//
// # Paint Recording
//
// RecordOps captures canvas calls as comparable DisplayOp values:
//
//	ops := rgbtest.RecordOps(graphics.Size{Width: 500, Height: 500}, func(c graphics.Canvas) {
//	    renderer.RenderFrame(c, snap)
//	})
//
// # Snapshot Testing
//
// Compare recorded ops against a golden file:
//
//	rgbtest.CaptureSnapshot(size, paint).MatchesFile(t, "testdata/frame.snapshot.json")
//
// Set RGBCLOCK_UPDATE_SNAPSHOTS=1 to rewrite golden files.
package testing
