// Package clockface renders an "RGB clock": an analog face where the
// seconds, minutes and hours are shown as concentric rings of colored pie
// slices instead of hands.
//
// # Rings
//
// All three time values share a 60-unit circular scale; hours are scaled
// by five. Each ring is partitioned by comparing its own value against the
// faster units below it:
//
//   - The seconds ring is a single blue slice from 12 o'clock to the seconds value.
//   - The minutes ring is split at the seconds value when the seconds have
//     not yet passed the minutes.
//   - The hours ring is split at both the seconds and minutes values, in
//     whichever order they fall, as long as they lie below the hours value.
//
// Values that have passed a ring's own value are clipped rather than
// wrapped around, so a ring never shows more than its own value.
//
// # Usage
//
// Partitioning is pure and independent of drawing:
//
//	snap := clockface.SnapshotFromHMS(15, 30, 10)
//	for _, seg := range clockface.PartitionHours(snap) {
//	    fmt.Println(seg.Start, seg.End, seg.Color)
//	}
//
// A Renderer paints complete frames onto any graphics.Canvas:
//
//	r, err := clockface.NewRenderer(clockface.Options{Radius: 200})
//	if err != nil {
//	    return err
//	}
//	canvas := graphics.NewRasterCanvas(500, 500)
//	r.RenderFrame(canvas, clockface.Sample(animation.SystemClock()))
package clockface
