package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/rgbclock/pkg/graphics"
)

var testSize = graphics.Size{Width: 20, Height: 10}

func paintSample(c graphics.Canvas) {
	c.Clear(graphics.ColorTransparent)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 20, 10), graphics.FillPaint(graphics.ColorBlack))
	path := graphics.NewPath()
	path.MoveTo(10, 5)
	path.ArcTo(graphics.Offset{X: 10, Y: 5}, 4, 0, 1.5, false)
	path.Close()
	c.DrawPath(path, graphics.FillPaint(graphics.ColorRed))
	c.DrawLine(graphics.Offset{X: 1, Y: 1}, graphics.Offset{X: 2, Y: 2}, graphics.StrokePaint(graphics.ColorWhite, 2))
}

func TestRecordOps(t *testing.T) {
	ops := RecordOps(testSize, paintSample)
	if len(ops) != 4 {
		t.Fatalf("expected 4 ops, got %d", len(ops))
	}
	want := []string{"clear", "drawRect", "drawPath", "drawLine"}
	for i, op := range ops {
		if op.Op != want[i] {
			t.Errorf("op %d = %q, want %q", i, op.Op, want[i])
		}
	}
	cmds := ops[2].Params["commands"].([]string)
	if cmds[0] != "move_to 10 5" || cmds[1] != "arc_to 10 5 4 0 1.5 0" || cmds[2] != "close" {
		t.Errorf("unexpected path commands %v", cmds)
	}
	if got := ops[3].Params["strokeWidth"]; got != 2.0 {
		t.Errorf("strokeWidth = %v, want 2", got)
	}
}

func TestSerializeDisplayListMatchesDirectRecording(t *testing.T) {
	recorder := &graphics.PictureRecorder{}
	paintSample(recorder.BeginRecording(testSize))
	dl := recorder.EndRecording()

	direct := CaptureSnapshot(testSize, paintSample)
	replayed := &Snapshot{Size: direct.Size, DisplayOps: SerializeDisplayList(dl)}
	if diff := direct.Diff(replayed); diff != "" {
		t.Errorf("replayed display list differs:\n%s", diff)
	}
}

func TestDisplayOpString(t *testing.T) {
	op := DisplayOp{Op: "drawCircle", Params: sortedMap("radius", 3.0, "cx", 1.0)}
	if got := op.String(); got != "drawCircle(cx=1 radius=3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSnapshot_MatchesFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden", "frame.snapshot.json")
	snap := CaptureSnapshot(testSize, paintSample)
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	ft := &fakeT{name: t.Name()}
	CaptureSnapshot(testSize, paintSample).MatchesFile(ft, path)
	if ft.failed() {
		t.Fatalf("expected match, got errors %v fatals %v", ft.errors, ft.fatals)
	}

	changed := CaptureSnapshot(testSize, func(c graphics.Canvas) { c.Clear(graphics.ColorWhite) })
	changed.MatchesFile(ft, path)
	if len(ft.errors) != 1 || !strings.Contains(ft.errors[0], "snapshot mismatch") {
		t.Errorf("expected one mismatch error, got %v", ft.errors)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	ft := &fakeT{name: "TestMissing"}
	CaptureSnapshot(testSize, paintSample).MatchesFile(ft, filepath.Join(t.TempDir(), "nope.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Errorf("expected missing-file fatal, got %v", ft.fatals)
	}
}

type fakeT struct {
	name   string
	errors []string
	fatals []string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Name() string { return f.name }

func (f *fakeT) failed() bool { return len(f.errors)+len(f.fatals) > 0 }
