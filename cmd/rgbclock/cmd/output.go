package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/rgbclock/cmd/rgbclock/internal/config"
	"github.com/go-drift/rgbclock/pkg/clockface"
	"github.com/go-drift/rgbclock/pkg/errors"
	"github.com/go-drift/rgbclock/pkg/graphics"
)

// outputFlags are the flags shared by render and watch.
type outputFlags struct {
	out    string
	format string
	hands  bool
}

// parse consumes args[i] if it is an output flag.
func (f *outputFlags) parse(args []string, i int) (next int, ok bool, err error) {
	if args[i] == "--hands" {
		f.hands = true
		return i, true, nil
	}
	if v, next, ok, err := takeValue(args, i, "--out"); ok {
		f.out = v
		return next, true, err
	}
	if v, next, ok, err := takeValue(args, i, "--format"); ok {
		f.format = strings.ToLower(v)
		return next, true, err
	}
	return i, false, nil
}

// apply layers the flags over cfg and revalidates it. Choosing a format
// without a path moves the default path to the matching extension.
func (f *outputFlags) apply(cfg *config.Config) error {
	if f.format != "" && f.format != cfg.Output.Format {
		if f.out == "" && cfg.Output.Path == "clock."+cfg.Output.Format {
			cfg.Output.Path = "clock." + f.format
		}
		cfg.Output.Format = f.format
	}
	if f.out != "" {
		cfg.Output.Path = f.out
	}
	if f.hands {
		cfg.Clock.DisplayHands = true
	}
	if err := cfg.Validate(); err != nil {
		return errors.New("config", errors.KindConfig, err)
	}
	return nil
}

// frameWriter renders frames into the configured output file.
type frameWriter struct {
	renderer *clockface.Renderer
	width    int
	height   int
	format   string
	path     string
}

// newFrameWriter acquires the output surface: the renderer and a writable
// output directory. Failure is a KindInit error.
func newFrameWriter(cfg *config.Config) (*frameWriter, error) {
	renderer, err := clockface.NewRenderer(cfg.RendererOptions())
	if err != nil {
		return nil, errors.New("output.init", errors.KindInit, err)
	}

	dir := filepath.Dir(cfg.Output.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("output.init", errors.KindInit, fmt.Errorf("create output directory: %w", err))
	}
	probe, err := os.CreateTemp(dir, ".rgbclock-*")
	if err != nil {
		return nil, errors.New("output.init", errors.KindInit, fmt.Errorf("output directory not writable: %w", err))
	}
	probe.Close()
	os.Remove(probe.Name())

	return &frameWriter{
		renderer: renderer,
		width:    cfg.Surface.Width,
		height:   cfg.Surface.Height,
		format:   cfg.Output.Format,
		path:     cfg.Output.Path,
	}, nil
}

// encode paints one frame and returns the encoded file contents.
func (w *frameWriter) encode(snap clockface.TimeSnapshot) ([]byte, error) {
	if w.format == "svg" {
		canvas := graphics.NewSVGCanvas(graphics.Size{Width: float64(w.width), Height: float64(w.height)})
		w.renderer.RenderFrame(canvas, snap)
		return canvas.Bytes(), nil
	}

	canvas := graphics.NewRasterCanvas(w.width, w.height)
	w.renderer.RenderFrame(canvas, snap)
	var buf bytes.Buffer
	if err := graphics.EncodePNG(&buf, canvas.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders snap and replaces the output file atomically, so a reader
// never sees a partial frame.
func (w *frameWriter) Write(snap clockface.TimeSnapshot) error {
	data, err := w.encode(snap)
	if err != nil {
		return fmt.Errorf("encode %s: %w", w.format, err)
	}

	tmp := w.path + ".tmp-" + strconv.Itoa(os.Getpid())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", w.path, err)
	}
	return nil
}
