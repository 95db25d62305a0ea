package cmd

import (
	"fmt"

	"github.com/go-drift/rgbclock/pkg/animation"
	"github.com/go-drift/rgbclock/pkg/clockface"
	"github.com/go-drift/rgbclock/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a single frame to a file",
		Long: `Render one clock frame as PNG or SVG.

The time defaults to now. Use --at to render a fixed time, for example
to produce documentation images.

Flags:
  --at HH:MM:SS      Time to render (24-hour, seconds optional)
  --out PATH         Output file (default from config, clock.<format>)
  --format FORMAT    png or svg (default from config, png)
  --hands            Draw a hand over each ring`,
		Usage: "rgbclock render [--at HH:MM:SS] [--out PATH] [--format png|svg] [--hands]",
		Run:   runRender,
	})
}

type renderOptions struct {
	at     string
	output outputFlags
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		next, ok, err := opts.output.parse(args, i)
		if err != nil {
			return opts, err
		}
		if ok {
			i = next
			continue
		}
		v, next, ok, err := takeValue(args, i, "--at")
		if err != nil {
			return opts, err
		}
		if !ok {
			return opts, fmt.Errorf("unknown flag %q\n\nUsage: rgbclock render [--at HH:MM:SS] [--out PATH] [--format png|svg]", args[i])
		}
		opts.at = v
		i = next
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	snap := clockface.Sample(animation.SystemClock())
	if opts.at != "" {
		if snap, err = clockface.ParseHMS(opts.at); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := opts.output.apply(cfg); err != nil {
		return err
	}
	log := setupLogging(cfg)

	fw, err := newFrameWriter(cfg)
	if err != nil {
		return err
	}
	if err := fw.Write(snap); err != nil {
		return errors.New("render", errors.KindRender, err)
	}

	log.Info("Rendered frame", "path", cfg.Output.Path, "format", cfg.Output.Format, "time", snap.String())
	return nil
}
