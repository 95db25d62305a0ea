package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/go-drift/rgbclock/pkg/animation"
	"github.com/go-drift/rgbclock/pkg/clockface"
	"github.com/go-drift/rgbclock/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Keep an output file showing the current time",
		Long: `Run the frame loop and rewrite the output file on every frame until
interrupted. Each write replaces the file atomically.

Flags:
  --fps N            Frames per second (default from config server.fps, 1)
  --frames N         Stop after N frames (default: run until Ctrl+C)
  --out PATH         Output file (default from config, clock.<format>)
  --format FORMAT    png or svg (default from config, png)
  --hands            Draw a hand over each ring`,
		Usage: "rgbclock watch [--fps N] [--frames N] [--out PATH] [--format png|svg] [--hands]",
		Run:   runWatch,
	})
}

type watchOptions struct {
	fps    int
	frames int
	output outputFlags
}

func parseWatchArgs(args []string) (watchOptions, error) {
	var opts watchOptions
	for i := 0; i < len(args); i++ {
		next, ok, err := opts.output.parse(args, i)
		if err != nil {
			return opts, err
		}
		if ok {
			i = next
			continue
		}

		var target *int
		v, next, ok, err := takeValue(args, i, "--fps")
		if ok {
			target = &opts.fps
		} else {
			v, next, ok, err = takeValue(args, i, "--frames")
			target = &opts.frames
		}
		if err != nil {
			return opts, err
		}
		if !ok {
			return opts, fmt.Errorf("unknown flag %q\n\nUsage: rgbclock watch [--fps N] [--frames N] [--out PATH] [--format png|svg]", args[i])
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 1 {
			return opts, fmt.Errorf("%s must be a positive integer, got %q", args[i], v)
		}
		*target = n
		i = next
	}
	return opts, nil
}

func runWatch(args []string) error {
	opts, err := parseWatchArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.fps != 0 {
		cfg.Server.FPS = opts.fps
	}
	if err := opts.output.apply(cfg); err != nil {
		return err
	}
	log := setupLogging(cfg)

	fw, err := newFrameWriter(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Watching", "path", fw.path, "format", fw.format, "fps", cfg.Server.FPS)
	frames := watch(ctx, fw, animation.SystemClock(), animation.NewTickerScheduler(cfg.Server.FPS), opts.frames)
	log.Info("Stopped", "frames", frames)
	return nil
}

// watch drives fw from a Loop until ctx ends or, when limit is positive,
// limit frames were drawn. It owns sched and returns the frame count.
func watch(ctx context.Context, fw *frameWriter, clock animation.Clock, sched *animation.TickerScheduler, limit int) uint64 {
	done := make(chan struct{})
	var once sync.Once
	var loop *animation.Loop
	loop = animation.NewLoop(sched, func() {
		if err := fw.Write(clockface.Sample(clock)); err != nil {
			errors.Report(errors.New("watch.frame", errors.KindRender, err))
		}
		if limit > 0 && loop.Frames()+1 >= uint64(limit) {
			once.Do(func() { close(done) })
		}
	})

	loop.Start()

	select {
	case <-ctx.Done():
	case <-done:
	}
	loop.Stop()
	sched.Close()
	return loop.Frames()
}
