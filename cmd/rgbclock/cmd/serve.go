package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-drift/rgbclock/cmd/rgbclock/internal/server"
	"github.com/go-drift/rgbclock/pkg/errors"
)

// shutdownTimeout bounds graceful shutdown of the preview server.
const shutdownTimeout = 10 * time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve a live preview over HTTP",
		Long: `Start an HTTP server with a live clock preview.

Endpoints:
  /            Preview page following the websocket stream
  /clock.png   Current frame as PNG (?at=HH:MM:SS for a fixed time)
  /clock.svg   Current frame as SVG (?at=HH:MM:SS for a fixed time)
  /ws          Websocket stream, one SVG document per frame
  /metrics     Prometheus metrics
  /health      Liveness probe

Flags:
  --addr ADDR    Listen address (default from config server.addr, :8080)
  --fps N        Stream frame rate (default from config server.fps, 1)
  --hands        Draw a hand over each ring`,
		Usage: "rgbclock serve [--addr ADDR] [--fps N] [--hands]",
		Run:   runServe,
	})
}

type serveOptions struct {
	addr  string
	fps   int
	hands bool
}

func parseServeArgs(args []string) (serveOptions, error) {
	var opts serveOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "--hands" {
			opts.hands = true
			continue
		}
		if v, next, ok, err := takeValue(args, i, "--addr"); ok {
			if err != nil {
				return opts, err
			}
			opts.addr = v
			i = next
			continue
		}
		v, next, ok, err := takeValue(args, i, "--fps")
		if err != nil {
			return opts, err
		}
		if !ok {
			return opts, fmt.Errorf("unknown flag %q\n\nUsage: rgbclock serve [--addr ADDR] [--fps N] [--hands]", args[i])
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return opts, fmt.Errorf("--fps must be an integer, got %q", v)
		}
		opts.fps = n
		i = next
	}
	return opts, nil
}

func runServe(args []string) error {
	opts, err := parseServeArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.fps != 0 {
		cfg.Server.FPS = opts.fps
	}
	if opts.hands {
		cfg.Clock.DisplayHands = true
	}
	if err := cfg.Validate(); err != nil {
		return errors.New("config", errors.KindConfig, err)
	}
	log := setupLogging(cfg)

	srv, err := server.New(cfg, server.Options{Version: Version, Logger: log})
	if err != nil {
		return err
	}

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil {
			return errors.New("serve", errors.KindInit, err)
		}
		return nil
	case sig := <-shutdown:
		log.Info("Received shutdown signal, starting graceful shutdown", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		log.Info("Server stopped gracefully")
		return nil
	}
}
