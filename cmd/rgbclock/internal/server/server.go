package server

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-drift/rgbclock/cmd/rgbclock/internal/config"
	"github.com/go-drift/rgbclock/pkg/animation"
	"github.com/go-drift/rgbclock/pkg/clockface"
	"github.com/go-drift/rgbclock/pkg/errors"
	"github.com/go-drift/rgbclock/pkg/graphics"
	"github.com/go-drift/rgbclock/pkg/logger"
)

//go:embed templates/index.html
var indexTemplate string

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

// HTTP server timeouts.
const (
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// Options configures a Server. Zero values select production behavior.
type Options struct {
	// Clock is read once per frame. Defaults to the system clock.
	Clock animation.Clock
	// Scheduler drives the stream loop. Defaults to a TickerScheduler at
	// the configured fps, owned and closed by the server.
	Scheduler animation.FrameScheduler
	// Version is reported by the build info metric.
	Version string
	// Logger defaults to a discarding logger.
	Logger *logger.Logger
}

type indexPageData struct {
	Width  int
	Height int
	FPS    int
}

// Server represents the HTTP preview server.
type Server struct {
	server   *http.Server
	cfg      *config.Config
	renderer *clockface.Renderer
	clock    animation.Clock
	logger   *logger.Logger
	metrics  *Metrics
	hub      *hub
	loop     *animation.Loop
	ticker   *animation.TickerScheduler // non-nil when owned
	upgrader websocket.Upgrader
}

// New creates a server for cfg. The stream loop is not started until
// Start or StartStream is called.
func New(cfg *config.Config, opts Options) (*Server, error) {
	renderer, err := clockface.NewRenderer(cfg.RendererOptions())
	if err != nil {
		return nil, errors.New("server.New", errors.KindConfig, err)
	}

	if opts.Clock == nil {
		opts.Clock = animation.SystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	mux := http.NewServeMux()
	s := &Server{
		server: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      mux,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
		cfg:      cfg,
		renderer: renderer,
		clock:    opts.Clock,
		logger:   opts.Logger.WithFields("component", "server"),
		metrics:  NewMetrics(opts.Version),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
	}
	s.hub = newHub(s.logger, func(n int) { s.metrics.streamClients.Set(float64(n)) })

	scheduler := opts.Scheduler
	if scheduler == nil {
		s.ticker = animation.NewTickerScheduler(cfg.Server.FPS)
		scheduler = s.ticker
	}
	s.loop = animation.NewLoop(scheduler, s.streamFrame)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /clock.png", s.handlePNG)
	mux.HandleFunc("GET /clock.svg", s.handleSVG)
	mux.HandleFunc("GET /ws", s.handleStream)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Metrics returns the server's instruments.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// StartStream starts the frame loop feeding /ws.
func (s *Server) StartStream() {
	s.loop.Start()
}

// Start starts the stream loop and serves HTTP until Shutdown.
func (s *Server) Start() error {
	s.StartStream()
	s.logger.Info("Starting HTTP server", "address", s.server.Addr, "fps", s.cfg.Server.FPS)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops the loop, disconnects stream clients and gracefully
// shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	s.loop.Stop()
	if s.ticker != nil {
		s.ticker.Close()
	}
	s.hub.closeAll()
	return s.server.Shutdown(ctx)
}

// streamFrame renders one SVG frame and pushes it to stream clients.
func (s *Server) streamFrame() {
	if s.hub.count() == 0 {
		return
	}
	start := time.Now()
	size := s.cfg.SurfaceSize()
	var recorder graphics.PictureRecorder
	s.renderer.RenderFrame(recorder.BeginRecording(size), clockface.Sample(s.clock))
	canvas := graphics.NewSVGCanvas(size)
	recorder.EndRecording().Paint(canvas)
	frame := canvas.Bytes()
	s.metrics.observeRender(targetStream, time.Since(start).Seconds())
	s.hub.broadcast(frame)
}

// snapshot reads the clock unless the request pins a time with ?at=.
func (s *Server) snapshot(r *http.Request) (clockface.TimeSnapshot, error) {
	if at := r.URL.Query().Get("at"); at != "" {
		return clockface.ParseHMS(at)
	}
	return clockface.Sample(s.clock), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexPageData{
		Width:  s.cfg.Surface.Width,
		Height: s.cfg.Surface.Height,
		FPS:    s.cfg.Server.FPS,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("Failed to execute index template", "error", err)
	}
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	canvas := graphics.NewRasterCanvas(s.cfg.Surface.Width, s.cfg.Surface.Height)
	s.renderer.RenderFrame(canvas, snap)
	var buf bytes.Buffer
	if err := graphics.EncodePNG(&buf, canvas.Image()); err != nil {
		errors.Report(errors.New("server.handlePNG", errors.KindRender, err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.metrics.observeRender(targetPNG, time.Since(start).Seconds())

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("Failed to write PNG response", "error", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	canvas := graphics.NewSVGCanvas(s.cfg.SurfaceSize())
	s.renderer.RenderFrame(canvas, snap)
	body := canvas.Bytes()
	s.metrics.observeRender(targetSVG, time.Since(start).Seconds())

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("Failed to write SVG response", "error", err)
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}
	s.hub.add(conn)
}

// handleHealth always returns 200 while the process is serving.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
		s.logger.Error("Failed to write health response", "error", err)
	}
}
