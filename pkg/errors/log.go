package errors

import "github.com/go-drift/rgbclock/pkg/logger"

// LogHandler is an ErrorHandler that writes errors to a structured logger.
type LogHandler struct {
	// Log receives the records. Nil means a text logger on stderr.
	Log *logger.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to log.
func NewLogHandler(log *logger.Logger) *LogHandler {
	if log == nil {
		log = logger.New("info", "text", nil)
	}
	return &LogHandler{Log: log}
}

// HandleError logs a ClockError.
func (h *LogHandler) HandleError(err *ClockError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("rgbclock error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("rgbclock panic", attrs...)
}

func (h *LogHandler) logger() *logger.Logger {
	if h.Log == nil {
		h.Log = logger.New("info", "text", nil)
	}
	return h.Log
}
