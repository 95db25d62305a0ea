// Package server hosts the live clock preview.
//
// Endpoints:
//   - /           HTML page that follows the websocket stream
//   - /clock.png  one frame as PNG, rendered on demand
//   - /clock.svg  one frame as SVG, rendered on demand
//   - /ws         websocket pushing an SVG document on every loop frame
//   - /metrics    Prometheus metrics
//   - /health     liveness probe
//
// The image endpoints accept an optional at=HH:MM:SS query parameter that
// replaces the clock reading.
package server
