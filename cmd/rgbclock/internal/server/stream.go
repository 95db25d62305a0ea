package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/go-drift/rgbclock/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// hub fans loop frames out to websocket clients. A slow client misses
// frames rather than delaying the loop.
type hub struct {
	mu      sync.Mutex
	clients map[*streamClient]struct{}
	latest  []byte

	onCount func(int)
	logger  *logger.Logger
}

type streamClient struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func newHub(log *logger.Logger, onCount func(int)) *hub {
	return &hub{
		clients: make(map[*streamClient]struct{}),
		onCount: onCount,
		logger:  log,
	}
}

// add registers conn and starts its pumps. The most recent frame, if any,
// is sent right away so a new page does not wait for the next tick.
func (h *hub) add(conn *websocket.Conn) *streamClient {
	c := &streamClient{conn: conn, send: make(chan []byte, 1)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	n := len(h.clients)
	h.mu.Unlock()

	h.onCount(n)
	h.logger.Debug("Stream client connected", "remote", conn.RemoteAddr().String(), "clients", n)

	go h.writePump(c)
	go h.readPump(c)
	return c
}

func (h *hub) remove(c *streamClient) {
	c.once.Do(func() {
		h.mu.Lock()
		delete(h.clients, c)
		n := len(h.clients)
		if n == 0 {
			// Frames stop while nobody watches, so the last one goes stale.
			h.latest = nil
		}
		close(c.send)
		h.mu.Unlock()

		h.onCount(n)
		h.logger.Debug("Stream client disconnected", "clients", n)
	})
}

// broadcast hands frame to every client without blocking.
func (h *hub) broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = frame
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			// Replace the stale frame the writer has not picked up yet.
			select {
			case <-c.send:
			default:
			}
			select {
			case c.send <- frame:
			default:
			}
		}
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// closeAll disconnects every client.
func (h *hub) closeAll() {
	h.mu.Lock()
	clients := make([]*streamClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second),
		)
		c.conn.Close()
		h.remove(c)
	}
}

func (h *hub) writePump(c *streamClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

// readPump discards client messages and notices disconnects.
func (h *hub) readPump(c *streamClient) {
	defer h.remove(c)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
