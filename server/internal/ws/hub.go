package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/launchdash/launchdash/pkg/types"
	"github.com/launchdash/launchdash/server/internal/dashboard"
)

const (
	// writeTimeout is the deadline for a single write to a client.
	writeTimeout = 10 * time.Second

	// pongWait is how long to wait for a pong response before treating the
	// connection as dead.
	pongWait = 60 * time.Second

	// pingPeriod controls how often the server sends WebSocket ping frames.
	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds one client control event.
	maxMessageSize = 16 << 10

	// sendBufSize is the per-client outgoing message buffer depth.
	sendBufSize = 16
)

// Event names carried in the envelope.
const (
	EventControl = "control"
	EventFigures = "figures"
	EventError   = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ControlMessage is a client's notification that a control changed.
type ControlMessage struct {
	Event   string                     `json:"event"`
	Changed string                     `json:"changed"`
	Values  map[string]json.RawMessage `json:"values"`
}

// Message is the JSON envelope sent to clients.
type Message struct {
	Event   string                  `json:"event"`
	Outputs map[string]types.Figure `json:"outputs,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// Hub tracks connected clients and answers their control events by
// dispatching them to the callback registry.
type Hub struct {
	reg      *dashboard.Registry
	defaults dashboard.ControlState

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// client represents one connected WebSocket client.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// New creates a Hub that recomputes through reg. defaults is the control
// state of a freshly loaded page; control events overlay their values on it.
func New(reg *dashboard.Registry, defaults dashboard.ControlState) *Hub {
	return &Hub{
		reg:      reg,
		defaults: defaults,
		clients:  make(map[*client]struct{}),
	}
}

// Run blocks until ctx is cancelled, then closes all active connections.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.closeAll()
}

// ServeHTTP upgrades the HTTP connection to WebSocket and serves the client.
// It sends the initial figures immediately on connect, then answers control
// events until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already written the error response.
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufSize),
	}
	h.register(c)
	defer h.unregister(c)

	slog.Debug("ws: client connected", "client", c.id, "remote", r.RemoteAddr)

	if data, err := h.respond("", h.defaults); err == nil {
		h.deliver(c, data)
	}

	go c.writePump()
	h.readPump(c) // blocks until connection closes

	slog.Debug("ws: client disconnected", "client", c.id)
}

// Count returns the number of currently connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// --- internal ---------------------------------------------------------------

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// deliver queues data for c. It reports false if c is gone or its buffer is
// full. Holding the read lock keeps send from being closed underneath us.
func (h *Hub) deliver(c *client, data []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// respond recomputes the outputs affected by changed and encodes the reply.
func (h *Hub) respond(changed string, state dashboard.ControlState) ([]byte, error) {
	outputs, err := h.reg.Dispatch(changed, state)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Event: EventFigures, Outputs: outputs})
}

// handle decodes one client frame and returns the reply to send.
func (h *Hub) handle(c *client, raw []byte) []byte {
	var msg ControlMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return errorMessage("invalid message: " + err.Error())
	}
	if msg.Event != EventControl {
		return errorMessage(fmt.Sprintf("unsupported event %q", msg.Event))
	}

	state := h.defaults.ApplyValues(msg.Values)
	data, err := h.respond(msg.Changed, state)
	if errors.Is(err, dashboard.ErrUnknownControl) {
		return errorMessage(err.Error())
	}
	if err != nil {
		slog.Error("ws: recompute failed", "client", c.id, "changed", msg.Changed, "err", err)
		return errorMessage("recompute failed")
	}
	slog.Debug("ws: control event", "client", c.id, "changed", msg.Changed,
		"site", state.SelectedSite, "range", state.PayloadRange)
	return data
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

func errorMessage(text string) []byte {
	data, _ := json.Marshal(Message{Event: EventError, Error: text})
	return data
}

// readPump reads control events until the connection closes, answering each
// one in order. Pong frames extend the read deadline.
func (h *Hub) readPump(c *client) {
	defer c.conn.Close()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if !h.deliver(c, h.handle(c, raw)) {
			// Gone, or not keeping up with its own replies.
			return
		}
	}
}

// writePump drains the client's send channel and forwards messages to the
// WebSocket connection. It also sends periodic ping frames. Runs in its own
// goroutine per client.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				// Channel was closed (hub is shutting down or client removed).
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
