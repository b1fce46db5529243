package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/conneroisu/bizconsult/internal/logging"
	"github.com/conneroisu/bizconsult/internal/validation"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 54 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Per-client outbound queue.
	sendBuffer = 16
)

// UpdateMessage is the payload pushed to live-reload clients.
type UpdateMessage struct {
	Type      string    `json:"type"`
	Files     []string  `json:"files,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Client is one connected live-reload browser tab.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub fans reload notifications out to every connected client. Run owns
// the client set; everything else talks to it over channels.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	count      chan int

	logger         logging.Logger
	allowedOrigins []string

	started chan struct{}
	done    chan struct{}
	pumps   sync.WaitGroup
}

// NewHub creates a hub. Call Run to start it.
func NewHub(allowedOrigins []string, logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Hub{
		clients:        make(map[*Client]struct{}),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan []byte),
		count:          make(chan int),
		logger:         logger.WithComponent("livereload"),
		allowedOrigins: allowedOrigins,
		started:        make(chan struct{}),
		done:           make(chan struct{}),
	}
}

// Run serves the hub until ctx is done, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	close(h.started)
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.pumps.Add(2)
			h.logger.Debug(ctx, "Client connected", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug(ctx, "Client disconnected", "clients", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow client, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}

		case h.count <- len(h.clients):
		}
	}
}

// Broadcast queues msg for every connected client. It returns false when
// the hub is not running.
func (h *Hub) Broadcast(msg UpdateMessage) bool {
	if !h.running() {
		return false
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return false
	}

	select {
	case h.broadcast <- data:
		return true
	case <-h.done:
		return false
	}
}

// ClientCount returns the number of registered clients, or zero when the
// hub is not running.
func (h *Hub) ClientCount() int {
	if !h.running() {
		return 0
	}
	select {
	case n := <-h.count:
		return n
	case <-h.done:
		return 0
	}
}

func (h *Hub) running() bool {
	select {
	case <-h.started:
		return true
	default:
		return false
	}
}

// Wait blocks until the hub and all client pumps have exited or ctx is done.
func (h *Hub) Wait(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		<-h.done
		h.pumps.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := validation.ValidateOrigin(r.Header.Get("Origin"), r.Host, h.allowedOrigins); err != nil {
		h.logger.Warn(r.Context(), err, "WebSocket origin rejected", "ip", remoteHost(r.RemoteAddr))
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	if !h.running() {
		http.Error(w, "Live reload unavailable", http.StatusServiceUnavailable)
		return
	}

	// The server's read and write deadlines would otherwise apply to the
	// hijacked connection.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(h.allowedOrigins),
	})
	if err != nil {
		h.logger.Warn(r.Context(), err, "WebSocket upgrade failed")
		return
	}
	conn.SetReadLimit(maxMessageSize)

	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		hub:  h,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	go client.writePump()
	go client.readPump()
}

// originPatterns converts allowed origins to the host patterns Accept
// matches against.
func originPatterns(allowed []string) []string {
	patterns := make([]string, 0, len(allowed))
	for _, origin := range allowed {
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, origin)
	}
	return patterns
}

// readPump drains the connection so control frames are processed, and
// unregisters the client when the peer goes away. It ends when writePump
// closes the connection.
func (c *Client) readPump() {
	defer c.hub.pumps.Done()
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
	}()

	ctx := context.Background()
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				c.hub.logger.Debug(ctx, "WebSocket read ended", "error", err.Error())
			}
			return
		}
	}
}

// writePump delivers queued messages and keeps the connection alive. It
// closes the connection when the hub closes the send channel.
func (c *Client) writePump() {
	defer c.hub.pumps.Done()

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				c.hub.logger.Debug(context.Background(), "WebSocket write failed", "error", err.Error())
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}
