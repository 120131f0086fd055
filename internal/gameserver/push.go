package gameserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/observability"
)

const (
	sendBuffer = 64
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// SnapshotFunc returns the event sent to a client as soon as it connects,
// typically the current pool state so the client can seed its interpolator.
type SnapshotFunc func(ctx context.Context, playerID int64) (engine.Event, error)

type pushClient struct {
	playerID int64
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
}

func (c *pushClient) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub pushes engine events to the websocket clients of each player. It
// implements engine.Publisher; Publish never blocks, and a client whose
// buffer is full is disconnected.
type Hub struct {
	mu           sync.Mutex
	clients      map[int64]map[*pushClient]struct{}
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	snapshot     SnapshotFunc
	logger       *zap.Logger
}

// NewHub creates a Hub. snapshot may be nil.
//
// Precondition: writeTimeout > 0; logger must be non-nil.
func NewHub(writeTimeout time.Duration, snapshot SnapshotFunc, logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*pushClient]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		writeTimeout: writeTimeout,
		snapshot:     snapshot,
		logger:       logger,
	}
}

// Clients returns the number of connected clients of playerID.
func (h *Hub) Clients(playerID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[playerID])
}

// Publish implements engine.Publisher.
func (h *Hub) Publish(_ context.Context, ev engine.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("encoding push event", zap.String("type", string(ev.Type)), zap.Error(err))
		return
	}
	h.mu.Lock()
	clients := make([]*pushClient, 0, len(h.clients[ev.PlayerID]))
	for c := range h.clients[ev.PlayerID] {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	for _, c := range clients {
		h.deliver(c, data)
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.clients {
		for c := range set {
			h.removeLocked(c)
		}
	}
}

func (h *Hub) add(c *pushClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.playerID]
	if !ok {
		set = make(map[*pushClient]struct{})
		h.clients[c.playerID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(c *pushClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *pushClient) {
	set := h.clients[c.playerID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.playerID)
	}
	c.close()
}

// ServeHTTP upgrades GET ?player_id=N to a websocket subscription.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseInt(r.URL.Query().Get("player_id"), 10, 64)
	if err != nil || playerID <= 0 {
		http.Error(w, "player_id is required", http.StatusBadRequest)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &pushClient{playerID: playerID, conn: conn, send: make(chan []byte, sendBuffer)}

	// Register before the snapshot is read so nothing published in between
	// is missed.
	h.add(c)
	if h.snapshot != nil {
		ev, err := h.snapshot(r.Context(), playerID)
		if err != nil {
			h.remove(c)
			h.logger.Warn("building push snapshot", observability.Player(playerID), zap.Error(err))
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unknown player"),
				time.Now().Add(h.writeTimeout))
			conn.Close()
			return
		}
		data, err := json.Marshal(ev)
		if err == nil {
			h.deliver(c, data)
		}
	}

	h.logger.Debug("push client connected", observability.Player(playerID))
	go h.writePump(c)
	h.readPump(c)
}

// deliver queues data for c if it is still registered.
func (h *Hub) deliver(c *pushClient, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.playerID][c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
		h.logger.Warn("dropping slow push client", observability.Player(c.playerID))
		h.removeLocked(c)
	}
}

// readPump discards inbound frames and detects disconnects.
func (h *Hub) readPump(c *pushClient) {
	defer func() {
		h.remove(c)
		h.logger.Debug("push client disconnected", observability.Player(c.playerID))
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *pushClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
