package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/slateos/slate/backend/internal/domain/display"
	"github.com/slateos/slate/backend/internal/infrastructure/logging"
	"github.com/slateos/slate/backend/internal/infrastructure/monitoring"
	"github.com/slateos/slate/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// writeTimeout bounds each client write; a stalled client must never
// hold up the layout pass that triggered the broadcast.
const writeTimeout = 5 * time.Second

// client is one connected stream consumer
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

// Handler manages WebSocket connections and streams layout pass
// results to every connected client
type Handler struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics

	mu      sync.RWMutex
	clients map[*client]bool
}

// NewHandler creates a new WebSocket handler
func NewHandler(logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		metrics: metrics,
		clients: make(map[*client]bool),
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{conn: conn}
	h.register(cl)
	defer h.unregister(cl)

	cl.send(types.WSMessage{
		Type: "system",
		Payload: map[string]interface{}{
			"message": "Connected to compositor stream",
		},
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
		h.metrics.RecordWSMessage(msg.Type, "in")

		switch msg.Type {
		case "ping":
			cl.send(types.WSMessage{Type: "pong"})
		default:
			cl.send(types.WSMessage{
				Type: "error",
				Payload: map[string]interface{}{
					"message": "unknown message type: " + msg.Type,
				},
			})
		}
	}
}

// NotifyPass broadcasts a layout pass result to all clients
func (h *Handler) NotifyPass(result *display.PassResult) {
	msg := struct {
		Type string              `json:"type"`
		Pass *display.PassResult `json:"pass"`
	}{Type: "layout_pass", Pass: result}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.send(msg); err != nil {
			// Timed out or gone; drop it rather than stall passes.
			h.logger.Warn("Dropping WebSocket client", zap.Error(err))
			h.unregister(cl)
		}
	}
	h.metrics.RecordWSMessage("layout_pass", "out")
}

func (h *Handler) register(cl *client) {
	h.mu.Lock()
	h.clients[cl] = true
	h.mu.Unlock()
	h.metrics.RecordWSConnection(true)
}

// unregister is idempotent; the read loop and a failed broadcast can
// both try to remove the same client.
func (h *Handler) unregister(cl *client) {
	h.mu.Lock()
	_, ok := h.clients[cl]
	delete(h.clients, cl)
	h.mu.Unlock()
	if !ok {
		return
	}
	h.metrics.RecordWSConnection(false)
	cl.conn.Close()
}
