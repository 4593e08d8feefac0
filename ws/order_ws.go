package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"pos-backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// OrderEvent is what kitchen and counter screens receive.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
	At    time.Time     `json:"at"`
}

// OrderHub fans order events out to every connected screen.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	log        *slog.Logger
}

func NewOrderHub(log *slog.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		log:        log.With("component", "order-feed"),
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled.
func (h *OrderHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warn("ws write failed", "error", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event; when the queue is full the event is dropped so
// order handling never waits on slow screens.
func (h *OrderHub) Publish(event string, order *entity.Order) {
	select {
	case h.broadcast <- OrderEvent{Type: event, Order: order, At: time.Now()}:
	default:
		h.log.Warn("order event dropped", "event", event, "orderId", order.ID)
	}
}

// Clients reports how many screens are connected.
func (h *OrderHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /orders/ws
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "error", err)
		return
	}
	select {
	case h.register <- conn:
		go h.readLoop(conn)
	case <-h.done:
		conn.Close()
	}
}

// readLoop only watches for the client going away; screens do not send.
func (h *OrderHub) readLoop(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
