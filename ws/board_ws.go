package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// BoardEvent avisa a los paneles conectados de que la lista de pedidos del
// día ha cambiado y toca recargar.
type BoardEvent struct {
	Event string `json:"event"` // order_created, order_updated, order_deleted, delivered_changed, day_closed
	Date  string `json:"fecha"`
}

// BoardHub mantiene las conexiones del panel de pedidos y les reparte los
// avisos de cambio.
type BoardHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan BoardEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewBoardHub() *BoardHub {
	return &BoardHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan BoardEvent),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *BoardHub) Run() {
	for {
		select {
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
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify lo llaman los controladores tras tocar un pedido o cerrar el día.
func (h *BoardHub) Notify(event, date string) {
	h.broadcast <- BoardEvent{Event: event, Date: date}
}

// Serve atiende GET /ws/board (el token ya lo validó el middleware).
func (h *BoardHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	go h.listen(conn)
}

// El panel no manda nada útil; este bucle solo detecta la desconexión.
func (h *BoardHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
