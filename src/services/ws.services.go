package services

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CommentEvent is pushed to subscribers of a movie's comment feed.
type CommentEvent struct {
	Type      string      `json:"type"`
	MovieID   string      `json:"movieId,omitempty"`
	Comment   interface{} `json:"comment,omitempty"`
	CommentID string      `json:"commentId,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type commentHub struct {
	mu sync.Mutex
	// movie id -> connections; "" subscribes to everything
	clients map[string]map[*websocket.Conn]bool
}

var hub = &commentHub{clients: make(map[string]map[*websocket.Conn]bool)}

func (h *commentHub) register(movieID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[movieID] == nil {
		h.clients[movieID] = make(map[*websocket.Conn]bool)
	}
	h.clients[movieID][conn] = true
}

func (h *commentHub) unregister(movieID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[movieID], conn)
	if len(h.clients[movieID]) == 0 {
		delete(h.clients, movieID)
	}
}

func (h *commentHub) broadcast(ev CommentEvent) {
	// Full lock: gorilla connections do not allow concurrent writers.
	h.mu.Lock()
	defer h.mu.Unlock()

	send := func(movieID string) {
		for conn := range h.clients[movieID] {
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("[WS] write failed, dropping client: %v", err)
				conn.Close()
				delete(h.clients[movieID], conn)
			}
		}
		if len(h.clients[movieID]) == 0 {
			delete(h.clients, movieID)
		}
	}

	if ev.MovieID != "" {
		send(ev.MovieID)
		send("")
		return
	}
	// Deletes only carry the comment id, fan out to every feed. The ""
	// key holds the global subscribers, so this reaches them exactly once.
	for movieID := range h.clients {
		send(movieID)
	}
}

// BroadcastCommentEvent pushes a comment feed event to connected clients.
// With no subscribers it is a no-op.
func BroadcastCommentEvent(ev CommentEvent) {
	hub.broadcast(ev)
}

// WebSocketHandler subscribes a client to a movie's live comment feed.
// Without a movie_id the client hears everything.
func WebSocketHandler(c *gin.Context) {
	movieID := c.Query("movie_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	hub.register(movieID, conn)
	defer func() {
		hub.unregister(movieID, conn)
		conn.Close()
	}()

	// Clients only listen; the read loop just detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
