package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/deskcorners/internal/trigger"
	"github.com/gorilla/websocket"

	log "github.com/sirupsen/logrus"
)

const (
	sendBuffer   = 32
	writeTimeout = 5 * time.Second
)

// StateProvider returns the current daemon state.
type StateProvider func() State

// client is one websocket subscriber.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server broadcasts trigger events to websocket subscribers.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	clients  map[*client]struct{}
	state    StateProvider
}

// NewServer creates a feed server.
func NewServer(state StateProvider) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		state:   state,
	}
}

// RegisterRoutes wires the feed handlers onto the mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", s.handleState)
	mux.Handle("/ws/events", s)
}

// Publish queues an event for every subscriber. Subscribers that cannot keep
// up are disconnected; Publish never blocks.
func (s *Server) Publish(ev trigger.Event) {
	data, err := json.Marshal(MessageFromEvent(ev))
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			log.Debug("Feed client too slow, dropping")
			s.removeLocked(c)
		}
	}
}

// Clients returns the number of connected subscribers.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close disconnects every subscriber.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		s.removeLocked(c)
	}
}

// ServeHTTP upgrades the connection and streams events until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.writeLoop(c)

	// Reads only detect the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.mu.Lock()
	s.removeLocked(c)
	s.mu.Unlock()
}

// writeLoop drains the client queue onto the socket.
func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}

// removeLocked unregisters a client; the caller holds s.mu.
func (s *Server) removeLocked(c *client) {
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
}

// handleState returns the current configuration and pointer state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	state := State{}
	if s.state != nil {
		state = s.state()
	}
	state.Clients = s.Clients()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(state)
}
