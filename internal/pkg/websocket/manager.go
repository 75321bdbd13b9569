package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Message is the frame written to a subscriber
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type session struct {
	conn *websocket.Conn
	send chan []byte
}

// Manager keeps the live WebSocket sessions of every subscriber.
// A subscriber may hold several sessions, one per connected device.
type Manager struct {
	sync.RWMutex
	sessions map[string]map[*session]struct{}
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]map[*session]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and serves it until the peer goes away
func (m *Manager) HandleConnection(c echo.Context, subscriberID string) error {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	s := &session{conn: conn, send: make(chan []byte, sendBuffer)}
	m.add(subscriberID, s)
	logger.Info("WebSocket subscriber connected", logger.String("subscriber_id", subscriberID))

	go m.writePump(s)
	m.readPump(subscriberID, s)
	return nil
}

func (m *Manager) add(subscriberID string, s *session) {
	m.Lock()
	defer m.Unlock()
	if m.sessions[subscriberID] == nil {
		m.sessions[subscriberID] = make(map[*session]struct{})
	}
	m.sessions[subscriberID][s] = struct{}{}
}

func (m *Manager) remove(subscriberID string, s *session) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.sessions[subscriberID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	close(s.send)
	if len(set) == 0 {
		delete(m.sessions, subscriberID)
	}
}

// readPump drains client frames so control messages are processed
func (m *Manager) readPump(subscriberID string, s *session) {
	defer func() {
		m.remove(subscriberID, s)
		s.conn.Close()
		logger.Info("WebSocket subscriber disconnected", logger.String("subscriber_id", subscriberID))
	}()

	s.conn.SetReadLimit(4096)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) writePump(s *session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Notify pushes an event to every session of a subscriber and reports how
// many sessions accepted it. Slow sessions whose buffer is full are skipped.
func (m *Manager) Notify(subscriberID, event string, data interface{}) (int, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("error marshaling message data: %w", err)
	}
	payload, err := json.Marshal(Message{Event: event, Data: raw})
	if err != nil {
		return 0, fmt.Errorf("error marshaling message: %w", err)
	}

	m.RLock()
	defer m.RUnlock()

	delivered := 0
	for s := range m.sessions[subscriberID] {
		select {
		case s.send <- payload:
			delivered++
		default:
			logger.Warn("Dropping message for slow WebSocket subscriber",
				logger.String("subscriber_id", subscriberID),
				logger.String("event", event))
		}
	}
	return delivered, nil
}

// Connected returns the number of live sessions of a subscriber
func (m *Manager) Connected(subscriberID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions[subscriberID])
}
