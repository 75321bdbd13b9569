package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, m *Manager) *httptest.Server {
	e := echo.New()
	e.GET("/stream", func(c echo.Context) error {
		return m.HandleConnection(c, c.QueryParam("driverId"))
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, driverID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream?driverId=" + driverID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitConnected(t *testing.T, m *Manager, id string, n int) {
	require.Eventually(t, func() bool { return m.Connected(id) == n }, time.Second, 10*time.Millisecond)
}

func TestNotify_DeliversToSubscriber(t *testing.T) {
	m := NewManager()
	srv := startServer(t, m)
	conn := dial(t, srv, "d1")
	waitConnected(t, m, "d1", 1)

	delivered, err := m.Notify("d1", "ride_request.created", map[string]string{"id": "req-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "ride_request.created", msg.Event)
	assert.JSONEq(t, `{"id":"req-1"}`, string(msg.Data))
}

func TestNotify_UnknownSubscriber(t *testing.T) {
	m := NewManager()

	delivered, err := m.Notify("nobody", "ride_request.created", struct{}{})

	assert.NoError(t, err)
	assert.Equal(t, 0, delivered)
}

func TestDisconnect_RemovesSession(t *testing.T) {
	m := NewManager()
	srv := startServer(t, m)
	conn := dial(t, srv, "d1")
	waitConnected(t, m, "d1", 1)

	conn.Close()

	waitConnected(t, m, "d1", 0)
}
