package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendToConnection(t *testing.T) {
	m := GetWebSocketManager()

	conn := &WebSocketConnection{
		UserID:   "agent-send",
		UserName: "Agent Send",
		Send:     make(chan []byte, 2),
	}
	m.RegisterConnection(conn)
	defer m.UnregisterConnection(conn.UserID)

	err := m.SendToConnection(conn.UserID, []byte(`{"type":"subscribed"}`))
	require.NoError(t, err)

	select {
	case got := <-conn.Send:
		assert.JSONEq(t, `{"type":"subscribed"}`, string(got))
	default:
		t.Fatal("expected a message on the connection's send channel")
	}
}

func TestSendToConnectionUnknownUser(t *testing.T) {
	m := GetWebSocketManager()

	err := m.SendToConnection("nobody-here", []byte("hello"))
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestSendToConnectionBufferFull(t *testing.T) {
	m := GetWebSocketManager()

	conn := &WebSocketConnection{
		UserID: "agent-full",
		Send:   make(chan []byte, 1),
	}
	m.RegisterConnection(conn)
	defer m.UnregisterConnection(conn.UserID)

	require.NoError(t, m.SendToConnection(conn.UserID, []byte("first")))

	err := m.SendToConnection(conn.UserID, []byte("second"))
	assert.ErrorIs(t, err, ErrConnectionBufferFull)
}

func TestGetConnectionCount(t *testing.T) {
	m := GetWebSocketManager()
	base := m.GetConnectionCount()

	conn := &WebSocketConnection{
		UserID: "agent-count",
		Send:   make(chan []byte, 1),
	}
	m.RegisterConnection(conn)
	assert.Equal(t, base+1, m.GetConnectionCount())

	m.UnregisterConnection(conn.UserID)
	assert.Equal(t, base, m.GetConnectionCount())
}
