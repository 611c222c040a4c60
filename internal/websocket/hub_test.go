package websocket

import (
	"testing"
	"time"

	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}

func (h *Hub) sessionClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func TestHubDeliversToRegisteredClient(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	client := &Client{SessionID: "sess-1", Send: make(chan []byte, 4)}
	h.register <- client
	require.Eventually(t, func() bool {
		return h.sessionClientCount("sess-1") == 1
	}, time.Second, 10*time.Millisecond)

	h.Send("sess-1", &dto.ProgressResponse{})

	select {
	case msg := <-client.Send:
		assert.Contains(t, string(msg), `"type":"progress"`)
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestHubDropsSlowClientWithoutDoubleClose(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	// Unbuffered Send with no reader: the first push always finds the
	// buffer full and takes the drop path.
	client := &Client{SessionID: "sess-2", Send: make(chan []byte)}
	h.register <- client
	require.Eventually(t, func() bool {
		return h.sessionClientCount("sess-2") == 1
	}, time.Second, 10*time.Millisecond)

	h.Send("sess-2", &dto.ProgressResponse{})

	require.Eventually(t, func() bool {
		return h.sessionClientCount("sess-2") == 0
	}, time.Second, 10*time.Millisecond)

	// Exactly one close, and it happened in the unregister path.
	select {
	case _, ok := <-client.Send:
		assert.False(t, ok, "expected Send to be closed")
	case <-time.After(time.Second):
		t.Fatal("Send was never closed")
	}

	// A disconnect notice racing the drop (readPump exiting) must be a
	// no-op rather than a second close.
	h.unregister <- client
	h.Send("sess-2", &dto.ProgressResponse{})
	assert.Equal(t, 0, h.sessionClientCount("sess-2"))
}
