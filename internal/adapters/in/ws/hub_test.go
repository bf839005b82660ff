package ws_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/in/ws"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu      sync.Mutex
	opened  int
	closed  int
	pushed  int
	dropped int
}

func (o *countingObserver) ConnectionOpened() { o.mu.Lock(); o.opened++; o.mu.Unlock() }
func (o *countingObserver) ConnectionClosed() { o.mu.Lock(); o.closed++; o.mu.Unlock() }
func (o *countingObserver) NotificationPushed(dropped bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if dropped {
		o.dropped++
		return
	}
	o.pushed++
}

func (o *countingObserver) snapshot() (int, int, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opened, o.closed, o.pushed
}

func newTestHub(t *testing.T) (*ws.Hub, *countingObserver, string) {
	t.Helper()
	observer := &countingObserver{}
	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), observer,
		func(*http.Request) bool { return true })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("user"))
	}))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, observer, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url, user string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url+"?user="+user, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_DeliversOnlyToRecipient(t *testing.T) {
	hub, observer, url := newTestHub(t)

	alice := dial(t, url, "alice")
	bob := dial(t, url, "bob")
	require.Eventually(t, func() bool {
		return hub.ConnectionCount("alice") == 1 && hub.ConnectionCount("bob") == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Deliver("alice", []byte(`{"title":"New Order Received"}`))

	require.NoError(t, alice.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := alice.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"New Order Received"}`, string(msg))

	require.NoError(t, bob.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = bob.ReadMessage()
	require.Error(t, err)

	_, _, pushed := observer.snapshot()
	assert.Equal(t, 1, pushed)
}

func TestHub_FansOutToEveryConnectionOfUser(t *testing.T) {
	hub, _, url := newTestHub(t)

	first := dial(t, url, "carol")
	second := dial(t, url, "carol")
	require.Eventually(t, func() bool { return hub.ConnectionCount("carol") == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Deliver("carol", []byte(`"ping"`))

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, `"ping"`, string(msg))
	}
}

func TestHub_UnregistersClosedConnections(t *testing.T) {
	hub, observer, url := newTestHub(t)

	conn := dial(t, url, "dave")
	require.Eventually(t, func() bool { return hub.ConnectionCount("dave") == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	_ = conn.Close()

	require.Eventually(t, func() bool { return hub.ConnectionCount("dave") == 0 }, 2*time.Second, 10*time.Millisecond)
	opened, closed, _ := observer.snapshot()
	assert.Equal(t, 1, opened)
	assert.Equal(t, 1, closed)
}

func TestHub_DeliverWithoutConnectionsIsNoop(t *testing.T) {
	hub, observer, _ := newTestHub(t)

	hub.Deliver("nobody", []byte("{}"))

	_, _, pushed := observer.snapshot()
	assert.Zero(t, pushed)
	assert.Zero(t, hub.ConnectionCount("nobody"))
}
