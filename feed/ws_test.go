package feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefreel/catalog"
	"chefreel/sched"
)

func newFeedServer(t *testing.T) (*httptest.Server, *sched.Manual) {
	t.Helper()
	clock := sched.NewManual(epoch)
	h := NewHandler(catalog.NewMemory(catalog.Seed()).Store().Videos, nil).
		WithClock(clock).
		WithShuffle(func() ShuffleFunc { return noShuffle })

	router := httprouter.New()
	router.GET("/", h.GetFeedPage)
	router.GET("/ws/feed", h.ServeWS)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, clock
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/feed"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var m serverMessage
	require.NoError(t, conn.ReadJSON(&m))
	return m
}

func TestGetFeedPage(t *testing.T) {
	srv, _ := newFeedServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 0, page.Feed.Index)
	assert.Equal(t, 8, page.Feed.Total)
	assert.Equal(t, "1", page.Feed.Card.Entry.ID)
	assert.True(t, page.Nav.Overlay)
	assert.True(t, page.Nav.Items[0].Active)
	assert.Equal(t, "/ws/feed", page.Socket)
}

func TestFeedSession(t *testing.T) {
	srv, _ := newFeedServer(t)
	conn := dialFeed(t, srv)

	first := readMessage(t, conn)
	assert.Equal(t, "state", first.Type)
	assert.Equal(t, "init", first.Event)
	require.NotNil(t, first.State)
	assert.Equal(t, 0, first.State.Index)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "swipe", Distance: 20}))
	m := readMessage(t, conn)
	assert.False(t, m.Accepted)
	assert.Equal(t, 0, m.State.Index)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "swipe", Distance: 120}))
	m = readMessage(t, conn)
	assert.True(t, m.Accepted)
	assert.Equal(t, 1, m.State.Index)
	assert.Equal(t, "2", m.State.Card.Entry.ID)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "key", Key: "ArrowDown"}))
	m = readMessage(t, conn)
	assert.False(t, m.Accepted, "guard still held")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "like"}))
	m = readMessage(t, conn)
	assert.True(t, m.State.Card.Liked)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "previous"}))
	m = readMessage(t, conn)
	assert.Equal(t, 0, m.State.Index)
	assert.False(t, m.State.Card.Liked)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "tap", X: 5, Y: 6}))
	m = readMessage(t, conn)
	assert.Equal(t, "single", m.Tap)
	assert.True(t, m.State.Card.Playing)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "bogus"}))
	m = readMessage(t, conn)
	assert.Equal(t, "error", m.Type)
	assert.Equal(t, "bogus", m.Event)
}

func TestFeedSessionPushesTimerChanges(t *testing.T) {
	srv, clock := newFeedServer(t)
	conn := dialFeed(t, srv)
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "swipe", Distance: 90}))
	m := readMessage(t, conn)
	require.True(t, m.State.Transitioning)

	clock.Advance(DefaultTransitionLock)
	m = readMessage(t, conn)
	assert.Equal(t, "tick", m.Event)
	assert.False(t, m.State.Transitioning)
}

func TestFeedSessionTouchGesture(t *testing.T) {
	srv, _ := newFeedServer(t)
	conn := dialFeed(t, srv)
	readMessage(t, conn)

	for _, msg := range []clientMessage{
		{Type: "touchstart", Y: 600},
		{Type: "touchmove", Y: 420},
	} {
		require.NoError(t, conn.WriteJSON(msg))
		readMessage(t, conn)
	}
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "touchend"}))
	m := readMessage(t, conn)
	assert.True(t, m.Accepted)
	assert.Equal(t, 1, m.State.Index)
}
