package gesture

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketSource(t *testing.T) {
	frames := make(chan Frame, 4)
	done := make(chan error, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			done <- err
			return
		}
		src := NewWebSocketSource(conn)
		defer src.Close()

		for {
			f, err := src.Next(context.Background())
			if err != nil {
				done <- err
				return
			}
			frames <- f
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not a frame")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"poses":[[{"x":0.25,"y":0.5}]]}`)))

	select {
	case f := <-frames:
		require.Len(t, f.Poses, 1)
		assert.Equal(t, Landmark{X: 0.25, Y: 0.5}, f.Poses[0][Nose])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
	}

	require.NoError(t, conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, io.EOF)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for close")
	}
}
