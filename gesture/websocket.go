package gesture

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketSource reads JSON frames of the form {"poses":[[{"x":0.5,"y":0.4}, ...]]}
// from a websocket connection.
type WebSocketSource struct {
	conn      *websocket.Conn
	closeOnce sync.Once
	watchOnce sync.Once
}

func NewWebSocketSource(conn *websocket.Conn) *WebSocketSource {
	return &WebSocketSource{conn: conn}
}

// Next blocks for the next frame. Messages that do not decode are skipped.
// A normal close from the peer ends the stream with io.EOF.
func (s *WebSocketSource) Next(ctx context.Context) (Frame, error) {
	s.watchOnce.Do(func() {
		context.AfterFunc(ctx, func() { _ = s.Close() })
	})

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return Frame{}, io.EOF
			}
			return Frame{}, err
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var f Frame
		if err := json.Unmarshal(data, &f); err != nil {
			continue
		}
		return f, nil
	}
}

// Close closes the underlying connection. It is safe to call more than once.
func (s *WebSocketSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.conn.Close()
	})
	return err
}
