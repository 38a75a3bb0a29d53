package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
)

// StreamBuffer is how many snapshots a slow client may fall behind before
// it is disconnected.
const StreamBuffer = 32

const writeTimeout = 10 * time.Second

// Watcher is the part of the store the stream needs.
type Watcher interface {
	Watch(fn func(model.Document)) (model.Document, func())
}

type StreamHandler struct {
	store  Watcher
	logger *zap.Logger
}

func NewStreamHandler(store Watcher, logger *zap.Logger) *StreamHandler {
	return &StreamHandler{store: store, logger: logger}
}

// Stream sends the current document, then one snapshot per transition.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Error("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	// Client messages are ignored; the context ends when the peer goes away.
	ctx := conn.CloseRead(r.Context())

	updates := make(chan model.Document, StreamBuffer)
	overflow := make(chan struct{})
	var once sync.Once

	current, unsubscribe := h.store.Watch(func(doc model.Document) {
		select {
		case updates <- doc:
		default:
			once.Do(func() { close(overflow) })
		}
	})
	defer unsubscribe()

	if err := h.write(ctx, conn, current); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "connection closed")
			return
		case <-overflow:
			h.logger.Warn("stream client too slow, disconnecting")
			_ = conn.Close(websocket.StatusPolicyViolation, "too slow")
			return
		case doc := <-updates:
			if err := h.write(ctx, conn, doc); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) write(ctx context.Context, conn *websocket.Conn, doc model.Document) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := wsjson.Write(ctx, conn, doc); err != nil {
		h.logger.Debug("websocket write", zap.Error(err))
		return err
	}
	return nil
}
