package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/state"
)

func TestStreamHandler_SendsSnapshots(t *testing.T) {
	router, store := setupRouter(t)
	seedBoard(store)

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/stream"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	var first model.Document
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	require.Len(t, first.Boards, 1)
	assert.Equal(t, model.ThemeDark, first.Theme)

	store.Dispatch(state.ToggleTheme{})
	store.Dispatch(state.Unknown{Name: "IGNORED"})
	store.Dispatch(state.SetFilter{Filter: "Alice"})

	var second, third model.Document
	require.NoError(t, wsjson.Read(ctx, conn, &second))
	require.NoError(t, wsjson.Read(ctx, conn, &third))

	assert.Equal(t, model.ThemeLight, second.Theme)
	assert.Equal(t, model.FilterAll, second.Filter)
	assert.Equal(t, "Alice", third.Filter)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
}
