package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/kanban-board/internal/testutil"
)

func TestPostgresBackend_GetPut(t *testing.T) {
	pool, cleanup := testutil.SetupTestDB(t)
	defer cleanup()
	testutil.TruncateTables(t, pool)

	ctx := context.Background()
	backend := NewPostgresBackend(pool)

	require.NoError(t, backend.EnsureSchema(ctx))

	t.Run("missing row", func(t *testing.T) {
		_, err := backend.Get(ctx, DefaultID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, DefaultID, []byte(`{"boards":[],"theme":"dark"}`)))
		require.NoError(t, backend.Put(ctx, DefaultID, []byte(`{"boards":[],"theme":"light"}`)))

		got, err := backend.Get(ctx, DefaultID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"boards":[],"theme":"light"}`, string(got))

		var rows int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM app_state").Scan(&rows))
		assert.Equal(t, 1, rows)
	})
}
