package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/transfer"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("REMOTE_BACKEND", "none")
	t.Setenv("LOG_LEVEL", "error")
	return dataDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kanban test\n", out)
}

func TestDispatchAndShow(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "dispatch", `{"type":"ADD_BOARD","payload":{"name":"Work"}}`)
	require.NoError(t, err)

	var doc model.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Boards, 1)
	board := doc.Boards[0]

	_, err = run(t, "dispatch", `{"type":"ADD_TASK","payload":{"boardId":"`+board.ID+`","title":"Write report","columnId":"`+board.Columns[0].ID+`","assignee":"Alice"}}`)
	require.NoError(t, err)

	out, err = run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "To Do (1)")
	assert.Contains(t, out, "Write report")

	out, err = run(t, "show", "--filter", "Bob")
	require.NoError(t, err)
	assert.Contains(t, out, "To Do (0)")

	_, err = run(t, "show", "--board", "missing")
	assert.Error(t, err)
}

func TestDispatchMalformed(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "dispatch", `{"type":`)
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	setupEnv(t)
	outDir := t.TempDir()

	_, err := run(t, "dispatch", `{"type":"ADD_BOARD","payload":{"name":"Backup me"}}`)
	require.NoError(t, err)

	out, err := run(t, "export", "--dir", outDir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(outDir, transfer.FileName(time.Now())), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"boards\": ["))

	// Import into a fresh data dir.
	setupEnv(t)
	out, err = run(t, "import", path)
	require.NoError(t, err)
	assert.Equal(t, "imported 1 boards\n", out)

	out, err = run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Backup me")
}

func TestImportRejected(t *testing.T) {
	setupEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"theme":"light"}`), 0o644))

	_, err := run(t, "import", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, transfer.ErrInvalidFormat)

	_, err = run(t, "import", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestExportRemoteWithoutBackend(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "export", "--remote", "--dir", t.TempDir())
	assert.EqualError(t, err, "no remote backend configured")
}
