package ident

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := NewAt(now)

	prefix := strconv.FormatInt(now.UnixMilli(), 36)
	require.True(t, strings.HasPrefix(id, prefix))
	assert.Len(t, id, len(prefix)+randomDigits)

	for _, r := range id {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
