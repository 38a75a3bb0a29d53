package persist

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/state"
	"github.com/BuzzLyutic/kanban-board/internal/worker"
)

type recordingSink struct {
	mu   sync.Mutex
	docs []model.Document
}

func (s *recordingSink) Save(_ context.Context, doc model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
}

func (s *recordingSink) filters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.docs))
	for i, d := range s.docs {
		out[i] = d.Filter
	}
	return out
}

func TestPersister_SavesEveryTransitionInOrder(t *testing.T) {
	pool := worker.NewPool(zap.NewNop(), 3, 0)
	pool.Start(context.Background())

	local, remote := &recordingSink{}, &recordingSink{}
	store := state.NewStore(model.DefaultDocument(), state.NewReducer(state.DefaultFactory()))
	New(pool, local, remote, zap.NewNop()).Attach(store)

	filters := []string{"Alice", "Bob", "Unassigned", "All", "Carol"}
	for _, f := range filters {
		store.Dispatch(state.SetFilter{Filter: f})
	}
	pool.Stop()

	assert.Equal(t, filters, local.filters())
	assert.Equal(t, filters, remote.filters())
}

func TestPersister_UnknownActionDoesNotSave(t *testing.T) {
	pool := worker.NewPool(zap.NewNop(), 1, 0)
	pool.Start(context.Background())

	local := &recordingSink{}
	store := state.NewStore(model.DefaultDocument(), state.NewReducer(state.DefaultFactory()))
	New(pool, local, nil, zap.NewNop()).Attach(store)

	store.Dispatch(state.Unknown{Name: "DO_SOMETHING_ELSE"})
	pool.Stop()

	assert.Empty(t, local.filters())
}

func TestPersister_Detach(t *testing.T) {
	pool := worker.NewPool(zap.NewNop(), 1, 0)
	pool.Start(context.Background())

	local := &recordingSink{}
	store := state.NewStore(model.DefaultDocument(), state.NewReducer(state.DefaultFactory()))
	detach := New(pool, local, nil, zap.NewNop()).Attach(store)

	store.Dispatch(state.ToggleTheme{})
	detach()
	store.Dispatch(state.ToggleTheme{})
	pool.Stop()

	require.Len(t, local.docs, 1)
	assert.Equal(t, model.ThemeLight, local.docs[0].Theme)
}

func TestPersister_StoppedPoolDropsSaves(t *testing.T) {
	pool := worker.NewPool(zap.NewNop(), 1, 0)
	pool.Stop()

	local := &recordingSink{}
	p := New(pool, local, nil, zap.NewNop())

	assert.NotPanics(t, func() { p.Persist(model.DefaultDocument()) })
	assert.Empty(t, local.filters())
}

type hangingSink struct {
	release chan struct{}
}

func (s *hangingSink) Save(ctx context.Context, _ model.Document) {
	select {
	case <-s.release:
	case <-ctx.Done():
	}
}

func TestPersister_HangingSinkDoesNotBlockDispatch(t *testing.T) {
	pool := worker.NewPool(zap.NewNop(), 3, 0)
	pool.Start(context.Background())

	remote := &hangingSink{release: make(chan struct{})}
	store := state.NewStore(model.DefaultDocument(), state.NewReducer(state.DefaultFactory()))
	New(pool, &recordingSink{}, remote, zap.NewNop()).Attach(store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			store.Dispatch(state.ToggleTheme{})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked on a stalled sink")
	}
	assert.Equal(t, model.ThemeDark, store.Snapshot().Theme)

	close(remote.release)
	pool.Stop()
}

type deadlineSink struct {
	mu  sync.Mutex
	err error
}

func (s *deadlineSink) Save(ctx context.Context, _ model.Document) {
	<-ctx.Done()
	s.mu.Lock()
	s.err = ctx.Err()
	s.mu.Unlock()
}

func TestPersister_SaveHasDeadline(t *testing.T) {
	pool := worker.NewPool(zap.NewNop(), 1, 0)
	pool.Start(context.Background())

	sink := &deadlineSink{}
	p := New(pool, sink, nil, zap.NewNop())
	p.timeout = 20 * time.Millisecond

	p.Persist(model.DefaultDocument())
	pool.Stop()

	assert.ErrorIs(t, sink.err, context.DeadlineExceeded)
}
