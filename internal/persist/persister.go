// Package persist writes every store transition to the local and remote sinks.
package persist

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/state"
	"github.com/BuzzLyutic/kanban-board/internal/worker"
)

const (
	LocalKey  = "local"
	RemoteKey = "remote"
)

// Sink saves a document and handles its own failures.
type Sink interface {
	Save(ctx context.Context, doc model.Document)
}

// SaveTimeout bounds a single save.
const SaveTimeout = 10 * time.Second

// Submitter queues keyed jobs without waiting.
type Submitter interface {
	TrySubmit(key string, job worker.Job) error
}

// Persister runs inside Dispatch, so it never waits on a sink: when a
// sink's queue is full the save is dropped and logged.
type Persister struct {
	jobs    Submitter
	local   Sink
	remote  Sink
	logger  *zap.Logger
	timeout time.Duration
}

// New builds a Persister. A nil sink is skipped.
func New(jobs Submitter, local, remote Sink, logger *zap.Logger) *Persister {
	return &Persister{jobs: jobs, local: local, remote: remote, logger: logger, timeout: SaveTimeout}
}

// Attach subscribes to store and returns the unsubscribe func.
func (p *Persister) Attach(store *state.Store) func() {
	return store.Subscribe(p.Persist)
}

// Persist queues one save per configured sink.
func (p *Persister) Persist(doc model.Document) {
	p.submit(LocalKey, p.local, doc)
	p.submit(RemoteKey, p.remote, doc)
}

func (p *Persister) submit(key string, sink Sink, doc model.Document) {
	if sink == nil {
		return
	}
	err := p.jobs.TrySubmit(key, func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		sink.Save(ctx, doc)
	})
	if err != nil {
		p.logger.Warn("save dropped", zap.String("sink", key), zap.Error(err))
	}
}
