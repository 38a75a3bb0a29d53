package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Job is a unit of work run by a pool worker.
type Job func(ctx context.Context)

var (
	ErrStopped   = errors.New("worker pool stopped")
	ErrQueueFull = errors.New("worker queue full")
)

// DefaultQueueSize is the per-worker buffer used when NewPool gets zero.
const DefaultQueueSize = 64

// Pool runs jobs on a fixed set of workers. Jobs that share a key always land
// on the same worker, so they run one at a time in submission order.
type Pool struct {
	logger *zap.Logger
	count  int
	queues []chan Job
	wg     sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

func NewPool(logger *zap.Logger, count, queueSize int) *Pool {
	if count < 1 {
		count = 1
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}

	queues := make([]chan Job, count)
	for i := range queues {
		queues[i] = make(chan Job, queueSize)
	}

	return &Pool{
		logger: logger,
		count:  count,
		queues: queues,
	}
}

func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true

	p.logger.Info("Starting worker pool", zap.Int("workers", p.count))

	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Submit queues job on the worker owning key. It blocks while that queue is
// full and returns false once the pool is stopped.
func (p *Pool) Submit(key string, job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}

	p.queues[p.slot(key)] <- job
	return true
}

// TrySubmit is Submit without the wait: a full queue returns ErrQueueFull
// and the job is not run.
func (p *Pool) TrySubmit(key string, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}

	select {
	case p.queues[p.slot(key)] <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new jobs, runs everything already queued and waits for the
// workers to exit.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	started := p.started
	for _, q := range p.queues {
		close(q)
	}
	p.mu.Unlock()

	if !started {
		return
	}

	p.logger.Info("Stopping worker pool...")
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

func (p *Pool) slot(key string) int {
	return int(xxhash.Sum64String(key) % uint64(p.count))
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for job := range p.queues[id] {
		p.run(ctx, id, job)
	}
}

func (p *Pool) run(ctx context.Context, id int, job Job) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("job panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()

	job(ctx)

	p.logger.Debug("job done", zap.Int("worker", id), zap.Duration("took", time.Since(start)))
}
