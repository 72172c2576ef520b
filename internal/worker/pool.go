package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/justsurfingit/job-platform/internal/logger"
)

var (
	ErrQueueFull       = errors.New("worker queue is full")
	ErrPoolClosed      = errors.New("worker pool is closed")
	ErrShutdownTimeout = errors.New("worker pool shutdown timed out")
)

// Job is a unit of background work. Task receives the pool's context, which
// is cancelled only when a shutdown times out.
type Job struct {
	ID      string
	Task    func(ctx context.Context) error
	RetryOn func(error) bool
	OnDone  func(error)
}

type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64
	Queued    int
}

type Pool struct {
	workers    int
	maxRetries int
	backoff    time.Duration

	jobs   chan Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
	stats  Stats
}

func NewPool(workers, queueSize, maxRetries int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		maxRetries: maxRetries,
		backoff:    100 * time.Millisecond,
		jobs:       make(chan Job, queueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	logger.Info("WorkerPool", "started %d workers", p.workers)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.execute(id, job)
		}
	}
}

func (p *Pool) execute(workerID int, job Job) {
	var err error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			logger.Warn("WorkerPool", "worker #%d retry #%d for job %s", workerID, attempt, job.ID)
			if !p.sleep(p.backoff * time.Duration(attempt)) {
				err = p.ctx.Err()
				break
			}
		}

		err = job.Task(p.ctx)
		if err == nil {
			break
		}
		if job.RetryOn != nil && !job.RetryOn(err) {
			break
		}
	}

	p.mu.Lock()
	if err == nil {
		p.stats.Completed++
	} else {
		p.stats.Failed++
	}
	p.mu.Unlock()

	if err != nil {
		logger.Error("WorkerPool", "job "+job.ID+" failed", err)
	}
	if job.OnDone != nil {
		job.OnDone(err)
	}
}

func (p *Pool) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Submit enqueues without blocking and returns ErrQueueFull when the buffer
// is exhausted.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		p.stats.Submitted++
		return nil
	default:
		logger.Warn("WorkerPool", "queue full, job %s rejected", job.ID)
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for queued ones to drain. Workers
// still running after timeout are cancelled.
func (p *Pool) Shutdown(timeout time.Duration) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		logger.Info("WorkerPool", "all workers stopped")
		return nil
	case <-time.After(timeout):
		p.cancel()
		return ErrShutdownTimeout
	}
}

func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Queued = len(p.jobs)
	return s
}
