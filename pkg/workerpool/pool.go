// Package workerpool runs fire-and-forget jobs on a fixed set of goroutines.
//
// The kernel uses it to hand order and account events to the message queue
// without holding up the service call that fired them:
//
//	pool := workerpool.New(2, 64)
//	defer pool.Close()
//
//	if err := pool.Submit(job); errors.Is(err, workerpool.ErrFull) {
//	    // backlog exhausted, drop or log
//	}
package workerpool

import (
	"errors"
	"sync"
)

var (
	// ErrFull is returned by Submit when every worker is busy and the
	// backlog is at capacity.
	ErrFull = errors.New("workerpool: backlog full")

	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("workerpool: closed")
)

// Pool is a bounded set of workers draining a job backlog.
type Pool struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan func()
	wg     sync.WaitGroup
	once   sync.Once
}

// New starts workers goroutines sharing a backlog of the given size.
// Non-positive values fall back to one worker and a backlog of twice the
// worker count.
func New(workers, backlog int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if backlog <= 0 {
		backlog = workers * 2
	}

	p := &Pool{jobs: make(chan func(), backlog)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p
}

// Submit queues job without blocking.
func (p *Pool) Submit(job func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrFull
	}
}

// Pending reports how many jobs are waiting for a worker.
func (p *Pool) Pending() int { return len(p.jobs) }

// Close stops intake, runs every job already queued and waits for the
// workers to exit. Repeated calls are no-ops.
func (p *Pool) Close() error {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
		p.wg.Wait()
	})
	return nil
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		run(job)
	}
}

// run keeps a panicking job from taking its worker down.
func run(job func()) {
	defer func() { _ = recover() }()
	job()
}
