package workers

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/utils"
)

// ErrHashPoolStopped is returned by [HashPool.Verify] and [HashPool.Hash]
// when the pool has been stopped. Requests still in flight during shutdown
// observe this instead of panicking.
var ErrHashPoolStopped = errors.New("hash pool is stopped")

// HashPool is a bounded pool of goroutines that runs bcrypt operations.
//
// Bcrypt is CPU-bound and deliberately slow; running it inline on a request
// goroutine lets a burst of logins monopolise the scheduler. The pool caps
// hashing concurrency at its size while callers await results without
// holding any lock, so sibling requests keep being served.
type HashPool struct {
	size int
	jobs chan func()
	done chan struct{}

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewHashPool constructs a pool with the given number of workers.
// A non-positive size defaults to the number of CPUs.
func NewHashPool(size int, log *logger.Logger) *HashPool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &HashPool{
		size:   size,
		jobs:   make(chan func(), size*2),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Run starts the pool's worker goroutines. Implements [Worker].
func (p *HashPool) Run() {
	p.logger.Info().Int("workers", p.size).Msg("starting hash worker pool")

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job := <-p.jobs:
					job()
				case <-p.done:
					return
				}
			}
		}()
	}
}

// Stop signals the workers to exit and waits for them. A comparison already
// running finishes; submissions queued or arriving afterwards observe
// [ErrHashPoolStopped]. Implements [Worker].
func (p *HashPool) Stop() {
	close(p.done)
	p.wg.Wait()
	p.logger.Info().Msg("hash worker pool stopped")
}

// Verify compares a plain-text password with a stored bcrypt hash on one of
// the pool's workers and reports whether they match.
//
// If ctx is cancelled before a worker picks the job up, or before the
// comparison completes, ctx.Err() is returned and the result (if the job was
// already running) is discarded. A pool that stops while the call is in
// flight returns [ErrHashPoolStopped] the same way.
func (p *HashPool) Verify(ctx context.Context, plain, hashed string) (bool, error) {
	result := make(chan bool, 1)

	job := func() {
		result <- utils.VerifyPassword(plain, hashed)
	}

	select {
	case p.jobs <- job:
	case <-p.done:
		return false, ErrHashPoolStopped
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case match := <-result:
		return match, nil
	case <-p.done:
		return false, ErrHashPoolStopped
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// hashResult carries the outcome of a pooled hash job.
type hashResult struct {
	hash string
	err  error
}

// Hash produces a bcrypt hash of the given password on one of the pool's
// workers. Cancellation and shutdown semantics match [HashPool.Verify].
func (p *HashPool) Hash(ctx context.Context, password string) (string, error) {
	result := make(chan hashResult, 1)

	job := func() {
		hash, err := utils.HashPassword(password)
		result <- hashResult{hash: hash, err: err}
	}

	select {
	case p.jobs <- job:
	case <-p.done:
		return "", ErrHashPoolStopped
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case res := <-result:
		return res.hash, res.err
	case <-p.done:
		return "", ErrHashPoolStopped
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
