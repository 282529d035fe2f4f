// Package workload drives a progress bar from simulated, optionally
// concurrent, units of work.
package workload

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// maxChunks bounds the number of tasks a run is split into.
const maxChunks = 1000

// Progress is what a run reports to. *zafran.Bar satisfies it.
type Progress interface {
	Update(current uint64)
}

// WorkFunc processes the units [start, start+n). A nil WorkFunc does no
// work beyond pacing.
type WorkFunc func(ctx context.Context, start, n uint64) error

// Options configures a run.
type Options struct {
	Total       uint64
	Workers     int
	Interval    time.Duration // pause between chunks, shared by all workers
	ChunkSize   uint64        // units per task; 0 splits Total into at most maxChunks tasks
	Work        WorkFunc
	StopOnError bool
	Debug       bool
}

// Result summarises a finished run.
type Result struct {
	Done   uint64
	Failed int
}

// lockedProgress serialises calls into a Progress that is not safe for
// concurrent use and accumulates the units done.
type lockedProgress struct {
	mu   sync.Mutex
	p    Progress
	done uint64
}

func (l *lockedProgress) add(n uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.done += n
	if l.p != nil {
		l.p.Update(l.done)
	}
}

func (l *lockedProgress) total() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Run splits opts.Total into chunks and processes them on a pool of
// opts.Workers goroutines, advancing p after every completed chunk.
// Failed chunks are counted and skipped unless StopOnError is set.
func Run(ctx context.Context, p Progress, opts Options) (Result, error) {
	if opts.Total == 0 {
		return Result{}, fmt.Errorf("workload: total must be positive")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	chunk := opts.ChunkSize
	if chunk == 0 {
		chunk = (opts.Total-1)/maxChunks + 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return Result{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	lim := NewLimiter(opts.Interval)
	progress := &lockedProgress{p: p}
	var failed atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := uint64(0); start < opts.Total; {
		n := min(chunk, opts.Total-start)
		s := start
		start += n
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errCh := make(chan error, 1)
			if err := pool.Submit(func() {
				errCh <- runChunk(ctx, lim, opts.Work, s, n)
			}); err != nil {
				return fmt.Errorf("submit task: %w", err)
			}
			if err := <-errCh; err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if opts.StopOnError {
					return fmt.Errorf("units %d-%d: %w", s, s+n-1, err)
				}
				failed.Add(1)
				if opts.Debug {
					log.Printf("units %d-%d failed: %v", s, s+n-1, err)
				}
				return nil
			}
			progress.add(n)
			return nil
		})
		if ctx.Err() != nil {
			break
		}
	}

	err = g.Wait()
	res := Result{Done: progress.total(), Failed: int(failed.Load())}
	if opts.Debug {
		log.Printf("workload done: %d/%d units, %d failed chunk(s)", res.Done, opts.Total, res.Failed)
	}
	return res, err
}

// runChunk waits for its turn on the shared limiter, then does the work.
func runChunk(ctx context.Context, lim *rate.Limiter, work WorkFunc, start, n uint64) error {
	if err := lim.Wait(ctx); err != nil {
		return fmt.Errorf("pace: %w", err)
	}
	if work == nil {
		return nil
	}
	return work(ctx, start, n)
}
