package trilogic

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gitrdm/trilogic/internal/parallel"
)

// SolveParallel explores the search space on a worker pool. Every stack
// item is an independent candidate and branching produces two fully
// independent copies, so candidates are handed to workers with no shared
// mutable state; only the accepted-solutions list is guarded.
//
// The result set is the same as Solve's, but the engine gives no ordering
// guarantee among solutions and a parallel schedule will generally differ
// from discovery order. limit > 0 stops the search soon after that many
// solutions have been recorded (never returning more than limit);
// workers <= 0 uses one worker per CPU core. The configured Tracer, if
// any, must be safe for concurrent use.
func (p *Puzzle) SolveParallel(ctx context.Context, workers, limit int) ([]*Solution, error) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	var (
		mu        sync.Mutex
		solutions []*Solution
		done      atomic.Bool
		nodes     atomic.Int64
		exhausted atomic.Bool
	)

	var explore func(candidate *Solution)
	explore = func(candidate *Solution) {
		if done.Load() || ctx.Err() != nil {
			return
		}
		if p.budget > 0 && nodes.Add(1) > int64(p.budget) {
			exhausted.Store(true)
			done.Store(true)
			return
		}

		result := Progress
		for result == Progress {
			result = p.apply(candidate)
		}

		if result == Conflict {
			p.tracer.Prune()
			return
		}

		first := candidate.FirstUnknown()
		if first == candidate.Len() {
			p.tracer.Accept(candidate)
			mu.Lock()
			if limit <= 0 || len(solutions) < limit {
				solutions = append(solutions, candidate)
				if limit > 0 && len(solutions) >= limit {
					done.Store(true)
				}
			}
			mu.Unlock()
			return
		}

		p.tracer.Guess(first)
		no := candidate.Clone()
		no.Set(first, False)
		candidate.Set(first, True)
		pool.Submit(func() { explore(no) })
		pool.Submit(func() { explore(candidate) })
	}

	pool.Submit(func() { explore(NewSolution(p.slots)) })
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return solutions, err
	}
	if exhausted.Load() {
		return solutions, ErrBudgetExceeded
	}
	return solutions, nil
}
