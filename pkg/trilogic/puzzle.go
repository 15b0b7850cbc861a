package trilogic

import (
	"context"
	"errors"
	"fmt"
)

// ErrBudgetExceeded is returned by Solve and SolveParallel when the node
// budget configured with WithNodeBudget runs out before the search space
// is exhausted. The solutions found so far are returned alongside it; the
// caller must treat the overall answer as unknown.
var ErrBudgetExceeded = errors.New("trilogic: node budget exceeded")

// Puzzle owns a slot count and an ordered collection of constraints, and
// drives the propagate-then-branch search over a backtracking stack.
//
// A Puzzle holds no mutable search state: Solve may be called repeatedly
// (or concurrently) and produces identical results each time. Constraint
// registration order affects only diagnostic trace order, never the
// result, since propagation always runs to fixpoint.
//
// Typical usage:
//
//	puzzle := trilogic.NewPuzzle(125)
//	puzzle.Constrain(trilogic.NewFixed("milk in the middle house", idx, trilogic.True))
//	// ... more constraints ...
//	solutions, err := puzzle.Solve(ctx, 0)
type Puzzle struct {
	slots       int
	constraints []Constraint
	tracer      Tracer
	budget      int
}

// Option configures a Puzzle at construction time.
type Option func(*Puzzle)

// WithTracer installs an observer for propagation and branch events.
func WithTracer(t Tracer) Option {
	return func(p *Puzzle) { p.tracer = t }
}

// WithNodeBudget bounds the search to at most n candidates taken off the
// stack. The core algorithm has no suspension points, so a caller wanting
// bounded search time imposes a node budget and treats ErrBudgetExceeded
// as "unknown". n <= 0 means unbounded.
func WithNodeBudget(n int) Option {
	return func(p *Puzzle) { p.budget = n }
}

// NewPuzzle creates a puzzle whose candidates have the given number of
// slots. The slot count is fixed for the puzzle's lifetime; a negative
// count is a contract violation and panics.
func NewPuzzle(slots int, opts ...Option) *Puzzle {
	if slots < 0 {
		panic(fmt.Sprintf("trilogic: invalid slot count %d", slots))
	}
	p := &Puzzle{slots: slots, tracer: NopTracer{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Slots returns the table length of every candidate this puzzle creates.
func (p *Puzzle) Slots() int { return p.slots }

// Constrain registers constraints. Registration order only affects the
// order of diagnostic trace events.
func (p *Puzzle) Constrain(cs ...Constraint) {
	p.constraints = append(p.constraints, cs...)
}

// Solve explores the full search space and returns every fully determined
// Solution that satisfies all registered constraints, in discovery order.
// An over-constrained puzzle yields an empty slice, an under-constrained
// one yields several solutions; neither is an error.
//
// limit > 0 stops the search after that many solutions; limit <= 0 returns
// all of them. Cancelling ctx returns the solutions found so far together
// with ctx.Err().
func (p *Puzzle) Solve(ctx context.Context, limit int) ([]*Solution, error) {
	var solutions []*Solution
	stack := []*Solution{NewSolution(p.slots)}
	nodes := 0
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return solutions, ctx.Err()
		default:
		}
		nodes++
		if p.budget > 0 && nodes > p.budget {
			return solutions, ErrBudgetExceeded
		}

		candidate := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Deduce as much as we can.
		result := Progress
		for result == Progress {
			result = p.apply(candidate)
		}

		if result == Conflict {
			// Dead end.
			p.tracer.Prune()
			continue
		}

		first := candidate.FirstUnknown()
		if first == candidate.Len() {
			// No Unknowns left: the candidate is an actual solution.
			p.tracer.Accept(candidate)
			solutions = append(solutions, candidate)
			if limit > 0 && len(solutions) >= limit {
				return solutions, nil
			}
			continue
		}

		// Replace the candidate with two guesses; True is explored first.
		p.tracer.Guess(first)
		no := candidate.Clone()
		no.Set(first, False)
		candidate.Set(first, True)
		stack = append(stack, no, candidate)
	}
	return solutions, nil
}

// apply runs one full pass over the registered constraints, accumulating
// the strongest outcome. Conflict short-circuits the pass.
func (p *Puzzle) apply(candidate *Solution) Result {
	result := NoChange
	for _, c := range p.constraints {
		switch c.Evaluate(candidate) {
		case Conflict:
			p.tracer.Conflict(c)
			return Conflict
		case Progress:
			p.tracer.Progress(c)
			result = Progress
		}
	}
	return result
}
