package trilogic

import (
	"context"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solutionSet collapses solutions to their canonical string form so result
// sets can be compared regardless of discovery order.
func solutionSet(solutions []*Solution) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for _, s := range solutions {
		set.Add(s.String())
	}
	return set
}

// bruteForce enumerates every complete assignment and keeps those on which
// no constraint reports a Conflict — the engine's acceptance criterion,
// computed the slow way.
func bruteForce(slots int, constraints []Constraint) mapset.Set[string] {
	accepted := mapset.NewSet[string]()
	for bits := 0; bits < 1<<slots; bits++ {
		s := NewSolution(slots)
		for i := 0; i < slots; i++ {
			if bits&(1<<i) != 0 {
				s.Set(i, True)
			} else {
				s.Set(i, False)
			}
		}
		ok := true
		for _, c := range constraints {
			if c.Evaluate(s) == Conflict {
				ok = false
				break
			}
		}
		if ok {
			accepted.Add(s.String())
		}
	}
	return accepted
}

// countingTracer records how many events of each kind were observed.
type countingTracer struct {
	progress, conflict, prunes, guesses, accepts int
}

func (t *countingTracer) Progress(Constraint) { t.progress++ }
func (t *countingTracer) Conflict(Constraint) { t.conflict++ }
func (t *countingTracer) Prune()              { t.prunes++ }
func (t *countingTracer) Guess(int)           { t.guesses++ }
func (t *countingTracer) Accept(*Solution)    { t.accepts++ }

func TestSolveFixedAlone(t *testing.T) {
	// Scenario: one fixed slot, the other two range freely.
	puzzle := NewPuzzle(3)
	puzzle.Constrain(NewFixed("slot 1 is true", 1, True))

	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, solutions, 4)

	for _, s := range solutions {
		assert.Equal(t, True, s.Get(1))
	}
	expected := mapset.NewSet("TTT", "TTF", "FTT", "FTF")
	assert.True(t, expected.Equal(solutionSet(solutions)), "got %v", solutionSet(solutions))
}

func TestSolveExactlyOneOfThree(t *testing.T) {
	puzzle := NewPuzzle(3)
	puzzle.Constrain(NewExactlyNOf("one of three", 1, []int{0, 1, 2}, True))

	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, solutions, 3)

	for _, s := range solutions {
		assert.Equal(t, 1, s.Count([]int{0, 1, 2}, True))
	}
	expected := mapset.NewSet("TFF", "FTF", "FFT")
	assert.True(t, expected.Equal(solutionSet(solutions)))
}

func TestSolveContradictionPrunesWithoutBranching(t *testing.T) {
	tracer := &countingTracer{}
	puzzle := NewPuzzle(2, WithTracer(tracer))
	puzzle.Constrain(
		NewFixed("slot 0 is true", 0, True),
		NewImplication("0 implies 1", 0, 1),
		NewFixed("slot 1 is false", 1, False),
	)

	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, solutions, "an over-constrained puzzle yields an empty set, not an error")
	assert.Zero(t, tracer.guesses, "propagation must detect the contradiction before any branching")
	assert.Equal(t, 1, tracer.prunes)
}

func TestSolveEmptyPuzzle(t *testing.T) {
	// Zero slots: the initial candidate is already complete.
	puzzle := NewPuzzle(0)
	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, 0, solutions[0].Len())
}

func TestSolveMatchesBruteForce(t *testing.T) {
	constraints := []Constraint{
		NewFixed("given", 0, True),
		NewImplication("1 implies 2", 1, 2),
		NewExactlyNOf("two of the middle", 2, []int{2, 3, 4}, True),
		NewIdentical("tail pairs", []int{5, 6}, []int{7, 0}),
		NewOneIfAny("guard", 3, []int{5, 6}),
	}

	puzzle := NewPuzzle(8)
	puzzle.Constrain(constraints...)
	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)

	expected := bruteForce(8, constraints)
	got := solutionSet(solutions)
	assert.True(t, expected.Equal(got), "engine %v vs brute force %v", got, expected)
	assert.Equal(t, expected.Cardinality(), len(solutions), "no duplicate solutions")
}

func TestAcceptedSolutionsSatisfyAllConstraints(t *testing.T) {
	puzzle := NewPuzzle(5)
	puzzle.Constrain(
		NewExactlyNOf("two of five", 2, []int{0, 1, 2, 3, 4}, True),
		NewImplication("0 implies 4", 0, 4),
	)
	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	for _, s := range solutions {
		assert.Equal(t, s.Len(), s.FirstUnknown(), "accepted solutions are fully determined")
		for _, c := range puzzle.constraints {
			assert.Equal(t, NoChange, c.Evaluate(s),
				"constraint %q must hold on an accepted solution", c.Name())
		}
	}
}

func TestSolveIsRepeatable(t *testing.T) {
	puzzle := NewPuzzle(4)
	puzzle.Constrain(NewExactlyNOf("two of four", 2, []int{0, 1, 2, 3}, True))

	first, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)
	second, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].String(), second[i].String(),
			"Solve holds no mutable search state, so repeat runs are identical")
	}
}

func TestSolveLimit(t *testing.T) {
	puzzle := NewPuzzle(3)
	puzzle.Constrain(NewFixed("slot 1 is true", 1, True))

	solutions, err := puzzle.Solve(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, solutions, 2)
}

func TestSolveNodeBudget(t *testing.T) {
	// 16 unconstrained slots: far more than 5 candidates to explore.
	puzzle := NewPuzzle(16, WithNodeBudget(5))
	solutions, err := puzzle.Solve(context.Background(), 0)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Empty(t, solutions)
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	puzzle := NewPuzzle(8)
	solutions, err := puzzle.Solve(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, solutions)
}

func TestTracerObservesSearch(t *testing.T) {
	tracer := &countingTracer{}
	puzzle := NewPuzzle(3, WithTracer(tracer))
	puzzle.Constrain(NewExactlyNOf("one of three", 1, []int{0, 1, 2}, True))

	solutions, err := puzzle.Solve(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, len(solutions), tracer.accepts)
	assert.Positive(t, tracer.guesses)
	assert.Positive(t, tracer.progress)
}
