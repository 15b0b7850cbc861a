// Package trilogic provides a domain-agnostic constraint-satisfaction
// engine over fixed-size tables of three-valued unknowns. A puzzle is
// expressed as a slot count plus a list of declarative constraints over
// slot indices; the engine interleaves constraint propagation with
// systematic branching and collects every assignment of definite values
// that satisfies all constraints simultaneously.
//
// The engine has no knowledge of what a slot means. All puzzle semantics
// (Sudoku cells, Zebra-puzzle house/item pairs) are expressed purely as
// index sets handed to generic constraint types.
//
// Typical usage:
//
//	puzzle := trilogic.NewPuzzle(3)
//	puzzle.Constrain(trilogic.NewExactlyNOf("one of three", 1, []int{0, 1, 2}, trilogic.True))
//	solutions, err := puzzle.Solve(context.Background(), 0)
package trilogic

// Truth is a three-valued logic value. Every slot of a Solution starts
// Unknown and moves to True or False at most once.
type Truth int8

const (
	False   Truth = -1
	Unknown Truth = 0
	True    Truth = 1
)

// Not returns the negation: False and True swap, Unknown is a fixpoint.
func (t Truth) Not() Truth { return -t }

// String returns a human-readable representation of the truth value.
func (t Truth) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unknown"
	}
}

// Result reports the outcome of evaluating a constraint (or of a single
// Solution.Set call): Conflict when the current state violates the rule,
// Progress when at least one slot moved from Unknown to a definite value,
// NoChange otherwise. Conflict is ordinary control data consumed by the
// search loop, never an error.
type Result int8

const (
	Conflict Result = -1
	NoChange Result = 0
	Progress Result = 1
)

// String returns a human-readable representation of the result.
func (r Result) String() string {
	switch r {
	case Conflict:
		return "conflict"
	case Progress:
		return "progress"
	default:
		return "no change"
	}
}
