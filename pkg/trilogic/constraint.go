package trilogic

// Constraint is a named predicate-with-inference over a fixed subset of a
// Solution's indices. Implementations are immutable after construction;
// all mutable state lives in the Solution they evaluate.
//
// Evaluate inspects the candidate's slots and may write a slot only when
// the current state of its referenced slots logically forces that slot's
// value under the constraint's rule. It must report Conflict whenever the
// current state already violates the rule, regardless of remaining
// Unknowns, and must never guess. Evaluating the same unchanged candidate
// twice yields NoChange the second time.
//
// The provided variants (Fixed, Implication, Identical, ExactlyNOf,
// OneIfAny, AtLeastOneIf) are an open set: a caller adds a new constraint
// kind by implementing this interface against the Solution methods — the
// search engine never needs to change.
type Constraint interface {
	// Name returns a human-readable label used only for diagnostics.
	Name() string

	// Evaluate checks the candidate against the rule and applies any
	// forced inferences, reporting the strongest outcome.
	Evaluate(s *Solution) Result
}
