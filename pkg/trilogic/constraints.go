package trilogic

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Fixed forces one slot to one definite value. It propagates a puzzle's
// given clues: the first evaluation sets the slot, later evaluations are
// NoChange, and a candidate that already holds the opposite value is a
// Conflict.
type Fixed struct {
	name  string
	index int
	value Truth
}

// NewFixed creates a Fixed constraint. value must be definite.
func NewFixed(name string, index int, value Truth) *Fixed {
	if value == Unknown {
		panic("trilogic: Fixed value must be definite")
	}
	return &Fixed{name: name, index: index, value: value}
}

func (c *Fixed) Name() string { return c.name }

func (c *Fixed) Evaluate(s *Solution) Result {
	return s.Set(c.index, c.value)
}

// Implication encodes "if P then Q" over two slots. Only the forward
// direction and the contrapositive are enforced; the converse is
// intentionally not (Q being True says nothing about P).
type Implication struct {
	name string
	p, q int
}

// NewImplication creates an Implication constraint from slot p to slot q.
func NewImplication(name string, p, q int) *Implication {
	return &Implication{name: name, p: p, q: q}
}

func (c *Implication) Name() string { return c.name }

func (c *Implication) Evaluate(s *Solution) Result {
	p, q := s.Get(c.p), s.Get(c.q)
	switch {
	case p == True && q == False:
		return Conflict
	case p == True && q == Unknown:
		return s.Set(c.q, True)
	case q == False && p == Unknown:
		return s.Set(c.p, False)
	}
	return NoChange
}

// Identical constrains two parallel index lists slot-by-slot: the value at
// first[i] must equal the value at second[i]. A definite value on either
// side is adopted by an Unknown partner; a True/False mismatch is a
// Conflict.
type Identical struct {
	name   string
	first  []int
	second []int
}

// NewIdentical creates an Identical constraint over two parallel index
// lists. The lists must have equal length; a mismatch is a contract
// violation in the puzzle encoding and panics.
func NewIdentical(name string, first, second []int) *Identical {
	if len(first) != len(second) {
		panic(fmt.Sprintf("trilogic: Identical index lists differ in length (%d vs %d)", len(first), len(second)))
	}
	return &Identical{name: name, first: first, second: second}
}

func (c *Identical) Name() string { return c.name }

func (c *Identical) Evaluate(s *Solution) Result {
	result := NoChange
	for i := range c.first {
		a, b := s.Get(c.first[i]), s.Get(c.second[i])
		if (a == True && b == False) || (a == False && b == True) {
			return Conflict
		}
		if a == Unknown && b != Unknown {
			s.Set(c.first[i], b)
			result = Progress
		}
		if b == Unknown && a != Unknown {
			s.Set(c.second[i], a)
			result = Progress
		}
	}
	return result
}

// ExactlyNOf requires exactly n of the given indexes to hold value. Once
// the quota is met the remaining Unknowns are forced to the opposite
// value; once the quota can only be met by taking every remaining Unknown,
// they are all forced to value. Too many matches, or too few slots left to
// reach the quota, is a Conflict.
//
// This single variant encodes "exactly one of these N slots is True" style
// row/column/box/category rules.
type ExactlyNOf struct {
	name    string
	n       int
	indexes []int
	value   Truth
}

// NewExactlyNOf creates an ExactlyNOf constraint. value must be definite,
// n must be non-negative, and the index set must not contain duplicates
// (a duplicate would be double-counted and corrupt the quota).
func NewExactlyNOf(name string, n int, indexes []int, value Truth) *ExactlyNOf {
	if value == Unknown {
		panic("trilogic: ExactlyNOf value must be definite")
	}
	if n < 0 {
		panic(fmt.Sprintf("trilogic: ExactlyNOf count %d is negative", n))
	}
	if mapset.NewThreadUnsafeSet(indexes...).Cardinality() != len(indexes) {
		panic("trilogic: ExactlyNOf index set contains duplicates")
	}
	return &ExactlyNOf{name: name, n: n, indexes: indexes, value: value}
}

func (c *ExactlyNOf) Name() string { return c.name }

func (c *ExactlyNOf) Evaluate(s *Solution) Result {
	matches := s.Count(c.indexes, c.value)
	unknowns := s.Count(c.indexes, Unknown)
	if matches > c.n || unknowns < c.n-matches {
		return Conflict
	}
	if unknowns == 0 {
		return NoChange
	}
	if matches == c.n {
		// Quota met; everything still open is excluded.
		for _, i := range c.indexes {
			if s.Get(i) == Unknown {
				s.Set(i, c.value.Not())
			}
		}
		return Progress
	}
	if unknowns == c.n-matches {
		// Every remaining Unknown is required to reach the quota.
		for _, i := range c.indexes {
			if s.Get(i) == Unknown {
				s.Set(i, c.value)
			}
		}
		return Progress
	}
	return NoChange
}

// OneIfAny ties one designated slot to a candidate set: if every slot in
// the set is False the designated slot is forced False, and if the
// designated slot is True with exactly one candidate still Unknown (the
// rest False) that candidate is forced True. One of two interchangeable
// encodings of "adjacency" style puzzle rules; the other is AtLeastOneIf.
// A given puzzle should pick one encoding consistently — their propagation
// strength differs subtly.
type OneIfAny struct {
	name string
	one  int
	any  []int
}

// NewOneIfAny creates a OneIfAny constraint linking the designated slot
// one to the candidate set any.
func NewOneIfAny(name string, one int, any []int) *OneIfAny {
	return &OneIfAny{name: name, one: one, any: any}
}

func (c *OneIfAny) Name() string { return c.name }

func (c *OneIfAny) Evaluate(s *Solution) Result {
	falses := s.Count(c.any, False)
	if falses == len(c.any) {
		return s.Set(c.one, False)
	}
	if s.Get(c.one) == True {
		unknowns := s.Count(c.any, Unknown)
		if unknowns == 1 && falses+1 == len(c.any) {
			for _, i := range c.any {
				if s.Get(i) == Unknown {
					return s.Set(i, True)
				}
			}
		}
	}
	return NoChange
}

// AtLeastOneIf encodes "if P then at least one of the candidates": with P
// True and the candidate set exhausted (no True, no Unknown) the rule is
// violated; with P True and a single Unknown left it is forced True; with
// P Unknown and the set exhausted, P is forced False since nothing remains
// to satisfy the implication. It is slightly stronger than OneIfAny on the
// P side but does not force P True from the candidate side.
type AtLeastOneIf struct {
	name       string
	p          int
	candidates []int
}

// NewAtLeastOneIf creates an AtLeastOneIf constraint from slot p to the
// candidate set.
func NewAtLeastOneIf(name string, p int, candidates []int) *AtLeastOneIf {
	return &AtLeastOneIf{name: name, p: p, candidates: candidates}
}

func (c *AtLeastOneIf) Name() string { return c.name }

func (c *AtLeastOneIf) Evaluate(s *Solution) Result {
	if s.Count(c.candidates, True) > 0 {
		return NoChange
	}
	unknowns := s.Count(c.candidates, Unknown)
	switch s.Get(c.p) {
	case True:
		if unknowns == 0 {
			return Conflict
		}
		if unknowns == 1 {
			for _, i := range c.candidates {
				if s.Get(i) == Unknown {
					return s.Set(i, True)
				}
			}
		}
	case Unknown:
		if unknowns == 0 {
			return s.Set(c.p, False)
		}
	}
	return NoChange
}
