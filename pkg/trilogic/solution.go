package trilogic

import (
	"fmt"
	"strings"
)

// Solution is one candidate assignment: an ordered, fixed-length table of
// Truth values indexed 0..Len()-1. A fresh Solution is all Unknown. The
// table length never changes after construction, and a slot that has moved
// to a definite value never changes again — Set returns Conflict instead.
//
// Solutions do not share state. Clone produces a full copy, so the two
// tables can be mutated independently; the search engine relies on this
// when it branches a candidate into two children.
type Solution struct {
	table []Truth
}

// NewSolution creates a table of slots Unknown values.
// A negative slot count is a contract violation and panics.
func NewSolution(slots int) *Solution {
	if slots < 0 {
		panic(fmt.Sprintf("trilogic: invalid slot count %d", slots))
	}
	return &Solution{table: make([]Truth, slots)}
}

// Len returns the number of slots in the table.
func (s *Solution) Len() int { return len(s.table) }

// Get returns the current value of the slot at index.
// An out-of-range index is a contract violation and panics.
func (s *Solution) Get(index int) Truth {
	if index < 0 || index >= len(s.table) {
		panic(fmt.Sprintf("trilogic: index %d out of range [0,%d)", index, len(s.table)))
	}
	return s.table[index]
}

// Set writes a definite value to the slot at index and reports the
// three-way outcome every constraint composes into richer behavior:
//
//   - NoChange if the slot already holds value,
//   - Progress if the slot was Unknown (the slot is set),
//   - Conflict if the slot holds the opposite definite value (no mutation).
//
// Writing Unknown or an out-of-range index is a contract violation and
// panics: the puzzle encoding itself is inconsistent with the engine.
func (s *Solution) Set(index int, value Truth) Result {
	if index < 0 || index >= len(s.table) {
		panic(fmt.Sprintf("trilogic: index %d out of range [0,%d)", index, len(s.table)))
	}
	if value == Unknown {
		panic("trilogic: cannot set a slot to Unknown")
	}
	switch s.table[index] {
	case value:
		return NoChange
	case Unknown:
		s.table[index] = value
		return Progress
	default:
		return Conflict
	}
}

// Count returns how many of the given indexes currently hold value.
// Cardinality-style constraints build their bookkeeping on this.
func (s *Solution) Count(indexes []int, value Truth) int {
	n := 0
	for _, i := range indexes {
		if s.Get(i) == value {
			n++
		}
	}
	return n
}

// FirstUnknown returns the index of the first slot still Unknown, or
// Len() if every slot is definite. The sentinel keeps the branching
// tie-break deterministic: always the lowest Unknown index.
func (s *Solution) FirstUnknown() int {
	for i, t := range s.table {
		if t == Unknown {
			return i
		}
	}
	return len(s.table)
}

// Clone returns an independent full copy of the table.
func (s *Solution) Clone() *Solution {
	table := make([]Truth, len(s.table))
	copy(table, s.table)
	return &Solution{table: table}
}

// String renders the table compactly, one rune per slot:
// 'T' for True, 'F' for False, '?' for Unknown.
func (s *Solution) String() string {
	var b strings.Builder
	b.Grow(len(s.table))
	for _, t := range s.table {
		switch t {
		case True:
			b.WriteByte('T')
		case False:
			b.WriteByte('F')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
