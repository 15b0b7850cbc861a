// Package puzzlefile loads declarative puzzle definitions from YAML. It is
// the bridge between the engine's index-based constraint types and puzzle
// files written by hand: a file names a slot count and a list of
// constraints, each given by a type tag and the index data that type
// requires.
//
// Malformed files are user input, not programming errors, so every
// validation failure is reported as an error rather than a panic.
package puzzlefile

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/trilogic/pkg/trilogic"
)

// File is the top-level YAML document.
type File struct {
	Slots       int    `yaml:"slots"`
	Constraints []Spec `yaml:"constraints"`
}

// Spec is one constraint entry. Type selects the constraint variant and
// decides which of the remaining fields are read:
//
//	fixed            index, value
//	implication      p, q
//	identical        first, second
//	exactly          n, indexes, value
//	one-if-any       one, any
//	at-least-one-if  p, candidates
//
// value defaults to true when omitted. name is optional; a descriptive
// default is derived from the type.
type Spec struct {
	Type       string `yaml:"type"`
	Name       string `yaml:"name"`
	Index      int    `yaml:"index"`
	Value      *bool  `yaml:"value"`
	P          int    `yaml:"p"`
	Q          int    `yaml:"q"`
	First      []int  `yaml:"first"`
	Second     []int  `yaml:"second"`
	N          int    `yaml:"n"`
	Indexes    []int  `yaml:"indexes"`
	One        int    `yaml:"one"`
	Any        []int  `yaml:"any"`
	Candidates []int  `yaml:"candidates"`
}

// Parse decodes a YAML puzzle definition and builds a Puzzle from it.
// Options are passed through to trilogic.NewPuzzle.
func Parse(data []byte, opts ...trilogic.Option) (*trilogic.Puzzle, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("puzzlefile: decoding: %w", err)
	}
	if file.Slots <= 0 {
		return nil, fmt.Errorf("puzzlefile: slots must be positive, got %d", file.Slots)
	}
	if len(file.Constraints) == 0 {
		return nil, fmt.Errorf("puzzlefile: no constraints defined")
	}

	puzzle := trilogic.NewPuzzle(file.Slots, opts...)
	for i, spec := range file.Constraints {
		c, err := build(spec, file.Slots)
		if err != nil {
			return nil, fmt.Errorf("puzzlefile: constraint %d: %w", i, err)
		}
		puzzle.Constrain(c)
	}
	return puzzle, nil
}

func build(spec Spec, slots int) (trilogic.Constraint, error) {
	name := spec.Name
	if name == "" {
		name = spec.Type
	}
	value := trilogic.True
	if spec.Value != nil && !*spec.Value {
		value = trilogic.False
	}

	switch spec.Type {
	case "fixed":
		if err := checkIndexes(slots, spec.Index); err != nil {
			return nil, err
		}
		return trilogic.NewFixed(name, spec.Index, value), nil

	case "implication":
		if err := checkIndexes(slots, spec.P, spec.Q); err != nil {
			return nil, err
		}
		return trilogic.NewImplication(name, spec.P, spec.Q), nil

	case "identical":
		if len(spec.First) != len(spec.Second) {
			return nil, fmt.Errorf("identical: first has %d indexes, second has %d",
				len(spec.First), len(spec.Second))
		}
		if len(spec.First) == 0 {
			return nil, fmt.Errorf("identical: no index pairs")
		}
		if err := checkIndexes(slots, append(spec.First, spec.Second...)...); err != nil {
			return nil, err
		}
		return trilogic.NewIdentical(name, spec.First, spec.Second), nil

	case "exactly":
		if spec.N < 0 {
			return nil, fmt.Errorf("exactly: n must be non-negative, got %d", spec.N)
		}
		if len(spec.Indexes) == 0 {
			return nil, fmt.Errorf("exactly: no indexes")
		}
		if err := checkIndexes(slots, spec.Indexes...); err != nil {
			return nil, err
		}
		if mapset.NewThreadUnsafeSet(spec.Indexes...).Cardinality() != len(spec.Indexes) {
			return nil, fmt.Errorf("exactly: duplicate indexes in %v", spec.Indexes)
		}
		return trilogic.NewExactlyNOf(name, spec.N, spec.Indexes, value), nil

	case "one-if-any":
		if len(spec.Any) == 0 {
			return nil, fmt.Errorf("one-if-any: empty candidate set")
		}
		if err := checkIndexes(slots, append([]int{spec.One}, spec.Any...)...); err != nil {
			return nil, err
		}
		return trilogic.NewOneIfAny(name, spec.One, spec.Any), nil

	case "at-least-one-if":
		if len(spec.Candidates) == 0 {
			return nil, fmt.Errorf("at-least-one-if: empty candidate set")
		}
		if err := checkIndexes(slots, append([]int{spec.P}, spec.Candidates...)...); err != nil {
			return nil, err
		}
		return trilogic.NewAtLeastOneIf(name, spec.P, spec.Candidates), nil

	default:
		return nil, fmt.Errorf("unknown constraint type %q", spec.Type)
	}
}

func checkIndexes(slots int, indexes ...int) error {
	for _, i := range indexes {
		if i < 0 || i >= slots {
			return fmt.Errorf("index %d out of range [0,%d)", i, slots)
		}
	}
	return nil
}
