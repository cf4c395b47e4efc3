// Package mutation defines the Mutation/ScoredMutation types (§3.5) and the
// pure apply_mutations operation (§4.3) shared by the POA engine and the
// evaluator/integrator.
package mutation

import (
	"sort"

	"github.com/jteutenberg/poacore/poaerr"
	"github.com/jteutenberg/poacore/sequence"
)

// Kind tags a mutation's shape.
type Kind int

const (
	Insertion Kind = iota
	Deletion
	Substitution
)

func (k Kind) String() string {
	switch k {
	case Insertion:
		return "Insertion"
	case Deletion:
		return "Deletion"
	case Substitution:
		return "Substitution"
	default:
		return "Unknown"
	}
}

// Mutation is a single candidate edit against a template (§3.5). Base is
// only meaningful for Insertion and Substitution.
type Mutation struct {
	Kind     Kind
	Position int
	Base     byte
}

// ScoredMutation adds the Δ-likelihood (or POA node score, depending on the
// source) attached to a Mutation.
type ScoredMutation struct {
	Mutation
	Score float64
}

// Validate checks the OutOfDomain constraints from §7: position must be in
// [0,len(tpl)] for Insertion, [0,len(tpl)) for Deletion/Substitution, and
// Base (where applicable) must be one of A,C,G,T.
func (m Mutation) Validate(tplLen int) error {
	switch m.Kind {
	case Insertion:
		if m.Position < 0 || m.Position > tplLen {
			return poaerr.New(poaerr.OutOfDomain, "insertion position %d out of [0,%d]", m.Position, tplLen)
		}
		if !sequence.IsBase(m.Base) {
			return poaerr.New(poaerr.OutOfDomain, "insertion base %q not in {A,C,G,T}", m.Base)
		}
	case Deletion:
		if m.Position < 0 || m.Position >= tplLen {
			return poaerr.New(poaerr.OutOfDomain, "deletion position %d out of [0,%d)", m.Position, tplLen)
		}
	case Substitution:
		if m.Position < 0 || m.Position >= tplLen {
			return poaerr.New(poaerr.OutOfDomain, "substitution position %d out of [0,%d)", m.Position, tplLen)
		}
		if !sequence.IsBase(m.Base) {
			return poaerr.New(poaerr.OutOfDomain, "substitution base %q not in {A,C,G,T}", m.Base)
		}
	default:
		return poaerr.New(poaerr.InvalidInput, "unknown mutation kind %v", m.Kind)
	}
	return nil
}

// WithScore returns a ScoredMutation wrapping m.
func (m Mutation) WithScore(score float64) ScoredMutation {
	return ScoredMutation{Mutation: m, Score: score}
}

// Apply applies muts to template and returns the mutated template (§4.3
// "Mutation application semantics"). Positions refer to the original
// template; mutations are sorted by position and applied from the end
// toward the beginning so earlier positions stay valid. Idempotent on an
// empty mutation list (§8 property 8).
func Apply(template string, muts []Mutation) (string, error) {
	ordered := make([]Mutation, len(muts))
	copy(ordered, muts)
	for _, m := range ordered {
		if err := m.Validate(len(template)); err != nil {
			return "", err
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	out := []byte(template)
	for i := len(ordered) - 1; i >= 0; i-- {
		m := ordered[i]
		switch m.Kind {
		case Insertion:
			out = append(out[:m.Position], append([]byte{m.Base}, out[m.Position:]...)...)
		case Deletion:
			out = append(out[:m.Position], out[m.Position+1:]...)
		case Substitution:
			out[m.Position] = m.Base
		}
	}
	return string(out), nil
}

// AllMutations enumerates every Insertion/Deletion/Substitution mutation
// touching template positions in [start,end), plus the insertions at
// position end itself -- the exhaustive candidate set a polishing driver
// scores when it has no cheaper source of candidates (§7 supplemented,
// promoted from the original test suite's local Mutations() helper).
func AllMutations(template string, start, end int) []Mutation {
	const bases = "ACGT"
	result := make([]Mutation, 0, (end-start)*9+4)
	for i := start; i < end; i++ {
		for k := 0; k < len(bases); k++ {
			result = append(result, Mutation{Kind: Insertion, Position: i, Base: bases[k]})
		}
		result = append(result, Mutation{Kind: Deletion, Position: i})
		for k := 0; k < len(bases); k++ {
			if bases[k] != template[i] {
				result = append(result, Mutation{Kind: Substitution, Position: i, Base: bases[k]})
			}
		}
	}
	for k := 0; k < len(bases); k++ {
		result = append(result, Mutation{Kind: Insertion, Position: end, Base: bases[k]})
	}
	return result
}
