// Package polish implements the outer polishing loop (§4.4): repeatedly
// score every candidate mutation against an Integrator and apply the best
// one, until no candidate clears the improvement threshold.
package polish

import (
	"github.com/jteutenberg/poacore/mutation"
	"github.com/jteutenberg/poacore/util"
)

// Integrator is the subset of eval.Integrator (and its Mono/Multi variants)
// the polishing loop needs, kept narrow so callers can pass either flavour
// or a test double.
type Integrator interface {
	Template() string
	LL() float64
	LLWithMutation(mutation.Mutation) (float64, error)
	ApplyMutations([]mutation.Mutation) error
}

// Options bounds the polishing loop (§4.4, SPEC_FULL §8).
type Options struct {
	// ImprovementThreshold is the minimum LL delta a mutation must clear to
	// be applied. The spec's driver terminates once nothing clears it.
	ImprovementThreshold float64
	// MaxRounds bounds the number of apply-best iterations; zero means no
	// separate bound beyond convergence.
	MaxRounds int
	// Candidates, if non-nil, supplies the mutation set scored each round
	// (e.g. a POA consensus's CandidateMutations). If nil, every
	// Insertion/Deletion/Substitution touching the template is scored via
	// mutation.AllMutations -- exhaustive but only practical for short
	// templates.
	Candidates func(template string) []mutation.Mutation
}

// Result records what the loop did.
type Result struct {
	Template string
	Applied  []mutation.ScoredMutation
	Rounds   int
}

// Polish runs the outer loop: each round, score every candidate mutation's
// LL delta against the integrator's current state, and apply the single
// best one if it clears opts.ImprovementThreshold (§4.4's "implementer's
// choice" of applying one non-conflicting mutation per round, documented in
// DESIGN.md). Stops when no candidate improves, or MaxRounds is reached.
func Polish(ig Integrator, opts Options) (Result, error) {
	candidates := opts.Candidates
	if candidates == nil {
		candidates = func(tpl string) []mutation.Mutation {
			return mutation.AllMutations(tpl, 0, len(tpl))
		}
	}

	res := Result{Template: ig.Template()}
	for opts.MaxRounds == 0 || res.Rounds < opts.MaxRounds {
		base := ig.LL()
		scored := make([]mutation.ScoredMutation, 0, 16)
		for _, m := range candidates(ig.Template()) {
			ll, err := ig.LLWithMutation(m)
			if err != nil {
				continue // OutOfDomain/etc candidates are skipped, not fatal
			}
			scored = append(scored, m.WithScore(ll-base))
		}
		if len(scored) == 0 {
			break
		}
		ids := make([]int, len(scored))
		scores := make([]float64, len(scored))
		for i, s := range scored {
			ids[i] = i
			scores[i] = s.Score
		}
		util.SortByScoreDescending(ids, scores)
		best := scored[ids[0]]
		if best.Score <= opts.ImprovementThreshold {
			break
		}
		if err := ig.ApplyMutations([]mutation.Mutation{best.Mutation}); err != nil {
			return res, err
		}
		res.Applied = append(res.Applied, best)
		res.Rounds++
	}
	res.Template = ig.Template()
	return res, nil
}
