package poa

import (
	"math"

	"github.com/jteutenberg/poacore/mutation"
)

// candidateVariants scans the consensus path for Deletion/Insertion/
// Substitution candidates (§4.2 "Candidate variants"). path is 0-indexed;
// spec positions are reported 0-indexed into the consensus string (the same
// indexing apply_mutations expects), consistent with path[k] spelling
// consensus[k].
func (g *Graph) candidateVariants(path []VertexID, scorer VariantScorer) []mutation.ScoredMutation {
	L := len(path)
	var out []mutation.ScoredMutation
	if L < 4 {
		return out
	}
	// idx ranges over path[idx], path[idx+1], path[idx+2], staying clear of
	// the two vertices nearest each end (spec's i in [2, |path|-2)).
	for idx := 1; idx <= L-4; idx++ {
		pi, pi1, pi2 := path[idx], path[idx+1], path[idx+2]

		if hasEdge(g, pi, pi2) {
			out = append(out, mutation.Mutation{Kind: mutation.Deletion, Position: idx + 1}.
				WithScore(-scorer(g, pi1)))
		}

		if best, ok := bestBridge(g, pi, pi1, noVertex, scorer); ok {
			out = append(out, mutation.Mutation{Kind: mutation.Insertion, Position: idx + 1, Base: g.nodes[best].Base}.
				WithScore(scorer(g, best)))
		}

		if best, ok := bestBridge(g, pi, pi2, pi1, scorer); ok {
			out = append(out, mutation.Mutation{Kind: mutation.Substitution, Position: idx + 1, Base: g.nodes[best].Base}.
				WithScore(scorer(g, best)))
		}
	}
	return out
}

func hasEdge(g *Graph, from, to VertexID) bool {
	for _, w := range g.nodes[from].out {
		if w == to {
			return true
		}
	}
	return false
}

// bestBridge returns the highest-scoring vertex (other than exclude) that is
// simultaneously a child of from and a parent of to.
func bestBridge(g *Graph, from, to, exclude VertexID, scorer VariantScorer) (VertexID, bool) {
	best := noVertex
	bestScore := math.Inf(-1)
	for _, w := range g.nodes[from].out {
		if w == exclude {
			continue
		}
		if isParentOf(g, w, to) {
			s := scorer(g, w)
			if best == noVertex || s > bestScore {
				best, bestScore = w, s
			}
		}
	}
	if best == noVertex {
		return noVertex, false
	}
	return best, true
}

func isParentOf(g *Graph, v, child VertexID) bool {
	for _, w := range g.nodes[v].out {
		if w == child {
			return true
		}
	}
	return false
}
