package poa

import (
	"math"

	"github.com/jteutenberg/poacore/align"
	"github.com/jteutenberg/poacore/mutation"
)

// Consensus is the result of extracting the best-supported path through a
// graph (§4.2 "Consensus path" / §6 PoaConsensus::find_consensus).
type Consensus struct {
	Sequence          string
	Path              []VertexID
	CandidateMutations []mutation.ScoredMutation
}

// DefaultMinCoverage is used when a caller does not supply one.
const DefaultMinCoverage = 1

// FindConsensus threads every read into a fresh graph under mode, then
// extracts the highest-scoring path and its candidate variants. It is the
// top-level driver exposed to collaborators (§6).
func FindConsensus(reads []string, mode align.Mode, minCoverage int, params ThreadParams) (*Graph, *Consensus, error) {
	g := NewGraph()
	for _, r := range reads {
		if err := g.ThreadRead(r, mode, params); err != nil {
			return nil, nil, err
		}
	}
	c, err := g.Consensus(mode, minCoverage, nil)
	if err != nil {
		return nil, nil, err
	}
	return g, c, nil
}

// VariantScorer assigns a score to a candidate vertex discovered while
// scanning for variants against the consensus path. The default reproduces
// the original's node-absolute-score behaviour (§9 "Candidate variants (open
// question)"); callers that want a delta-against-consensus scoring can
// supply their own.
type VariantScorer func(g *Graph, v VertexID) float64

// AbsoluteNodeScore is the default VariantScorer: a candidate's score is its
// own node score, not a difference against the consensus vertex it would
// replace. Preserved for compatibility per the spec's documented open
// question.
func AbsoluteNodeScore(g *Graph, v VertexID) float64 { return g.nodes[v].Score }

// Consensus runs the consensus-path DP (§4.2 steps 1-5) and then enumerates
// candidate variants (§4.2 "Candidate variants") against the resulting path.
// scorer may be nil, in which case AbsoluteNodeScore is used.
func (g *Graph) Consensus(mode align.Mode, minCoverage int, scorer VariantScorer) (*Consensus, error) {
	if scorer == nil {
		scorer = AbsoluteNodeScore
	}
	order := g.topologicalOrder()
	N := g.reads

	for _, v := range order {
		if v == g.Enter || v == g.Exit {
			continue
		}
		n := g.nodes[v]
		if mode == align.Global {
			n.Score = 2*float64(n.Reads) - float64(N) - 0.0001
		} else {
			cov := n.SpanningReads
			if cov < minCoverage {
				cov = minCoverage
			}
			n.Score = 2*float64(n.Reads) - float64(cov) - 0.0001
		}
	}

	for _, v := range order {
		n := g.nodes[v]
		n.bestPrev = noVertex
		if v == g.Enter {
			n.ReachingScore = 0
			continue
		}
		best := math.Inf(-1)
		bestPrev := noVertex
		for _, u := range n.in {
			s := g.nodes[u].ReachingScore
			if s > best {
				best, bestPrev = s, u
			}
		}
		if bestPrev == noVertex {
			best = 0
		}
		n.ReachingScore = best + n.Score
		n.bestPrev = bestPrev
	}
	// Enter/Exit carry no base score; restore their 0 contribution.
	g.nodes[g.Enter].Score = 0
	g.nodes[g.Exit].Score = 0

	best := math.Inf(-1)
	var bestVertex VertexID = noVertex
	for _, v := range order {
		if v == g.Enter {
			continue
		}
		if g.nodes[v].ReachingScore > best {
			best, bestVertex = g.nodes[v].ReachingScore, v
		}
	}

	var path []VertexID
	for v := bestVertex; v != noVertex; v = g.nodes[v].bestPrev {
		if v != g.Enter && v != g.Exit {
			path = append([]VertexID{v}, path...)
		}
	}

	seq := make([]byte, len(path))
	for i, v := range path {
		seq[i] = g.nodes[v].Base
	}

	c := &Consensus{Sequence: string(seq), Path: path}
	c.CandidateMutations = g.candidateVariants(path, scorer)
	return c, nil
}
