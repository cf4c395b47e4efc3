package poa

import (
	"testing"

	"github.com/jteutenberg/poacore/align"
)

func buildGraph(t *testing.T, reads []string, mode align.Mode) (*Graph, *Consensus) {
	t.Helper()
	g, c, err := FindConsensus(reads, mode, DefaultMinCoverage, DefaultThreadParams)
	if err != nil {
		t.Fatalf("FindConsensus: %v", err)
	}
	return g, c
}

func TestConsensusScenarios(t *testing.T) {
	cases := []struct {
		name  string
		reads []string
		mode  align.Mode
		want  string
	}{
		{"S1", []string{"GGG"}, align.Global, "GGG"},
		{"S2", []string{"GGG", "TGGG"}, align.Global, "GGG"},
		{"S3", []string{"GGG", "GTG", "GTG"}, align.Global, "GTG"},
		{"S4", []string{"GGTGG", "GGTGG", "T"}, align.Semiglobal, "GGTGG"},
		{"S5", []string{"GGGGAAAA", "AAAATTTT", "TTTTCCCC", "CCCCAGGA"}, align.Semiglobal, "GGGGAAAATTTTCCCCAGGA"},
		{"S6", []string{
			"TTTACAGGATAGTCCAGT",
			"ACAGGATACCCCGTCCAGT",
			"ACAGGATAGTCCAGT",
			"TTTACAGGATAGTCCAGTCCCC",
			"TTTACAGGATTAGTCCAGT",
			"TTTACAGGATTAGGTCCCAGT",
			"TTTACAGGATAGTCCAGT",
		}, align.Global, "TTTACAGGATAGTCCAGT"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, cons := buildGraph(t, c.reads, c.mode)
			if cons.Sequence != c.want {
				t.Errorf("consensus = %q, want %q", cons.Sequence, c.want)
			}
		})
	}
}

func TestGraphAcyclicAfterThreading(t *testing.T) {
	g, _ := buildGraph(t, []string{"GGTGG", "GGTGG", "T", "GGTAG"}, align.Semiglobal)
	// topologicalOrder panics (via poaerr.Panic) on a cycle; reaching this
	// point without panicking is the acyclicity check.
	order := g.topologicalOrder()
	if len(order) != g.NumVertices() {
		t.Fatalf("topological order has %d vertices, want %d", len(order), g.NumVertices())
	}
}

func TestReadsConservation(t *testing.T) {
	reads := []string{"GGG", "GTG", "GTG"}
	g, _ := buildGraph(t, reads, align.Global)
	total := 0
	for _, n := range g.nodes {
		if n.ID == g.Enter || n.ID == g.Exit {
			continue
		}
		total += n.Reads
	}
	matchColumns := 0
	for _, r := range reads {
		matchColumns += len(r)
	}
	if total != matchColumns {
		t.Errorf("sum of vertex reads = %d, want %d (sum of read lengths)", total, matchColumns)
	}
}

func TestConsensusDeterminism(t *testing.T) {
	reads := []string{
		"TTTACAGGATAGTCCAGT",
		"ACAGGATACCCCGTCCAGT",
		"ACAGGATAGTCCAGT",
		"TTTACAGGATAGTCCAGTCCCC",
		"TTTACAGGATTAGTCCAGT",
		"TTTACAGGATTAGGTCCCAGT",
		"TTTACAGGATAGTCCAGT",
	}
	var first string
	for i := 0; i < 100; i++ {
		_, c := buildGraph(t, reads, align.Global)
		if i == 0 {
			first = c.Sequence
		} else if c.Sequence != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, c.Sequence, first)
		}
	}
}

func TestCandidateVariantsOnSubstitution(t *testing.T) {
	// A clean substitution branch: GGAGG vs GGCGG should propose a
	// substitution candidate at the middle column.
	_, cons := buildGraph(t, []string{"GGAGG", "GGAGG", "GGCGG"}, align.Global)
	found := false
	for _, m := range cons.CandidateMutations {
		if m.Kind.String() == "Substitution" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected at least one substitution candidate, got %+v", cons.CandidateMutations)
	}
}

func TestToGraphVizSmallBasic(t *testing.T) {
	g, _ := buildGraph(t, []string{"GGG"}, align.Global)
	dot := g.ToGraphViz(PlainNodes, nil)
	if dot[:len("digraph G {")] != "digraph G {" {
		t.Fatalf("unexpected dot preamble: %q", dot)
	}
	if dot[len(dot)-1] != '}' {
		t.Fatalf("dot output does not end with '}': %q", dot)
	}
}
