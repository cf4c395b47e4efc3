package model

import (
	"math"
	"testing"

	"github.com/jteutenberg/poacore/poaerr"
)

func TestLookupBuiltin(t *testing.T) {
	m, err := Lookup("P6/C4")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if m.Name() != "P6/C4" {
		t.Errorf("Name() = %q, want P6/C4", m.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-model")
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if k, _ := poaerr.KindOf(err); k != poaerr.Unsupported {
		t.Errorf("kind = %v, want Unsupported", k)
	}
}

func TestEmissionLogProbMatchBeatsMismatch(t *testing.T) {
	m, _ := Lookup("P6/C4")
	snr := SNR{A: 10, C: 10, G: 10, T: 10}
	match := m.EmissionLogProb("AAGAA", 'G', snr)
	mismatch := m.EmissionLogProb("AAGAA", 'T', snr)
	if match <= mismatch {
		t.Errorf("match logprob %v should exceed mismatch logprob %v", match, mismatch)
	}
}

func TestSNRBucketMonotonic(t *testing.T) {
	snr := SNR{A: 3, C: 8, G: 15, T: 8}
	if snr.Bucket('A') >= snr.Bucket('C') {
		t.Error("low SNR channel should bucket below mid")
	}
	if snr.Bucket('C') >= snr.Bucket('G') {
		t.Error("mid SNR channel should bucket below high")
	}
}

func TestTransitionLogProbFinite(t *testing.T) {
	m, _ := Lookup("P6/C4")
	snr := SNR{A: 10, C: 10, G: 10, T: 10}
	for _, mv := range []Move{MoveMatch, MoveBranch, MoveStick, MoveDeletion, MoveMerge} {
		lp := m.TransitionLogProb("AACGT", mv, snr)
		if math.IsInf(lp, -1) || math.IsNaN(lp) {
			t.Errorf("TransitionLogProb(%v) = %v, want finite", mv, lp)
		}
	}
}
