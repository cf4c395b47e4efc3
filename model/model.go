// Package model holds the per-template error model: a table of emission and
// transition log-probabilities keyed by a short sequence context and the
// read's signal-to-noise ratio, handed by reference into the eval package so
// many reads can share one table without copying it.
package model

import (
	"math"

	"github.com/jteutenberg/poacore/poaerr"
)

// Move identifies which HMM transition a base was produced under.
type Move int

const (
	MoveMatch Move = iota
	MoveBranch
	MoveStick
	MoveDeletion
	MoveMerge
)

// SNR carries the per-channel signal-to-noise ratios a read was called with,
// used to select which bucket of the model's table to read from.
type SNR struct {
	A, C, G, T float64
}

// Bucket buckets an SNR value into one of a small number of discrete bins.
// The original PacBio arrow/quiver models interpolate continuously; this
// table keeps three bins (low/mid/high), enough to exercise SNR-dependent
// scoring without reproducing proprietary interpolation code.
func (s SNR) Bucket(base byte) int {
	var v float64
	switch base {
	case 'A':
		v = s.A
	case 'C':
		v = s.C
	case 'G':
		v = s.G
	case 'T':
		v = s.T
	default:
		return 0
	}
	switch {
	case v < 6:
		return 0
	case v < 10:
		return 1
	default:
		return 2
	}
}

// Model is the capability an evaluator needs from an error model: the
// log-probability of emitting a base in some template context, and the
// log-probability of the move that produced it. Context is the template
// sequence in a small window around the position under consideration; models
// are free to use as much or as little of it as they need.
type Model interface {
	// Name reports the model's identifier, e.g. "P6/C4".
	Name() string
	// EmissionLogProb is the log-probability of observing readBase given
	// templateContext (the template's local neighborhood) and snr.
	EmissionLogProb(templateContext string, readBase byte, snr SNR) float64
	// TransitionLogProb is the log-probability of move occurring at
	// templateContext under snr.
	TransitionLogProb(templateContext string, move Move, snr SNR) float64
}

// ContextWidth is the number of template bases either side of a position
// that Evaluator passes as context to a Model.
const ContextWidth = 2

// registry of built-in models, looked up by name the way a Read's ModelID
// names one without needing a file on disk.
var registry = map[string]Model{}

func register(m Model) { registry[m.Name()] = m }

// Lookup resolves a model identifier (as carried on sequence.Read.ModelID)
// to a Model. Returns an Unsupported error for an unknown name.
func Lookup(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return nil, poaerr.New(poaerr.Unsupported, "model: unknown model id %q", name)
	}
	return m, nil
}

func init() {
	register(NewBuiltinP6C4())
}

// builtinP6C4 is a small deterministic synthetic table named after PacBio's
// real (proprietary, untrained-here) P6/C4 chemistry model. It is not fit to
// real sequencing data; it exists so the eval package's invariants (mutation
// equivalence, idempotence, SNR-dependence) can be exercised without
// reproducing licensed parameters.
type builtinP6C4 struct {
	matchLogProb    [3]float64 // indexed by SNR bucket
	mismatchLogProb [3]float64
	insertLogProb   [3]float64
	deleteLogProb   [3]float64
}

// NewBuiltinP6C4 constructs the synthetic stand-in model.
func NewBuiltinP6C4() Model {
	return &builtinP6C4{
		matchLogProb:    [3]float64{math.Log(0.90), math.Log(0.93), math.Log(0.96)},
		mismatchLogProb: [3]float64{math.Log(0.03), math.Log(0.02), math.Log(0.01)},
		insertLogProb:   [3]float64{math.Log(0.04), math.Log(0.03), math.Log(0.02)},
		deleteLogProb:   [3]float64{math.Log(0.03), math.Log(0.02), math.Log(0.01)},
	}
}

func (m *builtinP6C4) Name() string { return "P6/C4" }

func (m *builtinP6C4) EmissionLogProb(templateContext string, readBase byte, snr SNR) float64 {
	bucket := snr.Bucket(readBase)
	if len(templateContext) == 0 {
		return m.insertLogProb[bucket]
	}
	mid := len(templateContext) / 2
	if templateContext[mid] == readBase {
		return m.matchLogProb[bucket]
	}
	return m.mismatchLogProb[bucket]
}

func (m *builtinP6C4) TransitionLogProb(templateContext string, move Move, snr SNR) float64 {
	bucket := 1
	if len(templateContext) > 0 {
		bucket = snr.Bucket(templateContext[len(templateContext)/2])
	}
	switch move {
	case MoveMatch:
		return m.matchLogProb[bucket]
	case MoveBranch, MoveStick:
		return m.insertLogProb[bucket]
	case MoveDeletion, MoveMerge:
		return m.deleteLogProb[bucket]
	default:
		return math.Inf(-1)
	}
}
