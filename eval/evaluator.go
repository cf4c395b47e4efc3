// Package eval implements the probabilistic consensus core: per-read
// forward/backward evaluators and the Mono-/MultiMolecularIntegrator that
// aggregate them against a shared template, supporting cheap mutation
// scoring and in-place template mutation.
package eval

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/jteutenberg/poacore/model"
	"github.com/jteutenberg/poacore/poaerr"
)

// Prec is the numeric tolerance for cross-path and mutation-equivalence
// comparisons, per the log-likelihood numeric contract.
const Prec = 1e-3

// Evaluator holds a single read's forward (alpha) and backward (beta)
// matrices against a template window, each of shape
// (len(template)+1) x (len(read)+1) in natural-log probabilities.
type Evaluator struct {
	template string
	read     string
	model    model.Model
	snr      model.SNR
	alpha    *mat.Dense
	beta     *mat.Dense
}

func newEvaluator(templateWindow, read string, m model.Model, snr model.SNR) (*Evaluator, error) {
	if len(read) == 0 {
		return nil, poaerr.New(poaerr.InvalidInput, "eval: empty read")
	}
	e := &Evaluator{template: templateWindow, read: read, model: m, snr: snr}
	e.alpha = forward(templateWindow, read, m, snr)
	e.beta = backward(templateWindow, read, m, snr)
	return e, nil
}

// context returns the template neighborhood around the base immediately
// preceding prefix length i (i.e. template[i-1]), the model's context key
// for a transition or emission ending at row i.
func context(tpl string, i int) string {
	if i <= 0 {
		return ""
	}
	pos := i - 1
	lo := pos - model.ContextWidth
	if lo < 0 {
		lo = 0
	}
	hi := pos + model.ContextWidth + 1
	if hi > len(tpl) {
		hi = len(tpl)
	}
	return tpl[lo:hi]
}

func forward(tpl, read string, m model.Model, snr model.SNR) *mat.Dense {
	T, R := len(tpl), len(read)
	a := mat.NewDense(T+1, R+1, nil)
	terms := make([]float64, 0, 3)
	for i := 0; i <= T; i++ {
		for j := 0; j <= R; j++ {
			if i == 0 && j == 0 {
				a.Set(0, 0, 0)
				continue
			}
			terms = terms[:0]
			if i > 0 && j > 0 {
				emit := m.EmissionLogProb(context(tpl, i), read[j-1], snr)
				terms = append(terms, a.At(i-1, j-1)+emit)
			}
			if j > 0 {
				ins := m.TransitionLogProb(context(tpl, i), model.MoveStick, snr)
				terms = append(terms, a.At(i, j-1)+ins)
			}
			if i > 0 {
				del := m.TransitionLogProb(context(tpl, i), model.MoveDeletion, snr)
				terms = append(terms, a.At(i-1, j)+del)
			}
			a.Set(i, j, logSumExpOrNegInf(terms))
		}
	}
	return a
}

func backward(tpl, read string, m model.Model, snr model.SNR) *mat.Dense {
	T, R := len(tpl), len(read)
	b := mat.NewDense(T+1, R+1, nil)
	terms := make([]float64, 0, 3)
	for i := T; i >= 0; i-- {
		for j := R; j >= 0; j-- {
			if i == T && j == R {
				b.Set(i, j, 0)
				continue
			}
			terms = terms[:0]
			if i < T && j < R {
				emit := m.EmissionLogProb(context(tpl, i+1), read[j], snr)
				terms = append(terms, b.At(i+1, j+1)+emit)
			}
			if j < R {
				ins := m.TransitionLogProb(context(tpl, i), model.MoveStick, snr)
				terms = append(terms, b.At(i, j+1)+ins)
			}
			if i < T {
				del := m.TransitionLogProb(context(tpl, i+1), model.MoveDeletion, snr)
				terms = append(terms, b.At(i+1, j)+del)
			}
			b.Set(i, j, logSumExpOrNegInf(terms))
		}
	}
	return b
}

func logSumExpOrNegInf(terms []float64) float64 {
	if len(terms) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(terms)
}

// LL returns the evaluator's total log-likelihood, alpha at the final cell
// (len(template), len(read)) -- equal, within Prec, to LLAlongDiagonal of
// any other template row.
func (e *Evaluator) LL() float64 {
	return e.LLAlongDiagonal(len(e.template))
}

// LLAlongDiagonal returns the log-likelihood computed across the cut between
// template rows templateRow and templateRow+1. Every alignment path crosses
// that cut exactly once, by an emitting (diagonal) move or a deletion move,
// so summing alpha(i,j) + move + beta(i+1,j') over those crossings gives the
// same total for every row; for the final row it is alpha(T,R). Exposed so
// callers can verify this invariance directly.
func (e *Evaluator) LLAlongDiagonal(templateRow int) float64 {
	rows, cols := e.alpha.Dims()
	if templateRow < 0 || templateRow >= rows {
		poaerr.Panic("eval: diagonal row %d out of range [0,%d)", templateRow, rows)
	}
	if templateRow == rows-1 {
		return e.alpha.At(templateRow, cols-1)
	}
	i := templateRow
	ctx := context(e.template, i+1)
	del := e.model.TransitionLogProb(ctx, model.MoveDeletion, e.snr)
	terms := make([]float64, 0, 2*cols)
	for j := 0; j < cols; j++ {
		terms = append(terms, e.alpha.At(i, j)+del+e.beta.At(i+1, j))
		if j+1 < cols {
			emit := e.model.EmissionLogProb(ctx, e.read[j], e.snr)
			terms = append(terms, e.alpha.At(i, j)+emit+e.beta.At(i+1, j+1))
		}
	}
	return logSumExpOrNegInf(terms)
}
