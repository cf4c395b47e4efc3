package eval

import (
	"github.com/jteutenberg/poacore/model"
	"github.com/jteutenberg/poacore/mutation"
	"github.com/jteutenberg/poacore/poaerr"
	"github.com/jteutenberg/poacore/sequence"
)

// IntegratorConfig carries tunables shared by both integrator flavours.
type IntegratorConfig struct {
	// MinTemplateLength rejects construction against implausibly short
	// templates; zero disables the check.
	MinTemplateLength int
}

type readEntry struct {
	read  sequence.MappedRead
	model model.Model
	snr   model.SNR
	eval  *Evaluator
}

// Integrator owns a template and a set of per-read evaluators against it.
// It has no exported constructor; it is built through MonoMolecularIntegrator
// or MultiMolecularIntegrator, which fix how a read's model/SNR is supplied.
type Integrator struct {
	template string
	config   IntegratorConfig
	entries  []*readEntry
}

func newIntegrator(template string, cfg IntegratorConfig) (*Integrator, error) {
	if cfg.MinTemplateLength > 0 && len(template) < cfg.MinTemplateLength {
		return nil, poaerr.New(poaerr.InvalidInput, "eval: template length %d below MinTemplateLength %d", len(template), cfg.MinTemplateLength)
	}
	return &Integrator{template: template, config: cfg}, nil
}

// Template returns the integrator's current template string.
func (ig *Integrator) Template() string { return ig.template }

func (ig *Integrator) addRead(read sequence.MappedRead, m model.Model, snr model.SNR) error {
	if read.Start < 0 || read.End > len(ig.template) || read.Start > read.End {
		return poaerr.New(poaerr.OutOfDomain, "eval: mapped read span [%d,%d) outside template of length %d", read.Start, read.End, len(ig.template))
	}
	window := ig.template[read.Start:read.End]
	e, err := newEvaluator(window, read.Oriented(), m, snr)
	if err != nil {
		return err
	}
	ig.entries = append(ig.entries, &readEntry{read: read, model: m, snr: snr, eval: e})
	return nil
}

// LL returns the sum of every evaluator's log-likelihood.
func (ig *Integrator) LL() float64 {
	sum := 0.0
	for _, e := range ig.entries {
		sum += e.eval.LL()
	}
	return sum
}

// LLWithMutation returns the log-likelihood the integrator would report if
// mut were applied, without mutating any evaluator's state.
func (ig *Integrator) LLWithMutation(mut mutation.Mutation) (float64, error) {
	if err := mut.Validate(len(ig.template)); err != nil {
		return 0, err
	}
	newTpl, err := mutation.Apply(ig.template, []mutation.Mutation{mut})
	if err != nil {
		return 0, err
	}
	muts := []mutation.Mutation{mut}
	sum := 0.0
	for _, e := range ig.entries {
		newStart, newEnd, changed := shiftWindow(muts, e.read.Start, e.read.End)
		if !changed {
			sum += e.eval.LL()
			continue
		}
		window := newTpl[newStart:newEnd]
		re, rerr := newEvaluator(window, e.read.Oriented(), e.model, e.snr)
		if rerr != nil {
			return 0, rerr
		}
		sum += re.LL()
	}
	return sum, nil
}

// ApplyMutations mutates the template in place (in the sense that this
// integrator's reported Template() and every evaluator's LL() now reflect
// the mutated sequence) and rebuilds only the evaluators whose window
// content actually changed.
func (ig *Integrator) ApplyMutations(muts []mutation.Mutation) error {
	newTpl, err := mutation.Apply(ig.template, muts)
	if err != nil {
		return err
	}
	for _, e := range ig.entries {
		newStart, newEnd, changed := shiftWindow(muts, e.read.Start, e.read.End)
		e.read.Start, e.read.End = newStart, newEnd
		if !changed {
			continue
		}
		window := newTpl[newStart:newEnd]
		re, rerr := newEvaluator(window, e.read.Oriented(), e.model, e.snr)
		if rerr != nil {
			return rerr
		}
		e.eval = re
	}
	ig.template = newTpl
	return nil
}

// shiftWindow computes how a mapped read's [start,end) span moves under
// muts (whose positions are all relative to the integrator's original,
// unmutated template) and whether the substring content inside the span
// changed.
func shiftWindow(muts []mutation.Mutation, start, end int) (newStart, newEnd int, changed bool) {
	newStart, newEnd = start, end
	for _, m := range muts {
		switch m.Kind {
		case mutation.Insertion:
			if m.Position <= start {
				newStart++
				newEnd++
			} else if m.Position < end {
				newEnd++
				changed = true
			}
		case mutation.Deletion:
			if m.Position < start {
				newStart--
			}
			if m.Position < end {
				newEnd--
			}
			if m.Position >= start && m.Position < end {
				changed = true
			}
		case mutation.Substitution:
			if m.Position >= start && m.Position < end {
				changed = true
			}
		}
	}
	return
}

// MonoMolecularIntegrator shares one (snr, model) pair across every read --
// the common case of reads all called under the same chemistry.
type MonoMolecularIntegrator struct {
	*Integrator
	model model.Model
	snr   model.SNR
}

// NewMonoMolecularIntegrator builds an integrator over template using a
// single named model and SNR for every subsequently added read.
func NewMonoMolecularIntegrator(template string, cfg IntegratorConfig, snr model.SNR, modelID string) (*MonoMolecularIntegrator, error) {
	if err := sequence.Validate(template); err != nil {
		return nil, poaerr.New(poaerr.InvalidInput, "eval: %v", err)
	}
	m, err := model.Lookup(modelID)
	if err != nil {
		return nil, err
	}
	ig, err := newIntegrator(template, cfg)
	if err != nil {
		return nil, err
	}
	return &MonoMolecularIntegrator{Integrator: ig, model: m, snr: snr}, nil
}

// AddRead threads read against the shared model/SNR.
func (mi *MonoMolecularIntegrator) AddRead(read sequence.MappedRead) error {
	return mi.addRead(read, mi.model, mi.snr)
}

// MultiMolecularIntegrator lets each read carry its own SNR and model.
type MultiMolecularIntegrator struct {
	*Integrator
}

// NewMultiMolecularIntegrator builds an integrator over template whose
// reads each specify their own model/SNR at AddRead time.
func NewMultiMolecularIntegrator(template string, cfg IntegratorConfig) (*MultiMolecularIntegrator, error) {
	if err := sequence.Validate(template); err != nil {
		return nil, poaerr.New(poaerr.InvalidInput, "eval: %v", err)
	}
	ig, err := newIntegrator(template, cfg)
	if err != nil {
		return nil, err
	}
	return &MultiMolecularIntegrator{Integrator: ig}, nil
}

// AddRead threads read against its own model/SNR.
func (mi *MultiMolecularIntegrator) AddRead(read sequence.MappedRead, snr model.SNR, modelID string) error {
	m, err := model.Lookup(modelID)
	if err != nil {
		return err
	}
	return mi.addRead(read, m, snr)
}
