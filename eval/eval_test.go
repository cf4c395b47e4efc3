package eval

import (
	"math"
	"testing"

	"github.com/jteutenberg/poacore/model"
	"github.com/jteutenberg/poacore/mutation"
	"github.com/jteutenberg/poacore/sequence"
)

var testSNR = model.SNR{A: 10, C: 7, G: 5, T: 11}

func mustMono(t *testing.T, template string) *MonoMolecularIntegrator {
	t.Helper()
	ig, err := NewMonoMolecularIntegrator(template, IntegratorConfig{}, testSNR, "P6/C4")
	if err != nil {
		t.Fatalf("NewMonoMolecularIntegrator: %v", err)
	}
	return ig
}

func TestLLAlongDiagonalInvariant(t *testing.T) {
	ig := mustMono(t, "ACGTCGT")
	if err := ig.AddRead(sequence.MappedRead{Read: sequence.Read{Name: "r1", Bases: "ACGTACGT", ModelID: "P6/C4"}, Start: 0, End: 7}); err != nil {
		t.Fatalf("AddRead: %v", err)
	}
	e := ig.entries[0].eval
	ll0 := e.LLAlongDiagonal(0)
	llMid := e.LLAlongDiagonal(len(e.template) / 2)
	llEnd := e.LLAlongDiagonal(len(e.template))
	if math.Abs(ll0-llMid) > Prec {
		t.Errorf("LL at row 0 = %v, row mid = %v, diff exceeds Prec", ll0, llMid)
	}
	if math.Abs(llMid-llEnd) > Prec {
		t.Errorf("LL at row mid = %v, row end = %v, diff exceeds Prec", llMid, llEnd)
	}
}

func TestIntegratorLLFinite(t *testing.T) {
	ig := mustMono(t, "ACGTCGT")
	if err := ig.AddRead(sequence.MappedRead{Read: sequence.Read{Name: "r1", Bases: "ACGTACGT", ModelID: "P6/C4"}, Start: 0, End: 7}); err != nil {
		t.Fatalf("AddRead: %v", err)
	}
	ll := ig.LL()
	if math.IsInf(ll, 0) || math.IsNaN(ll) {
		t.Fatalf("LL() = %v, want finite", ll)
	}
	if ll >= 0 {
		t.Errorf("LL() = %v, want negative (log-probability)", ll)
	}
}

// TestMutationEquivalenceInvariant is the S8-style property from the spec:
// LL_on_T1(mut) must match a fresh integrator built on the mutated template.
func TestMutationEquivalenceInvariant(t *testing.T) {
	template := "ACGTCGT"
	read := sequence.MappedRead{Read: sequence.Read{Name: "r1", Bases: "ACGTACGT", ModelID: "P6/C4"}, Start: 0, End: 7}

	ig := mustMono(t, template)
	if err := ig.AddRead(read); err != nil {
		t.Fatalf("AddRead: %v", err)
	}

	muts := []mutation.Mutation{
		{Kind: mutation.Substitution, Position: 2, Base: 'T'},
		{Kind: mutation.Deletion, Position: 4},
		{Kind: mutation.Insertion, Position: 0, Base: 'G'},
	}
	for _, mut := range muts {
		got, err := ig.LLWithMutation(mut)
		if err != nil {
			t.Fatalf("LLWithMutation(%+v): %v", mut, err)
		}
		mutatedTpl, err := mutation.Apply(template, []mutation.Mutation{mut})
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		fresh := mustMono(t, mutatedTpl)
		freshRead := read
		if mut.Kind == mutation.Insertion && mut.Position <= read.Start {
			freshRead.Start++
			freshRead.End++
		} else if mut.Kind == mutation.Insertion && mut.Position < read.End {
			freshRead.End++
		} else if mut.Kind == mutation.Deletion && mut.Position < read.Start {
			freshRead.Start--
			freshRead.End--
		} else if mut.Kind == mutation.Deletion && mut.Position < read.End {
			freshRead.End--
		}
		if err := fresh.AddRead(freshRead); err != nil {
			t.Fatalf("AddRead on fresh: %v", err)
		}
		want := fresh.LL()
		if math.Abs(got-want) > Prec {
			t.Errorf("mutation %+v: LLWithMutation=%v, fresh=%v, diff exceeds Prec", mut, got, want)
		}
	}
}

func TestApplyMutationsMatchesFreshBuild(t *testing.T) {
	template := "ACGTCGT"
	read := sequence.MappedRead{Read: sequence.Read{Name: "r1", Bases: "ACGTACGT", ModelID: "P6/C4"}, Start: 0, End: 7}

	ig := mustMono(t, template)
	if err := ig.AddRead(read); err != nil {
		t.Fatalf("AddRead: %v", err)
	}

	muts := []mutation.Mutation{{Kind: mutation.Substitution, Position: 3, Base: 'A'}}
	if err := ig.ApplyMutations(muts); err != nil {
		t.Fatalf("ApplyMutations: %v", err)
	}

	wantTpl, err := mutation.Apply(template, muts)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if ig.Template() != wantTpl {
		t.Fatalf("Template() = %q, want %q", ig.Template(), wantTpl)
	}

	fresh := mustMono(t, wantTpl)
	if err := fresh.AddRead(read); err != nil {
		t.Fatalf("AddRead on fresh: %v", err)
	}
	if math.Abs(ig.LL()-fresh.LL()) > Prec {
		t.Errorf("after ApplyMutations: LL()=%v, fresh=%v, diff exceeds Prec", ig.LL(), fresh.LL())
	}
}

func TestMultiMolecularIntegratorPerReadModel(t *testing.T) {
	ig, err := NewMultiMolecularIntegrator("ACGTCGT", IntegratorConfig{})
	if err != nil {
		t.Fatalf("NewMultiMolecularIntegrator: %v", err)
	}
	read := sequence.MappedRead{Read: sequence.Read{Name: "r1", Bases: "ACGTACGT"}, Start: 0, End: 7}
	if err := ig.AddRead(read, testSNR, "P6/C4"); err != nil {
		t.Fatalf("AddRead: %v", err)
	}
	if err := ig.AddRead(read, testSNR, "no-such-model"); err == nil {
		t.Fatal("expected error for unknown model id")
	}
}

func TestAddReadRejectsSpanOutsideTemplate(t *testing.T) {
	ig := mustMono(t, "ACGT")
	read := sequence.MappedRead{Read: sequence.Read{Name: "r1", Bases: "ACGTA"}, Start: 0, End: 5}
	if err := ig.AddRead(read); err == nil {
		t.Fatal("expected OutOfDomain error for span exceeding template length")
	}
}

func TestMinTemplateLengthRejectsShortTemplate(t *testing.T) {
	cfg := IntegratorConfig{MinTemplateLength: 10}
	if _, err := NewMonoMolecularIntegrator("ACGT", cfg, testSNR, "P6/C4"); err == nil {
		t.Fatal("expected error for template shorter than MinTemplateLength")
	}
	if _, err := NewMultiMolecularIntegrator("ACGT", cfg); err == nil {
		t.Fatal("expected error for template shorter than MinTemplateLength")
	}
	if _, err := NewMonoMolecularIntegrator("ACGTACGTAC", cfg, testSNR, "P6/C4"); err != nil {
		t.Fatalf("template meeting MinTemplateLength should be accepted: %v", err)
	}
}
