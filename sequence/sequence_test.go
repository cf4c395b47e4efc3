package sequence

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"ACGT", true},
		{"", true},
		{"ACGN", false},
		{"AC-GT", false},
	}
	for _, c := range cases {
		err := Validate(c.s)
		if (err == nil) != c.want {
			t.Errorf("Validate(%q) err=%v, want valid=%v", c.s, err, c.want)
		}
	}
}

func TestValidateAligned(t *testing.T) {
	if err := ValidateAligned("AC-GT"); err != nil {
		t.Errorf("ValidateAligned(AC-GT) = %v, want nil", err)
	}
	if err := ValidateAligned("ACNGT"); err == nil {
		t.Error("ValidateAligned(ACNGT) = nil, want error")
	}
}

func TestStripGaps(t *testing.T) {
	if got := StripGaps("A-C-G-T"); got != "ACGT" {
		t.Errorf("StripGaps = %q, want ACGT", got)
	}
}

func TestReverseComplement(t *testing.T) {
	if got := ReverseComplement("ACGT"); got != "ACGT" {
		t.Errorf("ReverseComplement(ACGT) = %q, want ACGT", got)
	}
	if got := ReverseComplement("AAGG"); got != "CCTT" {
		t.Errorf("ReverseComplement(AAGG) = %q, want CCTT", got)
	}
}

func TestMappedReadOriented(t *testing.T) {
	m := MappedRead{Read: Read{Bases: "ACGT"}, Strand: Reverse}
	if got := m.Oriented(); got != "ACGT" {
		t.Errorf("Oriented() = %q, want ACGT (self reverse-complement)", got)
	}
	m2 := MappedRead{Read: Read{Bases: "AAGG"}, Strand: Reverse}
	if got := m2.Oriented(); got != "CCTT" {
		t.Errorf("Oriented() = %q, want CCTT", got)
	}
	m3 := MappedRead{Read: Read{Bases: "AAGG"}, Strand: Forward, Start: 3, End: 7}
	if got := m3.Oriented(); got != "AAGG" {
		t.Errorf("Oriented() = %q, want AAGG", got)
	}
	if m3.Span() != 4 {
		t.Errorf("Span() = %d, want 4", m3.Span())
	}
}
