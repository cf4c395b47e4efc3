package align

import (
	"github.com/jteutenberg/poacore/poaerr"
	"github.com/jteutenberg/poacore/sequence"
)

// TranscriptOp is one symbol of an alignment transcript (§3.2).
type TranscriptOp byte

const (
	OpMatch       TranscriptOp = 'M'
	OpReplacement TranscriptOp = 'R'
	OpInsertion   TranscriptOp = 'I'
	OpDeletion    TranscriptOp = 'D'
)

// PairwiseAlignment holds the aligned target/query strings (same length,
// may contain gaps) and the transcript derived from them (§3.3).
type PairwiseAlignment struct {
	AlignedTarget string
	AlignedQuery  string
	transcript    string
}

// FromAligned builds a PairwiseAlignment from two already-aligned strings
// of equal length, deriving the transcript. It fails with InvalidInput if
// the lengths differ, either string holds a non-ACGT(-) character, or any
// column is an all-gap column.
func FromAligned(target, query string) (*PairwiseAlignment, error) {
	if len(target) != len(query) {
		return nil, poaerr.New(poaerr.InvalidInput, "aligned target/query length mismatch: %d vs %d", len(target), len(query))
	}
	if err := sequence.ValidateAligned(target); err != nil {
		return nil, poaerr.New(poaerr.InvalidInput, "target: %v", err)
	}
	if err := sequence.ValidateAligned(query); err != nil {
		return nil, poaerr.New(poaerr.InvalidInput, "query: %v", err)
	}
	transcript := make([]byte, len(target))
	for i := 0; i < len(target); i++ {
		t, q := target[i], query[i]
		switch {
		case t == sequence.Gap && q == sequence.Gap:
			return nil, poaerr.New(poaerr.InvalidInput, "column %d is all-gap", i)
		case t == q:
			transcript[i] = byte(OpMatch)
		case t == sequence.Gap:
			transcript[i] = byte(OpInsertion)
		case q == sequence.Gap:
			transcript[i] = byte(OpDeletion)
		default:
			transcript[i] = byte(OpReplacement)
		}
	}
	return &PairwiseAlignment{AlignedTarget: target, AlignedQuery: query, transcript: string(transcript)}, nil
}

// FromTranscript reconstructs the aligned pair by threading transcript
// through the two unaligned strings. It returns (nil, err) -- a failure
// indicator, per §3.3/§7 -- when the transcript does not consume exactly
// unalnTarget and unalnQuery, or disagrees with a claimed Match/Replacement.
func FromTranscript(transcript, unalnTarget, unalnQuery string) (*PairwiseAlignment, error) {
	alnTarget := make([]byte, 0, len(transcript))
	alnQuery := make([]byte, 0, len(transcript))
	tPos, qPos := 0, 0
	tLen, qLen := len(unalnTarget), len(unalnQuery)

	for i := 0; i < len(transcript); i++ {
		if tPos > tLen || qPos > qLen {
			return nil, poaerr.New(poaerr.InvalidInput, "transcript overruns its sequences")
		}
		var t, q byte
		if tPos < tLen {
			t = unalnTarget[tPos]
		}
		if qPos < qLen {
			q = unalnQuery[qPos]
		}
		switch TranscriptOp(transcript[i]) {
		case OpMatch:
			if tPos >= tLen || qPos >= qLen || t != q {
				return nil, poaerr.New(poaerr.InvalidInput, "transcript claims Match at %d but bases differ", i)
			}
			alnTarget = append(alnTarget, t)
			alnQuery = append(alnQuery, q)
			tPos++
			qPos++
		case OpReplacement:
			if tPos >= tLen || qPos >= qLen || t == q {
				return nil, poaerr.New(poaerr.InvalidInput, "transcript claims Replacement at %d but bases match (or ran out)", i)
			}
			alnTarget = append(alnTarget, t)
			alnQuery = append(alnQuery, q)
			tPos++
			qPos++
		case OpInsertion:
			if qPos >= qLen {
				return nil, poaerr.New(poaerr.InvalidInput, "transcript claims Insertion at %d but query is exhausted", i)
			}
			alnTarget = append(alnTarget, sequence.Gap)
			alnQuery = append(alnQuery, q)
			qPos++
		case OpDeletion:
			if tPos >= tLen {
				return nil, poaerr.New(poaerr.InvalidInput, "transcript claims Deletion at %d but target is exhausted", i)
			}
			alnTarget = append(alnTarget, t)
			alnQuery = append(alnQuery, sequence.Gap)
			tPos++
		default:
			return nil, poaerr.New(poaerr.InvalidInput, "unknown transcript symbol %q at %d", transcript[i], i)
		}
	}
	if tPos != tLen || qPos != qLen {
		return nil, poaerr.New(poaerr.InvalidInput, "transcript did not consume both sequences fully")
	}
	return FromAligned(string(alnTarget), string(alnQuery))
}

// Transcript returns the M/R/I/D encoding (§3.2).
func (p *PairwiseAlignment) Transcript() string { return p.transcript }

// Target returns the aligned target string (gaps included).
func (p *PairwiseAlignment) Target() string { return p.AlignedTarget }

// Query returns the aligned query string (gaps included).
func (p *PairwiseAlignment) Query() string { return p.AlignedQuery }

// Length is the transcript length (== both aligned string lengths).
func (p *PairwiseAlignment) Length() int { return len(p.transcript) }

// Matches counts 'M' transcript symbols.
func (p *PairwiseAlignment) Matches() int { return p.count(byte(OpMatch)) }

// Mismatches counts 'R' transcript symbols.
func (p *PairwiseAlignment) Mismatches() int { return p.count(byte(OpReplacement)) }

// Insertions counts 'I' transcript symbols.
func (p *PairwiseAlignment) Insertions() int { return p.count(byte(OpInsertion)) }

// Deletions counts 'D' transcript symbols.
func (p *PairwiseAlignment) Deletions() int { return p.count(byte(OpDeletion)) }

// Errors is Length() - Matches().
func (p *PairwiseAlignment) Errors() int { return p.Length() - p.Matches() }

// Accuracy is Matches() / Length().
func (p *PairwiseAlignment) Accuracy() float64 {
	if p.Length() == 0 {
		return 1
	}
	return float64(p.Matches()) / float64(p.Length())
}

func (p *PairwiseAlignment) count(op byte) int {
	n := 0
	for i := 0; i < len(p.transcript); i++ {
		if p.transcript[i] == op {
			n++
		}
	}
	return n
}
