// Package align implements the pairwise Needleman-Wunsch aligner (§4.1):
// global dynamic programming over two ACGT strings with configurable
// match/mismatch/insert/delete scores, producing a PairwiseAlignment.
package align

import (
	"github.com/jteutenberg/poacore/poaerr"
	"github.com/jteutenberg/poacore/sequence"
)

// Mode selects how the two sequences are required to align. The pairwise
// aligner in this package only implements Global; Semiglobal and Local are
// accepted by the type (POA threading uses all three, see package poa) but
// Align itself reports Unsupported for them, per spec Non-goals.
type Mode int

const (
	Global Mode = iota
	Semiglobal
	Local
)

// Params holds the four integer DP scores (§4.1).
type Params struct {
	Match    int
	Mismatch int
	Insert   int
	Delete   int
}

// Config is the aligner's configuration: a Mode and its Params.
type Config struct {
	Mode   Mode
	Params Params
}

// DefaultParams mirrors the scores used throughout the original test suite:
// a zero match score, and three unit penalties.
var DefaultParams = Params{Match: 0, Mismatch: -1, Insert: -1, Delete: -1}

// move is the traceback choice at a DP cell.
type move int

const (
	moveDiag move = iota // Match or Mismatch, consumes one base from each string
	moveUp                // query consumed, gap in target -> transcript 'I'
	moveLeft              // target consumed, gap in query -> transcript 'D'
)

// Align performs global Needleman-Wunsch DP of query against target and
// returns the reconstructed PairwiseAlignment plus its DP score (§4.1,
// testable property 2: the returned score equals S(|query|,|target|)).
func Align(target, query string, cfg Config) (*PairwiseAlignment, int, error) {
	if cfg.Mode != Global {
		return nil, 0, poaerr.New(poaerr.Unsupported, "align: mode %v not supported (only Global)", cfg.Mode)
	}
	if err := sequence.Validate(target); err != nil {
		return nil, 0, poaerr.New(poaerr.InvalidInput, "align: target: %v", err)
	}
	if err := sequence.Validate(query); err != nil {
		return nil, 0, poaerr.New(poaerr.InvalidInput, "align: query: %v", err)
	}

	I := len(query)
	J := len(target)
	p := cfg.Params
	stride := J + 1

	score := make([]int, (I+1)*stride)
	for j := 1; j <= J; j++ {
		score[j] = j * p.Delete
	}
	for i := 1; i <= I; i++ {
		score[i*stride] = i * p.Insert
	}
	for i := 1; i <= I; i++ {
		row := i * stride
		prevRow := (i - 1) * stride
		for j := 1; j <= J; j++ {
			diag := score[prevRow+j-1]
			if query[i-1] == target[j-1] {
				diag += p.Match
			} else {
				diag += p.Mismatch
			}
			up := score[prevRow+j] + p.Insert
			left := score[row+j-1] + p.Delete
			score[row+j] = max3(diag, up, left)
		}
	}
	finalScore := score[I*stride+J]

	// Traceback: stable, deterministic tie-break diag > up(insert) > left(delete).
	rawQuery := make([]byte, 0, I+J)
	rawTarget := make([]byte, 0, I+J)
	i, j := I, J
	for i > 0 || j > 0 {
		var mv move
		switch {
		case i == 0:
			mv = moveLeft
		case j == 0:
			mv = moveUp
		default:
			diag := score[(i-1)*stride+j-1]
			if query[i-1] == target[j-1] {
				diag += p.Match
			} else {
				diag += p.Mismatch
			}
			up := score[(i-1)*stride+j] + p.Insert
			left := score[i*stride+j-1] + p.Delete
			_ = left
			cur := score[i*stride+j]
			switch {
			case diag == cur:
				mv = moveDiag
			case up == cur:
				mv = moveUp
			default:
				mv = moveLeft
			}
		}
		switch mv {
		case moveDiag:
			i--
			j--
			rawQuery = append(rawQuery, query[i])
			rawTarget = append(rawTarget, target[j])
		case moveUp:
			i--
			rawQuery = append(rawQuery, query[i])
			rawTarget = append(rawTarget, sequence.Gap)
		case moveLeft:
			j--
			rawQuery = append(rawQuery, sequence.Gap)
			rawTarget = append(rawTarget, target[j])
		}
	}
	reverse(rawQuery)
	reverse(rawTarget)

	pa, err := FromAligned(string(rawTarget), string(rawQuery))
	if err != nil {
		poaerr.Panic("align: DP traceback produced an invalid alignment: %v", err)
	}
	return pa, finalScore, nil
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
