package poa

import (
	"math"

	"github.com/jteutenberg/poacore/align"
)

// moveTag records which transition produced the best score in a column
// cell (§4.2 step 2's reaching_move).
type moveTag int

const (
	moveInvalid moveTag = iota
	moveStart
	moveEnd
	moveMatch
	moveMismatch
	moveDelete
	moveExtra
)

// column holds C_v: the best score of aligning read[0..i) into the graph
// ending at v, for every i, plus enough to trace the choice back.
type column struct {
	score []float64
	move  []moveTag
	prev  []VertexID
}

func newColumn(n int) *column {
	c := &column{
		score: make([]float64, n+1),
		move:  make([]moveTag, n+1),
		prev:  make([]VertexID, n+1),
	}
	for i := range c.prev {
		c.prev[i] = noVertex
	}
	return c
}

// computeColumns runs the alignment-column DP (§4.2 steps 1-4) for read
// against the graph under mode, returning every vertex's column. Traceback
// always starts at (Exit, len(read)): the Start/End boundary options make
// that cell reachable from anywhere the mode permits.
func (g *Graph) computeColumns(read string, mode align.Mode, params ThreadParams) map[VertexID]*column {
	order := g.topologicalOrder()
	I := len(read)
	cols := make(map[VertexID]*column, len(order))

	// rowBest/rowBestVertex track, for SEMIGLOBAL and LOCAL, the best score
	// reached by any non-terminal vertex at each row i -- the source for a
	// zero-cost End jump directly into Exit's column.
	rowBest := make([]float64, I+1)
	rowBestVertex := make([]VertexID, I+1)
	for i := range rowBest {
		rowBest[i] = math.Inf(-1)
		rowBestVertex[i] = noVertex
	}

	for _, v := range order {
		node := g.nodes[v]
		col := newColumn(I)
		preds := node.in

		for i := 0; i <= I; i++ {
			best := math.Inf(-1)
			bestMove := moveInvalid
			bestPrev := noVertex

			if i > 0 && node.Base != 0 {
				for _, u := range preds {
					uc := cols[u]
					s := uc.score[i-1]
					var mv moveTag
					if read[i-1] == node.Base {
						s += params.Match
						mv = moveMatch
					} else {
						s += params.Mismatch
						mv = moveMismatch
					}
					if s > best {
						best, bestMove, bestPrev = s, mv, u
					}
				}
			}
			for _, u := range preds {
				uc := cols[u]
				s := uc.score[i] + params.Delete
				if s > best {
					best, bestMove, bestPrev = s, moveDelete, u
				}
			}
			if i > 0 {
				s := col.score[i-1] + params.Extra
				if s > best {
					best, bestMove, bestPrev = s, moveExtra, v
				}
			}

			allowStart := false
			if v == g.Enter && i == 0 {
				allowStart = true
			}
			if mode == align.Semiglobal && i == 0 {
				allowStart = true
			}
			if mode == align.Local {
				allowStart = true
			}
			if allowStart && 0 > best {
				best, bestMove, bestPrev = 0, moveStart, noVertex
			}

			col.score[i] = best
			col.move[i] = bestMove
			col.prev[i] = bestPrev
		}

		if (mode == align.Semiglobal || mode == align.Local) && v == g.Exit {
			for i := 0; i <= I; i++ {
				if rowBest[i] > col.score[i] {
					col.score[i] = rowBest[i]
					col.move[i] = moveEnd
					col.prev[i] = rowBestVertex[i]
				}
			}
		}
		if (mode == align.Semiglobal || mode == align.Local) && v != g.Enter && v != g.Exit {
			for i := 0; i <= I; i++ {
				if col.score[i] > rowBest[i] {
					rowBest[i] = col.score[i]
					rowBestVertex[i] = v
				}
			}
		}

		cols[v] = col
	}
	return cols
}

