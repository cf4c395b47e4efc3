package align

// TargetToQueryPositions computes, for an alignment transcript, the vector p
// of length targetLength(transcript)+1 where p[s] is the query offset
// corresponding to the start of target position s (§4.1 "Coordinate
// lifting"). For any target slice [s,e), the induced query subslice is
// [p[s], p[e]).
func TargetToQueryPositions(transcript string) []int {
	p := make([]int, 0, len(transcript)+1)
	tPos, qPos := 0, 0
	for i := 0; i < len(transcript); i++ {
		switch TranscriptOp(transcript[i]) {
		case OpMatch, OpReplacement:
			p = append(p, qPos)
			tPos++
			qPos++
		case OpDeletion:
			p = append(p, qPos)
			tPos++
		case OpInsertion:
			qPos++
		}
	}
	p = append(p, qPos)
	return p
}

// TargetToQueryPositions is also available directly off a PairwiseAlignment.
func (p *PairwiseAlignment) TargetToQueryPositions() []int {
	return TargetToQueryPositions(p.transcript)
}
