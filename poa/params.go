package poa

// ThreadParams are the scores driving the alignment-column DP used to
// thread a read into the graph (§4.2 step 3).
type ThreadParams struct {
	Match    float64
	Mismatch float64
	Delete   float64
	Extra    float64
}

// DefaultThreadParams favours substitutions over indels, the usual choice
// for threading long, indel-heavy reads against a POA graph.
var DefaultThreadParams = ThreadParams{
	Match:    2,
	Mismatch: -1,
	Delete:   -2,
	Extra:    -2,
}
