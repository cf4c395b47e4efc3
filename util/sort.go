package util

import "sort"

// ByScore sorts parallel ID/Score slices together, descending by Score --
// used to rank candidate mutations by Δ-likelihood before a polishing round
// picks the best one.
type ByScore struct {
	IDs    []int
	Scores []float64
}

func (d *ByScore) Len() int { return len(d.IDs) }
func (d *ByScore) Less(i, j int) bool { return d.Scores[i] > d.Scores[j] }
func (d *ByScore) Swap(i, j int) {
	d.IDs[i], d.IDs[j] = d.IDs[j], d.IDs[i]
	d.Scores[i], d.Scores[j] = d.Scores[j], d.Scores[i]
}

// SortByScoreDescending reorders ids and scores together so scores is
// descending.
func SortByScoreDescending(ids []int, scores []float64) {
	sort.Stable(&ByScore{IDs: ids, Scores: scores})
}
