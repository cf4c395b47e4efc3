package poa

import (
	"fmt"
	"strings"

	"github.com/jteutenberg/poacore/util"
)

// GraphVizFlag controls the detail included by ToGraphViz (§6).
type GraphVizFlag int

const (
	PlainNodes   GraphVizFlag = 0
	ColorNodes   GraphVizFlag = 1 << 0
	VerboseNodes GraphVizFlag = 1 << 1
)

// ToGraphViz renders the graph as a GraphViz "dot" digraph, diagnostic only
// (§6). When consensus is non-nil and ColorNodes is set, vertices on the
// consensus path are filled. VerboseNodes adds reaching/score rows to every
// label; the plain label is just "{ base | reads }", with the enter/exit
// sentinels rendered as '^'/'$'.
func (g *Graph) ToGraphViz(flags GraphVizFlag, consensus *Consensus) string {
	onPath := util.NewIDSet()
	if consensus != nil {
		for _, v := range consensus.Path {
			onPath.Add(uint(v))
		}
	}

	var b strings.Builder
	b.WriteString("digraph G {\n")
	for _, n := range g.nodes {
		base := string(rune(n.Base))
		if n.ID == g.Enter {
			base = "^"
		} else if n.ID == g.Exit {
			base = "$"
		}

		var label string
		if flags&VerboseNodes != 0 {
			label = fmt.Sprintf("{ { %d | %s } |{ %d | %d } |{ %.2f | %.2f } }",
				n.ID, base, n.Reads, n.SpanningReads, n.Score, n.ReachingScore)
		} else {
			label = fmt.Sprintf("{ %s | %d }", base, n.Reads)
		}

		if flags&ColorNodes != 0 && onPath.Contains(uint(n.ID)) {
			fmt.Fprintf(&b, "%d[shape=Mrecord, style=\"filled\", fillcolor=\"lightblue\" , label=\"%s\"];\n", n.ID, label)
		} else {
			fmt.Fprintf(&b, "%d[shape=Mrecord, label=\"%s\"];\n", n.ID, label)
		}
	}
	for _, n := range g.nodes {
		for _, w := range n.out {
			fmt.Fprintf(&b, "%d->%d ;\n", n.ID, w)
		}
	}
	b.WriteString("}")
	return b.String()
}
