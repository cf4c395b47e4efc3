package poa

import (
	"github.com/jteutenberg/poacore/align"
	"github.com/jteutenberg/poacore/poaerr"
)

// threadSubsequentRead aligns read against the existing graph via the
// column DP, then walks the traceback from (Exit, len(read)) back toward a
// Start cell, mutating the graph as it goes (§4.2 steps 5-6). `fork` is the
// most recently discovered point in the read's own thread -- a freshly
// created vertex, a real vertex just matched through or stepped over by a
// deletion, or Exit itself when the read's last bases were extra or an End
// move was taken -- that an earlier (in read order) discovery still needs to
// connect forward to.
func (g *Graph) threadSubsequentRead(read string, mode align.Mode, params ThreadParams) {
	cols := g.computeColumns(read, mode, params)
	I := len(read)

	u := g.Exit
	i := I
	fork := noVertex
	var startSpan, endSpan VertexID = noVertex, noVertex

	markSpan := func(vertex VertexID) {
		if endSpan == noVertex {
			endSpan = vertex
		}
		startSpan = vertex
	}

	for {
		if u == g.Enter && i == 0 {
			break
		}
		curCol := cols[u]
		move := curCol.move[i]
		prevVertex := curCol.prev[i]

		switch move {
		case moveStart:
			for i > 0 {
				nv := g.addNode(read[i-1])
				g.nodes[nv].Reads = 1
				if fork != noVertex {
					g.addEdge(nv, fork)
				}
				markSpan(nv)
				fork = nv
				i--
			}
			u = g.Enter
			continue

		case moveEnd:
			if fork == noVertex {
				fork = g.Exit
			}
			u = prevVertex
			continue

		case moveMatch:
			if fork != noVertex {
				g.addEdge(u, fork)
			}
			g.nodes[u].Reads++
			markSpan(u)
			fork = u
			i--
			u = prevVertex
			continue

		case moveMismatch, moveExtra:
			nv := g.addNode(read[i-1])
			g.nodes[nv].Reads = 1
			if fork == noVertex {
				fork = g.Exit
			}
			g.addEdge(nv, fork)
			markSpan(nv)
			fork = nv
			i--
			u = prevVertex
			continue

		case moveDelete:
			if fork != noVertex {
				g.addEdge(u, fork)
			}
			fork = u
			u = prevVertex
			continue

		default:
			poaerr.Panic("poa: traceback reached an invalid move at vertex %d row %d", u, i)
		}
	}

	if fork != noVertex {
		g.addEdge(g.Enter, fork)
	}
	if startSpan != noVertex && endSpan != noVertex {
		g.tagSpan(startSpan, endSpan)
	}
}
