// Package poa implements the partial-order alignment engine: a DAG of
// single-base vertices built by threading reads against it one at a time,
// consensus-path extraction, candidate variant enumeration and a GraphViz
// diagnostic dump.
package poa

import (
	"container/heap"

	"github.com/jteutenberg/poacore/align"
	"github.com/jteutenberg/poacore/poaerr"
	"github.com/jteutenberg/poacore/sequence"
)

// VertexID indexes into a Graph's vertex arena.
type VertexID int

const noVertex VertexID = -1

// PoaNode is one vertex in the graph: a single base plus its coverage
// bookkeeping and arena-local adjacency (§4.2, §9's "arena of nodes with
// in/out edge-ID slices" shape).
type PoaNode struct {
	ID            VertexID
	Base          byte // 0 for the enter/exit sentinels
	Reads         int
	SpanningReads int
	Score         float64
	ReachingScore float64
	bestPrev      VertexID
	in            []VertexID
	out           []VertexID
}

// In returns the IDs of node's graph predecessors.
func (n *PoaNode) In() []VertexID { return n.in }

// Out returns the IDs of node's graph successors.
func (n *PoaNode) Out() []VertexID { return n.out }

// Graph is the arena owning every vertex threaded reads pass through.
type Graph struct {
	nodes []*PoaNode
	Enter VertexID
	Exit  VertexID
	reads int
}

// NewGraph returns an empty graph with just its enter and exit sentinels.
func NewGraph() *Graph {
	g := &Graph{}
	g.Enter = g.addNode(0)
	g.Exit = g.addNode(0)
	return g
}

func (g *Graph) addNode(base byte) VertexID {
	id := VertexID(len(g.nodes))
	g.nodes = append(g.nodes, &PoaNode{ID: id, Base: base, bestPrev: noVertex})
	return id
}

func (g *Graph) addEdge(from, to VertexID) {
	for _, w := range g.nodes[from].out {
		if w == to {
			return
		}
	}
	g.nodes[from].out = append(g.nodes[from].out, to)
	g.nodes[to].in = append(g.nodes[to].in, from)
}

// NumVertices returns the number of vertices in the arena, including enter/exit.
func (g *Graph) NumVertices() int { return len(g.nodes) }

// Node returns the vertex with the given ID.
func (g *Graph) Node(id VertexID) *PoaNode { return g.nodes[id] }

// NumReads returns the number of reads successfully threaded so far.
func (g *Graph) NumReads() int { return g.reads }

// idHeap is a small int-keyed min-heap, grounded on the teacher's
// container/heap priority queue (overlap/nodequeue.go), used here to make
// topological ordering deterministic when several vertices become ready at
// once.
type idHeap []VertexID

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(VertexID)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topologicalOrder returns every vertex in a topological order, enter first
// and exit last, breaking ties between simultaneously-ready vertices by
// ascending ID for reproducibility.
func (g *Graph) topologicalOrder() []VertexID {
	indeg := make([]int, len(g.nodes))
	for _, n := range g.nodes {
		for _, w := range n.out {
			indeg[w]++
		}
	}
	h := &idHeap{}
	heap.Init(h)
	for id, d := range indeg {
		if d == 0 {
			heap.Push(h, VertexID(id))
		}
	}
	order := make([]VertexID, 0, len(g.nodes))
	for h.Len() > 0 {
		v := heap.Pop(h).(VertexID)
		order = append(order, v)
		for _, w := range g.nodes[v].out {
			indeg[w]--
			if indeg[w] == 0 {
				heap.Push(h, w)
			}
		}
	}
	if len(order) != len(g.nodes) {
		poaerr.Panic("poa: graph contains a cycle")
	}
	return order
}

// tagSpan increments SpanningReads on every vertex in the topological order
// between startSpan and endSpan: the flag goes up exactly at startSpan (so
// startSpan itself is counted) and the scan stops exactly at endSpan (so
// endSpan itself is not), matching the original implementation's
// accounting (§4.2 Spanning-read tagging).
func (g *Graph) tagSpan(startSpan, endSpan VertexID) {
	spanning := false
	for _, v := range g.topologicalOrder() {
		if v == startSpan {
			spanning = true
		}
		if v == endSpan {
			break
		}
		if spanning {
			g.nodes[v].SpanningReads++
		}
	}
}

// ThreadRead aligns read to the graph under mode and mutates the graph to
// incorporate it (§4.2). The first read threaded into an empty graph is
// appended linearly; every subsequent read is threaded via the alignment
// column DP and traceback.
func (g *Graph) ThreadRead(read string, mode align.Mode, params ThreadParams) error {
	if err := sequence.Validate(read); err != nil {
		return poaerr.New(poaerr.InvalidInput, "poa: %v", err)
	}
	if len(read) == 0 {
		return poaerr.New(poaerr.InvalidInput, "poa: empty read")
	}
	if g.NumVertices() == 2 {
		g.threadFirstRead(read)
	} else {
		g.threadSubsequentRead(read, mode, params)
	}
	g.reads++
	g.nodes[g.Enter].Reads++
	g.nodes[g.Exit].Reads++
	return nil
}

func (g *Graph) threadFirstRead(read string) {
	u := g.Enter
	var startSpan, endSpan VertexID
	for i := 0; i < len(read); i++ {
		v := g.addNode(read[i])
		g.nodes[v].Reads = 1
		g.addEdge(u, v)
		if i == 0 {
			startSpan = v
		}
		endSpan = v
		u = v
	}
	g.addEdge(u, g.Exit)
	g.tagSpan(startSpan, endSpan)
}
