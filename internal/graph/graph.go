// Package graph holds the directed weighted interaction network and the
// hub ranking over it.
package graph

import "fmt"

// Interaction is one pairwise record as consumed by the builder: an edge
// from Source to Target carrying the confidence score as weight.
type Interaction struct {
	Source string
	Target string
	Score  float64
}

// Node is a protein in the network. Index is the dense internal ID,
// assigned in insertion order.
type Node struct {
	Index uint32
	Name  string
}

// Edge is a directed connection stored in the adjacency lists.
type Edge struct {
	TargetID uint32
	Weight   float64
}

// edgeKey identifies a (source, target) pair for duplicate detection.
type edgeKey struct {
	src, tgt uint32
}

// EdgeRef is one edge in global insertion order, used by the renderer for
// the sequential color gradient.
type EdgeRef struct {
	SourceID uint32
	TargetID uint32
}

// Graph is a directed weighted graph with insertion-ordered nodes and
// edges. It is built once per run and read-only afterwards; there is no
// concurrent access to guard.
type Graph struct {
	Nodes        []*Node
	Edges        [][]Edge // out-adjacency, indexed by Node.Index
	ReverseEdges [][]Edge // in-adjacency, indexed by Node.Index

	idMap     map[string]uint32
	edgeOrder []EdgeRef
	edgeSeen  map[edgeKey]bool
}

func NewGraph() *Graph {
	return &Graph{
		idMap:    make(map[string]uint32),
		edgeSeen: make(map[edgeKey]bool),
	}
}

// Build folds interaction records into a fresh graph. Duplicate
// (source, target) pairs overwrite the weight; the edge keeps the
// position of its first occurrence.
func Build(records []Interaction) *Graph {
	g := NewGraph()
	for _, r := range records {
		g.AddEdge(r.Source, r.Target, r.Score)
	}
	return g
}

// AddNode inserts a node if absent and returns its internal ID.
func (g *Graph) AddNode(name string) uint32 {
	if idx, ok := g.idMap[name]; ok {
		return idx
	}
	idx := uint32(len(g.Nodes))
	g.idMap[name] = idx
	g.Nodes = append(g.Nodes, &Node{Index: idx, Name: name})
	g.Edges = append(g.Edges, nil)
	g.ReverseEdges = append(g.ReverseEdges, nil)
	return idx
}

// AddEdge adds a directed edge source -> target, creating either endpoint
// if needed. Re-adding an existing pair updates the weight in place
// (last write wins).
func (g *Graph) AddEdge(source, target string, weight float64) {
	src := g.AddNode(source)
	tgt := g.AddNode(target)

	key := edgeKey{src, tgt}
	if g.edgeSeen[key] {
		for i := range g.Edges[src] {
			if g.Edges[src][i].TargetID == tgt {
				g.Edges[src][i].Weight = weight
				break
			}
		}
		for i := range g.ReverseEdges[tgt] {
			if g.ReverseEdges[tgt][i].TargetID == src {
				g.ReverseEdges[tgt][i].Weight = weight
				break
			}
		}
		return
	}

	g.edgeSeen[key] = true
	g.edgeOrder = append(g.edgeOrder, EdgeRef{SourceID: src, TargetID: tgt})
	g.Edges[src] = append(g.Edges[src], Edge{TargetID: tgt, Weight: weight})
	g.ReverseEdges[tgt] = append(g.ReverseEdges[tgt], Edge{TargetID: src, Weight: weight})
}

// GetID returns the internal ID for a node name.
func (g *Graph) GetID(name string) (uint32, bool) {
	idx, ok := g.idMap[name]
	return idx, ok
}

// GetNode returns the node for a name, or nil.
func (g *Graph) GetNode(name string) *Node {
	idx, ok := g.idMap[name]
	if !ok {
		return nil
	}
	return g.Nodes[idx]
}

// Degree counts edges incident to the node in both directions.
func (g *Graph) Degree(idx uint32) int {
	if int(idx) >= len(g.Nodes) {
		return 0
	}
	return len(g.Edges[idx]) + len(g.ReverseEdges[idx])
}

// Weight returns the current weight of the source -> target edge.
func (g *Graph) Weight(source, target string) (float64, bool) {
	src, ok := g.idMap[source]
	if !ok {
		return 0, false
	}
	tgt, ok := g.idMap[target]
	if !ok {
		return 0, false
	}
	for _, e := range g.Edges[src] {
		if e.TargetID == tgt {
			return e.Weight, true
		}
	}
	return 0, false
}

// EdgeList returns all edges in global insertion order.
func (g *Graph) EdgeList() []EdgeRef {
	out := make([]EdgeRef, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}

func (g *Graph) NodeCount() int { return len(g.Nodes) }

func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// NodeNames returns all node names in insertion order.
func (g *Graph) NodeNames() []string {
	names := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		names[i] = n.Name
	}
	return names
}

func (g *Graph) String() string {
	return fmt.Sprintf("graph{nodes: %d, edges: %d}", len(g.Nodes), len(g.edgeOrder))
}
