package graph

import "sort"

// DefaultTopN is how many hub proteins a run reports unless overridden.
const DefaultTopN = 5

// TopHubs ranks nodes by degree (in + out) descending and returns the
// first n names. Ties keep node insertion order: a protein that entered
// the graph earlier outranks a later one with the same degree. Graphs
// with fewer than n nodes return every node.
func TopHubs(g *Graph, n int) []string {
	if n <= 0 || g.NodeCount() == 0 {
		return nil
	}

	order := make([]uint32, len(g.Nodes))
	for i := range g.Nodes {
		order[i] = g.Nodes[i].Index
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})

	if n > len(order) {
		n = len(order)
	}
	hubs := make([]string, 0, n)
	for _, idx := range order[:n] {
		hubs = append(hubs, g.Nodes[idx].Name)
	}
	return hubs
}
