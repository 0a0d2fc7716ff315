package graph

import (
	"reflect"
	"testing"
)

func TestBuildFold(t *testing.T) {
	g := Build([]Interaction{
		{Source: "A", Target: "B", Score: 0.9},
		{Source: "A", Target: "C", Score: 0.5},
		{Source: "B", Target: "C", Score: 0.7},
	})

	if g.NodeCount() != 3 {
		t.Fatalf("Expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("Expected 3 edges, got %d", g.EdgeCount())
	}

	// Nodes keep insertion order.
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(g.NodeNames(), want) {
		t.Errorf("Expected node order %v, got %v", want, g.NodeNames())
	}

	if w, ok := g.Weight("A", "B"); !ok || w != 0.9 {
		t.Errorf("Expected A->B weight 0.9, got %v (ok=%v)", w, ok)
	}
	// Direction matters.
	if _, ok := g.Weight("B", "A"); ok {
		t.Errorf("B->A should not exist in a directed graph")
	}
}

func TestDuplicatePairOverwritesWeight(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 0.2)
	g.AddEdge("A", "C", 0.5)
	g.AddEdge("A", "B", 0.8) // last write wins

	if g.EdgeCount() != 2 {
		t.Fatalf("Expected 2 edges after duplicate, got %d", g.EdgeCount())
	}
	if w, _ := g.Weight("A", "B"); w != 0.8 {
		t.Errorf("Expected overwritten weight 0.8, got %v", w)
	}

	// The duplicate must not move the edge in insertion order.
	edges := g.EdgeList()
	first := edges[0]
	if g.Nodes[first.SourceID].Name != "A" || g.Nodes[first.TargetID].Name != "B" {
		t.Errorf("A->B should keep its first-occurrence position")
	}

	// Reverse adjacency weight stays in sync.
	idxB, _ := g.GetID("B")
	if got := g.ReverseEdges[idxB][0].Weight; got != 0.8 {
		t.Errorf("Reverse edge weight not updated, got %v", got)
	}
}

func TestEdgeSetOrderIndependence(t *testing.T) {
	records := []Interaction{
		{Source: "A", Target: "B", Score: 0.9},
		{Source: "B", Target: "C", Score: 0.7},
		{Source: "A", Target: "C", Score: 0.5},
	}
	reversed := []Interaction{records[2], records[1], records[0]}

	g1 := Build(records)
	g2 := Build(reversed)

	// Membership and weights must agree regardless of insertion order.
	for _, r := range records {
		w1, ok1 := g1.Weight(r.Source, r.Target)
		w2, ok2 := g2.Weight(r.Source, r.Target)
		if !ok1 || !ok2 || w1 != w2 {
			t.Errorf("Edge %s->%s differs across insertion orders: (%v,%v) vs (%v,%v)",
				r.Source, r.Target, w1, ok1, w2, ok2)
		}
	}
}

func TestDegreeCountsBothDirections(t *testing.T) {
	g := Build([]Interaction{
		{Source: "A", Target: "B", Score: 0.9},
		{Source: "A", Target: "C", Score: 0.5},
		{Source: "B", Target: "C", Score: 0.7},
	})

	cases := map[string]int{"A": 2, "B": 2, "C": 2}
	// A: out 2. B: in 1 + out 1. C: in 2.
	for name, want := range cases {
		idx, _ := g.GetID(name)
		if got := g.Degree(idx); got != want {
			t.Errorf("Degree(%s): expected %d, got %d", name, want, got)
		}
	}
}

func FuzzBuild(f *testing.F) {
	f.Add([]byte("initial_seed_data"))
	f.Add([]byte{0x1, 0x2, 0x3, 0x4})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 3 {
			return
		}

		// 1st byte: node universe size; rest: (src, tgt) index pairs.
		numNodes := int(data[0]) % 50
		if numNodes == 0 {
			numNodes = 2
		}

		var records []Interaction
		pairBytes := data[1:]
		for i := 0; i < len(pairBytes)-1; i += 2 {
			src := string(rune('a' + int(pairBytes[i])%numNodes))
			tgt := string(rune('a' + int(pairBytes[i+1])%numNodes))
			records = append(records, Interaction{
				Source: src,
				Target: tgt,
				Score:  float64(i%10) / 10,
			})
		}

		g := Build(records)

		if g.NodeCount() > numNodes {
			t.Errorf("More nodes (%d) than the universe (%d)", g.NodeCount(), numNodes)
		}
		if g.EdgeCount() > len(records) {
			t.Errorf("More edges (%d) than records (%d)", g.EdgeCount(), len(records))
		}

		// Every record's pair must be present with the LAST score seen
		// for that pair.
		last := make(map[[2]string]float64)
		for _, r := range records {
			last[[2]string{r.Source, r.Target}] = r.Score
		}
		for pair, score := range last {
			w, ok := g.Weight(pair[0], pair[1])
			if !ok {
				t.Errorf("Missing edge %s->%s", pair[0], pair[1])
				continue
			}
			if w != score {
				t.Errorf("Edge %s->%s: expected last-write weight %v, got %v", pair[0], pair[1], score, w)
			}
		}

		// Degree sums must equal 2x edge count (each edge is incident
		// to exactly one out- and one in-slot).
		sum := 0
		for _, n := range g.Nodes {
			sum += g.Degree(n.Index)
		}
		if sum != 2*g.EdgeCount() {
			t.Errorf("Degree sum %d != 2 * edges %d", sum, g.EdgeCount())
		}
	})
}
