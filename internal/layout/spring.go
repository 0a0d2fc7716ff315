// Package layout computes deterministic 2D positions for network
// figures with a seeded force-directed simulation.
package layout

import (
	"math"
	"math/rand"

	"github.com/seqlab/prothub/internal/graph"
)

// DefaultSeed pins the layout so the same graph always renders the same
// figure.
const DefaultSeed = 13648

const (
	iterations = 50
	area       = 1.0
)

// Point is a node position in the unit square [0,1] x [0,1].
type Point struct {
	X, Y float64
}

// Spring runs a Fruchterman-Reingold simulation over the graph and
// returns one position per node, indexed by Node.Index. Initial
// positions come from the seeded source, so output is reproducible for
// a fixed (graph, seed) pair.
func Spring(g *graph.Graph, seed int64) []Point {
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	if n == 1 {
		pos[0] = Point{X: 0.5, Y: 0.5}
		return pos
	}

	k := math.Sqrt(area / float64(n))
	disp := make([]Point, n)
	temp := 0.1

	for iter := 0; iter < iterations; iter++ {
		for i := range disp {
			disp[i] = Point{}
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					dist = 1e-9
					dx = 1e-9
				}
				force := k * k / dist
				disp[i].X += dx / dist * force
				disp[i].Y += dy / dist * force
				disp[j].X -= dx / dist * force
				disp[j].Y -= dy / dist * force
			}
		}

		// Attraction along edges.
		for _, e := range g.EdgeList() {
			src, tgt := e.SourceID, e.TargetID
			dx := pos[src].X - pos[tgt].X
			dy := pos[src].Y - pos[tgt].Y
			dist := math.Hypot(dx, dy)
			if dist < 1e-9 {
				continue
			}
			force := dist * dist / k
			disp[src].X -= dx / dist * force
			disp[src].Y -= dy / dist * force
			disp[tgt].X += dx / dist * force
			disp[tgt].Y += dy / dist * force
		}

		// Displace, capped by the cooling temperature.
		for i := 0; i < n; i++ {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			pos[i].X += disp[i].X / d * step
			pos[i].Y += disp[i].Y / d * step
		}
		temp *= 0.95
	}

	normalize(pos)
	return pos
}

// normalize rescales positions into the unit square.
func normalize(pos []Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX := maxX - minX
	spanY := maxY - minY
	for i := range pos {
		if spanX > 1e-9 {
			pos[i].X = (pos[i].X - minX) / spanX
		} else {
			pos[i].X = 0.5
		}
		if spanY > 1e-9 {
			pos[i].Y = (pos[i].Y - minY) / spanY
		} else {
			pos[i].Y = 0.5
		}
	}
}
