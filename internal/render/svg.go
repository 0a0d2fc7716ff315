// Package render emits the network figure and the hub report.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/seqlab/prothub/internal/graph"
	"github.com/seqlab/prothub/internal/layout"
)

const (
	canvasWidth  = 1000
	canvasHeight = 700
	margin       = 60.0

	baseRadius   = 10.0
	radiusPerDeg = 2.5

	hubFill  = "gold"
	nodeFill = "skyblue"
)

// plasma anchors sampled from the matplotlib plasma colormap; edge
// colors interpolate linearly between neighbors.
var plasma = [][3]int{
	{13, 8, 135},
	{126, 3, 168},
	{204, 71, 120},
	{248, 149, 64},
	{240, 249, 33},
}

// SVG renders the graph as a standalone SVG document. Node radius grows
// with degree, hub nodes are highlighted, and directed edges take a
// sequential plasma gradient with opacity rising in insertion order.
// Output is deterministic for fixed inputs.
func SVG(g *graph.Graph, pos []layout.Point, hubs []string) []byte {
	hubSet := make(map[string]bool, len(hubs))
	for _, h := range hubs {
		hubSet[h] = true
	}

	// Map unit-square positions onto the canvas.
	spanX := float64(canvasWidth) - 2*margin
	spanY := float64(canvasHeight) - 2*margin
	cx := make([]float64, g.NodeCount())
	cy := make([]float64, g.NodeCount())
	for i := range pos {
		cx[i] = margin + pos[i].X*spanX
		cy[i] = margin + pos[i].Y*spanY
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		canvasWidth, canvasHeight, canvasWidth, canvasHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	fmt.Fprintf(&b, `<text x="%d" y="36" font-size="22" font-family="sans-serif" text-anchor="middle">Interaction Network</text>`+"\n",
		canvasWidth/2)

	edges := g.EdgeList()
	m := len(edges)
	for i, e := range edges {
		color := plasmaColor(gradientPos(i, m))
		opacity := float64(5+i) / float64(m+4)
		x1, y1 := cx[e.SourceID], cy[e.SourceID]
		x2, y2 := cx[e.TargetID], cy[e.TargetID]

		// Pull the tip back to the target's rim so the arrowhead is
		// visible outside the circle.
		tr := radius(g, e.TargetID)
		dx, dy := x2-x1, y2-y1
		dist := math.Hypot(dx, dy)
		if dist > tr {
			x2 -= dx / dist * tr
			y2 -= dy / dist * tr
		}

		fmt.Fprintf(&b,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" stroke-opacity="%.3f"/>`+"\n",
			x1, y1, x2, y2, color, opacity)
		fmt.Fprintf(&b, `%s`+"\n", arrowhead(x1, y1, x2, y2, color, opacity))
	}

	for _, n := range g.Nodes {
		fill := nodeFill
		if hubSet[n.Name] {
			fill = hubFill
		}
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="black" stroke-width="1"/>`+"\n",
			cx[n.Index], cy[n.Index], radius(g, n.Index), fill)
	}
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="13" font-family="sans-serif" text-anchor="middle">%s</text>`+"\n",
			cx[n.Index], cy[n.Index]-radius(g, n.Index)-4, escape(n.Name))
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func radius(g *graph.Graph, idx uint32) float64 {
	return baseRadius + radiusPerDeg*float64(g.Degree(idx))
}

// gradientPos spreads m edges over [0,1] in insertion order.
func gradientPos(i, m int) float64 {
	if m <= 1 {
		return 0
	}
	return float64(i) / float64(m-1)
}

func plasmaColor(t float64) string {
	if t <= 0 {
		return rgb(plasma[0])
	}
	if t >= 1 {
		return rgb(plasma[len(plasma)-1])
	}
	scaled := t * float64(len(plasma)-1)
	lo := int(scaled)
	frac := scaled - float64(lo)
	c := [3]int{}
	for k := 0; k < 3; k++ {
		c[k] = int(math.Round(float64(plasma[lo][k]) + frac*float64(plasma[lo+1][k]-plasma[lo][k])))
	}
	return rgb(c)
}

func rgb(c [3]int) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

// arrowhead draws a small triangle at (x2, y2) pointing along the edge.
func arrowhead(x1, y1, x2, y2 float64, color string, opacity float64) string {
	angle := math.Atan2(y2-y1, x2-x1)
	size := 8.0
	spread := 0.45
	lx := x2 - size*math.Cos(angle-spread)
	ly := y2 - size*math.Sin(angle-spread)
	rx := x2 - size*math.Cos(angle+spread)
	ry := y2 - size*math.Sin(angle+spread)
	return fmt.Sprintf(
		`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" fill-opacity="%.3f"/>`,
		x2, y2, lx, ly, rx, ry, color, opacity)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
