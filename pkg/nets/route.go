package nets

import "github.com/OpenTraceLab/circe/pkg/grid"

// Route replaces the contents of g with a Manhattan path from `from` to `to`:
// a horizontal run followed by a vertical run, split into unit edges. When the
// points share a row or column the corner coincides with an endpoint and only
// one run is drawn.
func (g *Graph) Route(from, to grid.Point) {
	g.Clear()
	if from == to {
		return
	}
	corner := grid.Pt(to.X, from.Y)
	g.unitRun(from, corner)
	g.unitRun(corner, to)
}

// unitRun adds unit edges along an axis-aligned run from a to b.
func (g *Graph) unitRun(a, b grid.Point) {
	step := grid.Pt(sign(b.X-a.X), sign(b.Y-a.Y))
	for p := a; p != b; {
		next := p.Add(step)
		g.AddEdge(p, next)
		p = next
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
