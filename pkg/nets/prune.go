package nets

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/OpenTraceLab/circe/pkg/grid"
)

// AutoNamePrefix starts every generated net name.
const AutoNamePrefix = "n"

// Prune normalizes the graph after an edit and recomputes every net name.
//
// ports are the points occupied by device ports and anchors the label and
// ground bindings. Both pin their vertices: a pinned vertex is never removed
// and never fused away. Prune cannot fail; running it twice with the same
// inputs leaves the graph unchanged.
func (g *Graph) Prune(ports PointSet, anchors []Anchor) {
	g.pinned = make(PointSet, len(ports)+len(anchors))
	for p := range ports {
		g.pinned.Add(p)
	}
	for _, a := range anchors {
		g.pinned.Add(a.Point)
	}

	g.split(ports)
	for g.fuse() {
	}
	for _, p := range g.Vertices() {
		g.dropIfIsolated(p)
	}
	g.assignNames(ports, anchors)
}

// split cuts every edge at each vertex or port point lying strictly inside
// it. Overlapping collinear edges end up sharing their pieces. The cut points
// become vertices and no piece contains another cut point, so one pass
// reaches a fixed point.
func (g *Graph) split(ports PointSet) {
	cuts := make(PointSet, len(g.adj)+len(ports))
	for p := range g.adj {
		cuts.Add(p)
	}
	for p := range ports {
		cuts.Add(p)
	}

	for _, e := range g.Edges() {
		var inside []grid.Point
		for p := range cuts {
			if e.Bounds.Contains(p) && grid.StrictlyInside(p, e.Src, e.Dst) {
				inside = append(inside, p)
			}
		}
		if len(inside) == 0 {
			continue
		}

		dir := e.Dst.Sub(e.Src)
		sort.Slice(inside, func(i, j int) bool {
			return inside[i].Sub(e.Src).Dot(dir) < inside[j].Sub(e.Src).Dot(dir)
		})

		g.detach(e.ID)
		path := make([]grid.Point, 0, len(inside)+2)
		path = append(path, e.Src)
		path = append(path, inside...)
		path = append(path, e.Dst)
		g.AddPath(path...)
	}
}

// fuse joins pairs of collinear edges that meet head to tail at an unpinned
// degree-2 vertex. Every fusion removes one edge.
func (g *Graph) fuse() bool {
	fused := false
	for _, v := range g.Vertices() {
		if g.pinned.Has(v) || g.Degree(v) != 2 {
			continue
		}
		inc := g.incident(v)
		a, b := inc[0].Other(v), inc[1].Other(v)
		da, db := a.Sub(v), b.Sub(v)
		if da.Cross(db) != 0 || da.Dot(db) >= 0 {
			continue
		}
		if _, exists := g.byKey[KeyOf(a, b)]; exists {
			continue
		}

		label := inc[0].Label
		g.detach(inc[0].ID)
		g.detach(inc[1].ID)
		delete(g.adj, v)
		delete(g.names, v)
		id, _ := g.AddEdge(a, b)
		g.edges[id].Label = label
		fused = true
	}
	return fused
}

// component is one net during name assignment.
type component struct {
	points  []grid.Point
	anchors []Anchor
}

// assignNames partitions vertices and port points into nets and stamps a
// name on each. Two ports on one point share a node; an anchor joins the net
// of whatever it lies on, and anchors with equal names join their nets.
func (g *Graph) assignNames(ports PointSet, anchors []Anchor) {
	points := make(PointSet, len(g.adj)+len(ports))
	for p := range g.adj {
		points.Add(p)
	}
	for p := range ports {
		points.Add(p)
	}
	order := points.Sorted()

	ug := simple.NewUndirectedGraph()
	index := make(map[grid.Point]int64, len(order))
	for i, p := range order {
		index[p] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.edges {
		ug.SetEdge(simple.Edge{F: simple.Node(index[e.Src]), T: simple.Node(index[e.Dst])})
	}

	attached := make(map[int64][]Anchor)
	nameNodes := make(map[string]int64)
	reserved := make(map[string]bool, len(anchors))
	next := int64(len(order))
	for _, a := range anchors {
		reserved[a.Name] = true
		targets := g.attachPoints(a.Point, points)
		if len(targets) == 0 {
			continue // orphan: keeps its name, names nothing
		}
		nn, ok := nameNodes[a.Name]
		if !ok {
			nn = next
			next++
			ug.AddNode(simple.Node(nn))
			nameNodes[a.Name] = nn
		}
		for _, t := range targets {
			ug.SetEdge(simple.Edge{F: simple.Node(index[t]), T: simple.Node(nn)})
		}
		attached[index[targets[0]]] = append(attached[index[targets[0]]], a)
	}

	var comps []component
	for _, nodes := range topo.ConnectedComponents(ug) {
		var c component
		for _, n := range nodes {
			id := n.ID()
			if id >= int64(len(order)) {
				continue
			}
			c.points = append(c.points, order[id])
			c.anchors = append(c.anchors, attached[id]...)
		}
		if len(c.points) == 0 {
			continue
		}
		sortPoints(c.points)
		comps = append(comps, c)
	}
	sort.Slice(comps, func(i, j int) bool {
		return comps[i].points[0].Less(comps[j].points[0])
	})

	g.names = make(map[grid.Point]string, len(order))
	seq := 0
	for _, c := range comps {
		var name string
		if len(c.anchors) > 0 {
			sortAnchors(c.anchors)
			name = c.anchors[0].Name
		} else {
			for {
				seq++
				name = fmt.Sprintf("%s%d", AutoNamePrefix, seq)
				if !reserved[name] {
					break
				}
			}
		}
		for _, p := range c.points {
			g.names[p] = name
		}
	}
	for _, e := range g.edges {
		e.Label = g.names[e.Src]
	}
}

// attachPoints returns the net points an anchor at p connects to: p itself
// when it is a vertex or port point, otherwise one endpoint of every edge
// passing through p.
func (g *Graph) attachPoints(p grid.Point, points PointSet) []grid.Point {
	if points.Has(p) {
		return []grid.Point{p}
	}
	var out []grid.Point
	for _, e := range g.Edges() {
		if e.Bounds.Contains(p) && grid.OnSegment(p, e.Src, e.Dst) {
			out = append(out, e.Src)
		}
	}
	return out
}
