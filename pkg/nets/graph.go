package nets

import (
	"sort"

	"github.com/OpenTraceLab/circe/pkg/grid"
)

// EdgeID identifies a wire edge for as long as the edge exists. IDs are never
// reused within a Graph, so a stale ID simply resolves to "not found".
type EdgeID uint64

// Key is the unordered vertex pair of an edge, stored with A <= B.
type Key struct {
	A, B grid.Point
}

// KeyOf normalizes a vertex pair so edge(a,b) and edge(b,a) share a key.
func KeyOf(a, b grid.Point) Key {
	if b.Less(a) {
		a, b = b, a
	}
	return Key{A: a, B: b}
}

// Edge is a straight wire segment between two distinct grid vertices.
type Edge struct {
	ID     EdgeID
	Src    grid.Point
	Dst    grid.Point
	Label  string   // Net name stamped by Prune; shared by the whole component
	Bounds grid.Box // Interactable region used for hit-testing
}

// Key returns the normalized vertex pair of the edge.
func (e Edge) Key() Key {
	return KeyOf(e.Src, e.Dst)
}

// Other returns the endpoint of e that is not p.
func (e Edge) Other(p grid.Point) grid.Point {
	if e.Src == p {
		return e.Dst
	}
	return e.Src
}

// PointSet is a set of grid points, typically the points occupied by device
// ports.
type PointSet map[grid.Point]struct{}

// NewPointSet builds a set from the given points.
func NewPointSet(pts ...grid.Point) PointSet {
	s := make(PointSet, len(pts))
	for _, p := range pts {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set. A nil set is empty.
func (s PointSet) Has(p grid.Point) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p.
func (s PointSet) Add(p grid.Point) {
	s[p] = struct{}{}
}

// Sorted returns the points of the set in grid order.
func (s PointSet) Sorted() []grid.Point {
	pts := make([]grid.Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	sortPoints(pts)
	return pts
}

// Graph is an undirected graph of grid vertices joined by wire edges. It
// owns its edges: callers hold EdgeIDs and read copies.
type Graph struct {
	edges  map[EdgeID]*Edge
	byKey  map[Key]EdgeID
	adj    map[grid.Point]map[EdgeID]struct{} // vertex set and incidence
	names  map[grid.Point]string              // net name per point, from the last Prune
	pinned PointSet                           // ports and label anchors seen by the last Prune
	nextID EdgeID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		edges:  make(map[EdgeID]*Edge),
		byKey:  make(map[Key]EdgeID),
		adj:    make(map[grid.Point]map[EdgeID]struct{}),
		names:  make(map[grid.Point]string),
		pinned: make(PointSet),
	}
}

// Clear removes every vertex and edge. ID allocation continues.
func (g *Graph) Clear() {
	g.edges = make(map[EdgeID]*Edge)
	g.byKey = make(map[Key]EdgeID)
	g.adj = make(map[grid.Point]map[EdgeID]struct{})
	g.names = make(map[grid.Point]string)
}

// AddEdge connects a and b. It is a no-op returning false when a == b, and
// returns the existing edge with false when a and b are already connected.
func (g *Graph) AddEdge(a, b grid.Point) (EdgeID, bool) {
	if a == b {
		return 0, false
	}
	if id, ok := g.byKey[KeyOf(a, b)]; ok {
		return id, false
	}
	g.nextID++
	g.insert(&Edge{ID: g.nextID, Src: a, Dst: b})
	return g.nextID, true
}

// AddPath adds an edge between every consecutive pair of points.
func (g *Graph) AddPath(pts ...grid.Point) {
	for i := 1; i < len(pts); i++ {
		g.AddEdge(pts[i-1], pts[i])
	}
}

func (g *Graph) insert(e *Edge) {
	e.Bounds = grid.NewBox(e.Src, e.Dst)
	g.edges[e.ID] = e
	g.byKey[e.Key()] = e.ID
	g.addVertex(e.Src)
	g.addVertex(e.Dst)
	g.adj[e.Src][e.ID] = struct{}{}
	g.adj[e.Dst][e.ID] = struct{}{}
}

func (g *Graph) addVertex(p grid.Point) {
	if g.adj[p] == nil {
		g.adj[p] = make(map[EdgeID]struct{})
	}
}

// detach removes the edge from every index but leaves its vertices.
func (g *Graph) detach(id EdgeID) (*Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return nil, false
	}
	delete(g.edges, id)
	delete(g.byKey, e.Key())
	delete(g.adj[e.Src], id)
	delete(g.adj[e.Dst], id)
	return e, true
}

// dropIfIsolated removes p when nothing is attached and it is not pinned.
func (g *Graph) dropIfIsolated(p grid.Point) {
	if edges, ok := g.adj[p]; ok && len(edges) == 0 && !g.pinned.Has(p) {
		delete(g.adj, p)
		delete(g.names, p)
	}
}

// DeleteEdge removes the edge. An endpoint left with no edges is removed too
// unless the last Prune saw a port or label anchor there.
func (g *Graph) DeleteEdge(id EdgeID) bool {
	e, ok := g.detach(id)
	if !ok {
		return false
	}
	g.dropIfIsolated(e.Src)
	g.dropIfIsolated(e.Dst)
	return true
}

// Transform moves one edge by t. See TransformAll.
func (g *Graph) Transform(id EdgeID, t grid.Transform) (EdgeID, bool) {
	moved, ok := g.TransformAll([]EdgeID{id}, t)[id]
	return moved, ok
}

// TransformAll moves the edges by t as one selection: all of them are lifted
// out before any is put back, so they never collide with each other's old
// positions. An edge that lands on a stationary edge is deleted and that
// edge's ID reported in its place. An edge collapsing to a point is deleted
// and left out of the result, which maps each moved ID to its current ID.
func (g *Graph) TransformAll(ids []EdgeID, t grid.Transform) map[EdgeID]EdgeID {
	var moving []*Edge
	for _, id := range ids {
		if e, ok := g.detach(id); ok {
			moving = append(moving, e)
		}
	}
	for _, e := range moving {
		g.dropIfIsolated(e.Src)
		g.dropIfIsolated(e.Dst)
	}

	out := make(map[EdgeID]EdgeID, len(moving))
	for _, e := range moving {
		src, dst := t.Apply(e.Src), t.Apply(e.Dst)
		if src == dst {
			continue
		}
		if existing, ok := g.byKey[KeyOf(src, dst)]; ok {
			out[e.ID] = existing
			continue
		}
		g.insert(&Edge{ID: e.ID, Src: src, Dst: dst, Label: e.Label})
		out[e.ID] = e.ID
	}
	return out
}

// Merge absorbs other's vertices and edges, then splits edges at every vertex
// or port point lying strictly inside them so that T-junctions connect.
// Isolated vertices of other survive only on port points.
func (g *Graph) Merge(other *Graph, ports PointSet) {
	for _, e := range other.Edges() {
		g.AddEdge(e.Src, e.Dst)
	}
	for _, p := range other.Vertices() {
		if other.Degree(p) == 0 && ports.Has(p) {
			g.addVertex(p)
		}
	}
	g.split(ports)
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// EdgeBetween returns the edge connecting a and b, if any.
func (g *Graph) EdgeBetween(a, b grid.Point) (Edge, bool) {
	id, ok := g.byKey[KeyOf(a, b)]
	if !ok {
		return Edge{}, false
	}
	return *g.edges[id], true
}

// Edges returns copies of all edges ordered by ID.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Vertices returns all vertices in grid order.
func (g *Graph) Vertices() []grid.Point {
	pts := make([]grid.Point, 0, len(g.adj))
	for p := range g.adj {
		pts = append(pts, p)
	}
	sortPoints(pts)
	return pts
}

// HasVertex reports whether p is a vertex of the graph.
func (g *Graph) HasVertex(p grid.Point) bool {
	_, ok := g.adj[p]
	return ok
}

// Degree returns the number of edges incident to p.
func (g *Graph) Degree(p grid.Point) int {
	return len(g.adj[p])
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// VertexCount returns the number of vertices, isolated ones included.
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool {
	return len(g.adj) == 0
}

// Occupies reports whether p is an endpoint of some edge.
func (g *Graph) Occupies(p grid.Point) bool {
	return len(g.adj[p]) > 0
}

// incident returns the edges at p ordered by ID.
func (g *Graph) incident(p grid.Point) []*Edge {
	out := make([]*Edge, 0, len(g.adj[p]))
	for id := range g.adj[p] {
		out = append(out, g.edges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// VerticesIntersecting returns the vertices inside box, in grid order.
func (g *Graph) VerticesIntersecting(box grid.Box) []grid.Point {
	var pts []grid.Point
	for p := range g.adj {
		if box.Contains(p) {
			pts = append(pts, p)
		}
	}
	sortPoints(pts)
	return pts
}

// EdgesIntersecting returns the IDs of edges whose bounds touch box.
func (g *Graph) EdgesIntersecting(box grid.Box) []EdgeID {
	var ids []EdgeID
	for id, e := range g.edges {
		if e.Bounds.Intersects(box) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Selectable returns the first edge under p once skip matches have been
// passed over. Edges are enumerated in ID order. count is shared with the
// caller's other element sets and is incremented for every match skipped.
func (g *Graph) Selectable(p grid.Point, skip int, count *int) (EdgeID, bool) {
	for _, e := range g.Edges() {
		if !e.Bounds.Contains(p) || !grid.OnSegment(p, e.Src, e.Dst) {
			continue
		}
		if *count >= skip {
			return e.ID, true
		}
		*count++
	}
	return 0, false
}

// BoundingBox returns the box around every vertex, or an empty box.
func (g *Graph) BoundingBox() grid.Box {
	bb := grid.EmptyBox()
	for p := range g.adj {
		bb = bb.Expand(p)
	}
	return bb
}

// NetNameAt returns the net name at p as of the last Prune: the name of the
// component p belongs to, or of an edge passing through p. It returns ""
// when nothing named is there.
func (g *Graph) NetNameAt(p grid.Point) string {
	if name, ok := g.names[p]; ok {
		return name
	}
	for _, e := range g.Edges() {
		if e.Label != "" && grid.OnSegment(p, e.Src, e.Dst) {
			return e.Label
		}
	}
	return ""
}

// NetNames returns every distinct net name assigned by the last Prune,
// sorted.
func (g *Graph) NetNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range g.names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func sortPoints(pts []grid.Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
}
