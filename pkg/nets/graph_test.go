package nets

import (
	"testing"

	"github.com/OpenTraceLab/circe/pkg/grid"
)

func TestAddEdgeRejectsZeroLength(t *testing.T) {
	g := NewGraph()
	if _, added := g.AddEdge(grid.Pt(1, 1), grid.Pt(1, 1)); added {
		t.Fatalf("zero-length edge should be rejected")
	}
	if !g.IsEmpty() {
		t.Errorf("graph should stay empty, has %d vertices", g.VertexCount())
	}
}

func TestAddEdgeNoParallelEdges(t *testing.T) {
	g := NewGraph()
	a, b := grid.Pt(0, 0), grid.Pt(0, 3)

	id1, added := g.AddEdge(a, b)
	if !added {
		t.Fatalf("first AddEdge should insert")
	}
	id2, added := g.AddEdge(b, a)
	if added {
		t.Errorf("reversed AddEdge should not insert a parallel edge")
	}
	if id1 != id2 {
		t.Errorf("expected existing edge %d, got %d", id1, id2)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected 1 edge, got %d", g.EdgeCount())
	}
}

func TestOccupies(t *testing.T) {
	g := NewGraph()
	g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 3))

	if !g.Occupies(grid.Pt(0, 0)) || !g.Occupies(grid.Pt(0, 3)) {
		t.Errorf("edge endpoints should be occupied")
	}
	if g.Occupies(grid.Pt(0, 1)) {
		t.Errorf("edge interior is not an endpoint")
	}
}

func TestDeleteEdgeRemovesIsolatedVertex(t *testing.T) {
	g := NewGraph()
	g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 3))
	id, _ := g.AddEdge(grid.Pt(0, 3), grid.Pt(3, 3))
	g.Prune(nil, nil)

	if !g.DeleteEdge(id) {
		t.Fatalf("DeleteEdge returned false")
	}
	if g.HasVertex(grid.Pt(3, 3)) {
		t.Errorf("isolated unprotected vertex (3,3) should be removed")
	}
	if !g.HasVertex(grid.Pt(0, 3)) {
		t.Errorf("vertex (0,3) still has an edge and must stay")
	}
	if g.DeleteEdge(id) {
		t.Errorf("deleting a stale ID should report false")
	}
}

func TestDeleteEdgeKeepsPortVertex(t *testing.T) {
	g := NewGraph()
	id, _ := g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 3))
	ports := NewPointSet(grid.Pt(0, 0))
	g.Prune(ports, nil)

	g.DeleteEdge(id)
	if !g.HasVertex(grid.Pt(0, 0)) {
		t.Errorf("port vertex should survive edge deletion")
	}
	if g.HasVertex(grid.Pt(0, 3)) {
		t.Errorf("free vertex should be removed")
	}

	g.Prune(ports, nil)
	if !g.HasVertex(grid.Pt(0, 0)) {
		t.Errorf("port vertex should survive prune with degree 0")
	}
}

func TestMergeSplitsTJunction(t *testing.T) {
	g := NewGraph()
	g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 4))

	preview := NewGraph()
	preview.Route(grid.Pt(-2, 2), grid.Pt(0, 2))
	g.Merge(preview, nil)

	if g.Degree(grid.Pt(0, 2)) != 3 {
		t.Fatalf("junction (0,2) should have degree 3, got %d", g.Degree(grid.Pt(0, 2)))
	}
	if _, ok := g.EdgeBetween(grid.Pt(0, 0), grid.Pt(0, 4)); ok {
		t.Errorf("the crossed edge should have been split")
	}

	g.Prune(nil, nil)
	name := g.NetNameAt(grid.Pt(0, 0))
	for _, e := range g.Edges() {
		if e.Label != name {
			t.Errorf("edge %v-%v named %q, want %q", e.Src, e.Dst, e.Label, name)
		}
	}
}

func TestMergeKeepsIsolatedPortVertex(t *testing.T) {
	other := NewGraph()
	other.addVertex(grid.Pt(7, 7))
	other.addVertex(grid.Pt(8, 8))

	g := NewGraph()
	g.Merge(other, NewPointSet(grid.Pt(7, 7)))
	if !g.HasVertex(grid.Pt(7, 7)) {
		t.Errorf("isolated port vertex should be merged")
	}
	if g.HasVertex(grid.Pt(8, 8)) {
		t.Errorf("isolated free vertex should not be merged")
	}
}

func TestTransformMovesEdge(t *testing.T) {
	g := NewGraph()
	id, _ := g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 3))

	moved, ok := g.Transform(id, grid.Translate(grid.Pt(5, 0)))
	if !ok || moved != id {
		t.Fatalf("Transform = (%d, %v), want (%d, true)", moved, ok, id)
	}
	e, _ := g.Edge(id)
	if e.Src != grid.Pt(5, 0) || e.Dst != grid.Pt(5, 3) {
		t.Errorf("edge not moved: %v-%v", e.Src, e.Dst)
	}
	if g.HasVertex(grid.Pt(0, 0)) {
		t.Errorf("old vertex should be gone")
	}
}

func TestTransformAllMovesSelectionTogether(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddEdge(grid.Pt(0, 0), grid.Pt(2, 0))
	b, _ := g.AddEdge(grid.Pt(2, 0), grid.Pt(4, 0))

	// a lands where b used to be
	moved := g.TransformAll([]EdgeID{a, b}, grid.Translate(grid.Pt(2, 0)))
	if len(moved) != 2 || moved[a] != a || moved[b] != b {
		t.Fatalf("TransformAll = %v, want both IDs kept", moved)
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("edges = %v, want 2", g.Edges())
	}
	if e, ok := g.EdgeBetween(grid.Pt(2, 0), grid.Pt(4, 0)); !ok || e.ID != a {
		t.Errorf("(2,0)-(4,0) = %+v, want edge %d", e, a)
	}
	if e, ok := g.EdgeBetween(grid.Pt(4, 0), grid.Pt(6, 0)); !ok || e.ID != b {
		t.Errorf("(4,0)-(6,0) = %+v, want edge %d", e, b)
	}
	if g.HasVertex(grid.Pt(0, 0)) {
		t.Errorf("vacated vertex should be gone")
	}
}

func TestTransformAllOntoStationaryEdge(t *testing.T) {
	g := NewGraph()
	still, _ := g.AddEdge(grid.Pt(10, 0), grid.Pt(12, 0))
	mover, _ := g.AddEdge(grid.Pt(10, 2), grid.Pt(12, 2))

	moved := g.TransformAll([]EdgeID{mover}, grid.Translate(grid.Pt(0, -2)))
	if moved[mover] != still {
		t.Errorf("TransformAll = %v, want %d merged into %d", moved, mover, still)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("edges = %v, want 1", g.Edges())
	}
	if _, ok := g.Edge(mover); ok {
		t.Errorf("merged edge should no longer resolve")
	}
}

func TestSpatialQueries(t *testing.T) {
	g := NewGraph()
	g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 4))
	far, _ := g.AddEdge(grid.Pt(10, 10), grid.Pt(12, 10))

	box := grid.NewBox(grid.Pt(-1, 1), grid.Pt(1, 2))
	if got := g.EdgesIntersecting(box); len(got) != 1 || got[0] == far {
		t.Errorf("EdgesIntersecting = %v", got)
	}
	if got := g.VerticesIntersecting(box); len(got) != 0 {
		t.Errorf("no vertex inside the box, got %v", got)
	}
	if got := g.VerticesIntersecting(grid.NewBox(grid.Pt(9, 9), grid.Pt(20, 20))); len(got) != 2 {
		t.Errorf("expected 2 vertices, got %v", got)
	}

	want := grid.NewBox(grid.Pt(0, 0), grid.Pt(12, 10))
	if bb := g.BoundingBox(); bb != want {
		t.Errorf("BoundingBox = %+v, want %+v", bb, want)
	}
	if !NewGraph().BoundingBox().IsEmpty() {
		t.Errorf("empty graph should have an empty bounding box")
	}
}

func TestSelectableClickThrough(t *testing.T) {
	g := NewGraph()
	first, _ := g.AddEdge(grid.Pt(0, 0), grid.Pt(0, 4))
	second, _ := g.AddEdge(grid.Pt(0, 2), grid.Pt(4, 2))
	p := grid.Pt(0, 2)

	count := 0
	id, ok := g.Selectable(p, 0, &count)
	if !ok || id != first || count != 0 {
		t.Errorf("skip 0: got (%d, %v, count %d)", id, ok, count)
	}

	count = 0
	id, ok = g.Selectable(p, 1, &count)
	if !ok || id != second || count != 1 {
		t.Errorf("skip 1: got (%d, %v, count %d)", id, ok, count)
	}

	count = 0
	if _, ok := g.Selectable(p, 2, &count); ok {
		t.Errorf("skip 2: nothing left to select")
	}
	if count != 2 {
		t.Errorf("count should report 2 skipped matches, got %d", count)
	}
}

func TestSelectableIgnoresOffSegmentPoints(t *testing.T) {
	g := NewGraph()
	g.AddEdge(grid.Pt(0, 0), grid.Pt(4, 4))
	count := 0
	if _, ok := g.Selectable(grid.Pt(1, 3), 0, &count); ok {
		t.Errorf("(1,3) is inside the diagonal's box but not on it")
	}
}
