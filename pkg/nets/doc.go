// Package nets implements the wire graph of a schematic: grid vertices joined
// by straight wire edges, the labels that name them, and the pruning pass
// that keeps the graph normalized and every net named.
//
// # Overview
//
// Wiring is incremental. A gesture draws a preview with Route into a
// scratch Graph, which is folded into the schematic's graph with Merge.
// After every edit the owner calls Prune with the points occupied by device
// ports and the anchors of all labels:
//
//	g := nets.NewGraph()
//	preview := nets.NewGraph()
//	preview.Route(grid.Pt(0, 0), grid.Pt(4, 3))
//	g.Merge(preview, ports)
//	g.Prune(ports, labels.Anchors())
//	name := g.NetNameAt(grid.Pt(4, 3))
//
// # Pruning
//
// Prune runs in two phases:
//  1. Structural cleanup. Edges are split at vertices and port points lying
//     inside them, collinear edges meeting at an unpinned degree-2 vertex are
//     fused, and unpinned isolated vertices are dropped.
//  2. Name assignment. Connected components are computed over vertices and
//     port points, extended by label anchors. Each component takes the name
//     of its best anchor (ground, then user labels, then default labels; ties
//     go to the lowest anchor point) or a fresh n<seq> name.
//
// # Invariants
//
//   - No edge has equal endpoints and no vertex pair has two edges.
//   - Every edge endpoint is a vertex.
//   - Vertices on port points or label anchors survive pruning.
//   - All edges of one component carry the same Label after Prune.
package nets
