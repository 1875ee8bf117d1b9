// Package circuit is the schematic controller. It owns the net graph, the
// device collection and the labels, turns user events into edits through the
// gesture state machine, and re-prunes the graph after every edit so net
// names are always current.
package circuit

import (
	"io"
	"log"

	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
	"github.com/OpenTraceLab/circe/pkg/netlist"
	"github.com/OpenTraceLab/circe/pkg/nets"
)

// Reply tells the selection layer what an Update produced.
type Reply struct {
	// NewElement is a freshly placed element the caller may pick up and
	// move, or nil.
	NewElement Element
	// ClearPassive is set when committed content changed so cached
	// hover/selection state should be dropped.
	ClearPassive bool
}

// Circuit holds schematic content: nets, devices and labels.
type Circuit struct {
	state   State
	graph   *nets.Graph
	devices *device.Devices
	labels  *nets.Labels

	cursor  grid.Point
	infoBar string

	logger *log.Logger
}

// New returns an empty circuit in the Idle state. A nil logger discards
// output.
func New(logger *log.Logger) *Circuit {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Circuit{
		state:   Idle{},
		graph:   nets.NewGraph(),
		devices: device.NewDevices(),
		labels:  nets.NewLabels(),
		logger:  logger,
	}
}

// Graph returns the net graph. Callers must not modify it directly.
func (c *Circuit) Graph() *nets.Graph { return c.graph }

// Devices returns the device collection.
func (c *Circuit) Devices() *device.Devices { return c.devices }

// Labels returns the net labels.
func (c *Circuit) Labels() *nets.Labels { return c.labels }

// State returns the gesture state.
func (c *Circuit) State() State { return c.state }

// IsIdle reports whether no gesture is in progress.
func (c *Circuit) IsIdle() bool {
	_, ok := c.state.(Idle)
	return ok
}

// Cursor returns the snapped cursor position.
func (c *Circuit) Cursor() grid.Point { return c.cursor }

// InfoBar returns the name of the net under the cursor, or "".
func (c *Circuit) InfoBar() string { return c.infoBar }

// Preview returns the uncommitted wire being drawn, or nil.
func (c *Circuit) Preview() *nets.Graph {
	if w, ok := c.state.(Wiring); ok && w.Active {
		return w.Preview
	}
	return nil
}

func (c *Circuit) occupies(p grid.Point) bool {
	return c.graph.Occupies(p) || c.devices.AnyPortOccupies(p)
}

// Update feeds one event through the state machine, performs the resulting
// command and prunes.
func (c *Circuit) Update(ev Event) Reply {
	if pm, ok := ev.(PointerMoved); ok {
		c.cursor = grid.Snap(pm.X, pm.Y)
	}

	next, cmd := Step(c.state, ev, c.cursor, c.occupies)
	c.state = next

	reply := c.apply(cmd)
	c.prune()
	return reply
}

func (c *Circuit) apply(cmd Command) Reply {
	switch cmd := cmd.(type) {
	case CommitWire:
		c.graph.Merge(cmd.Path, c.devices.PortPoints())
		c.logger.Printf("circuit: committed %d wire segments", cmd.Path.EdgeCount())
		return Reply{ClearPassive: true}

	case NewDevice:
		id := c.devices.New(cmd.Class)
		c.devices.Transform(id, grid.Translate(c.cursor))
		c.logger.Printf("circuit: new %s at %v", cmd.Class, c.cursor)
		return Reply{NewElement: DeviceElement{ID: id}}

	case NewLabel:
		id := c.labels.New("", c.cursor)
		c.logger.Printf("circuit: new label at %v", c.cursor)
		return Reply{NewElement: LabelElement{ID: id}}

	case DeleteElements:
		c.deleteElements(cmd.Elements)
		return Reply{ClearPassive: true}

	case ApplyOpPoint:
		c.devices.ApplyOpPoint(cmd.Results, c.graph.NetNameAt)
		return Reply{ClearPassive: true}
	}
	return Reply{}
}

// anchors returns every naming anchor: labels and ground ports.
func (c *Circuit) anchors() []nets.Anchor {
	return append(c.labels.Anchors(), c.devices.GroundAnchors()...)
}

// prune renames the nets and refreshes the info bar for the new content.
func (c *Circuit) prune() {
	c.graph.Prune(c.devices.PortPoints(), c.anchors())
	c.infoBar = c.graph.NetNameAt(c.cursor)
}

// Bounds returns the box enclosing all content.
func (c *Circuit) Bounds() grid.Box {
	return c.graph.BoundingBox().
		Union(c.devices.BoundingBox()).
		Union(c.labels.BoundingBox())
}

// IntersectingBox returns every element whose bounds meet box: edges, then
// devices, then labels.
func (c *Circuit) IntersectingBox(box grid.Box) []Element {
	var out []Element
	for _, id := range c.graph.EdgesIntersecting(box) {
		out = append(out, EdgeElement{ID: id})
	}
	for _, id := range c.devices.IntersectingBox(box) {
		out = append(out, DeviceElement{ID: id})
	}
	for _, id := range c.labels.IntersectingBox(box) {
		out = append(out, LabelElement{ID: id})
	}
	return out
}

// Selectable returns the first element under p after skipping skip matches.
// Labels are considered before edges and edges before devices. count is
// incremented for every match skipped, so repeated calls with a growing
// skip cycle through overlapping elements.
func (c *Circuit) Selectable(p grid.Point, skip int, count *int) (Element, bool) {
	if id, ok := c.labels.Selectable(p, skip, count); ok {
		return LabelElement{ID: id}, true
	}
	if id, ok := c.graph.Selectable(p, skip, count); ok {
		return EdgeElement{ID: id}, true
	}
	if id, ok := c.devices.Selectable(p, skip, count); ok {
		return DeviceElement{ID: id}, true
	}
	return nil, false
}

// BoundsOf returns the bounds of a live element.
func (c *Circuit) BoundsOf(e Element) (grid.Box, bool) {
	switch e := e.(type) {
	case EdgeElement:
		if edge, ok := c.graph.Edge(e.ID); ok {
			return edge.Bounds, true
		}
	case DeviceElement:
		if d, ok := c.devices.Get(e.ID); ok {
			return d.Bounds(), true
		}
	case LabelElement:
		if l, ok := c.labels.Get(e.ID); ok {
			return l.Bounds(), true
		}
	}
	return grid.EmptyBox(), false
}

// Contains reports whether p hits a live element.
func (c *Circuit) Contains(e Element, p grid.Point) bool {
	if edge, ok := e.(EdgeElement); ok {
		ed, ok := c.graph.Edge(edge.ID)
		return ok && grid.OnSegment(p, ed.Src, ed.Dst)
	}
	b, ok := c.BoundsOf(e)
	return ok && b.Contains(p)
}

// MoveElements applies t to every element in place, then prunes. It returns
// the elements as they are now identified. Selected edges move together; an
// edge that lands on an unselected edge is merged into it and reported under
// that edge's ID.
func (c *Circuit) MoveElements(elements []Element, t grid.Transform) []Element {
	var edges []nets.EdgeID
	for _, e := range elements {
		if e, ok := e.(EdgeElement); ok {
			edges = append(edges, e.ID)
		}
	}
	movedEdges := c.graph.TransformAll(edges, t)

	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		switch e := e.(type) {
		case EdgeElement:
			if id, ok := movedEdges[e.ID]; ok {
				out = append(out, EdgeElement{ID: id})
			}
		case DeviceElement:
			if c.devices.Transform(e.ID, t) {
				out = append(out, e)
			}
		case LabelElement:
			if c.labels.Transform(e.ID, t) {
				out = append(out, e)
			}
		}
	}
	c.prune()
	return out
}

// CopyElements inserts transformed copies of the elements and returns the
// copies. Copied devices get fresh designators; copied labels keep their
// names.
func (c *Circuit) CopyElements(elements []Element, t grid.Transform) []Element {
	var out []Element
	for _, e := range elements {
		switch e := e.(type) {
		case EdgeElement:
			edge, ok := c.graph.Edge(e.ID)
			if !ok {
				continue
			}
			if id, ok := c.graph.AddEdge(t.Apply(edge.Src), t.Apply(edge.Dst)); ok {
				out = append(out, EdgeElement{ID: id})
			}
		case DeviceElement:
			d, ok := c.devices.Get(e.ID)
			if !ok {
				continue
			}
			d.Transform = d.Transform.Then(t)
			out = append(out, DeviceElement{ID: c.devices.Insert(d)})
		case LabelElement:
			l, ok := c.labels.Get(e.ID)
			if !ok {
				continue
			}
			l.Anchor = t.Apply(l.Anchor)
			out = append(out, LabelElement{ID: c.labels.Insert(l)})
		}
	}
	c.prune()
	return out
}

// DeleteElements removes the elements and prunes. Stale elements are
// ignored.
func (c *Circuit) DeleteElements(elements []Element) {
	c.deleteElements(elements)
	c.prune()
}

func (c *Circuit) deleteElements(elements []Element) {
	for _, e := range elements {
		switch e := e.(type) {
		case EdgeElement:
			c.graph.DeleteEdge(e.ID)
		case DeviceElement:
			c.devices.Delete(e.ID)
		case LabelElement:
			c.labels.Delete(e.ID)
		}
	}
}

// AddWire commits a polyline through pts as if drawn by hand.
func (c *Circuit) AddWire(pts ...grid.Point) {
	path := nets.NewGraph()
	path.AddPath(pts...)
	c.graph.Merge(path, c.devices.PortPoints())
	c.prune()
}

// PlaceDevice inserts a device of class placed by t. An empty value keeps
// the class default.
func (c *Circuit) PlaceDevice(class device.Class, t grid.Transform, value string) device.ID {
	id := c.devices.New(class)
	c.devices.Transform(id, t)
	if value != "" {
		c.devices.SetValue(id, value)
	}
	c.prune()
	return id
}

// PlaceLabel inserts a label. An empty name gets a default name that does
// not count as user-assigned.
func (c *Circuit) PlaceLabel(name string, at grid.Point) nets.LabelID {
	id := c.labels.New(name, at)
	c.prune()
	return id
}

// RenameLabel gives a label a user-chosen name.
func (c *Circuit) RenameLabel(id nets.LabelID, name string) bool {
	if !c.labels.Rename(id, name) {
		return false
	}
	c.prune()
	return true
}

// ApplyOpPoint annotates device ports with the voltages in results.
func (c *Circuit) ApplyOpPoint(results device.Voltages) {
	c.devices.ApplyOpPoint(results, c.graph.NetNameAt)
}

// Netlist returns the netlist text for the current content.
func (c *Circuit) Netlist() string {
	return netlist.Serialize(c.devices, c.graph)
}

// ExportNetlist writes the netlist to path, or to netlist.DefaultFilename
// when path is empty. Failures are *netlist.ExportError.
func (c *Circuit) ExportNetlist(path string) error {
	if path == "" {
		path = netlist.DefaultFilename
	}
	if err := netlist.Export(path, c.devices, c.graph); err != nil {
		return err
	}
	c.logger.Printf("circuit: netlist written to %s", path)
	return nil
}
