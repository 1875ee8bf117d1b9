package device

import (
	"sort"

	"github.com/OpenTraceLab/circe/pkg/grid"
	"github.com/OpenTraceLab/circe/pkg/nets"
)

// GroundNet is the SPICE name of the reference node.
const GroundNet = "0"

// Voltages looks up a node voltage in a simulation result.
type Voltages interface {
	Voltage(node string) (float64, bool)
}

// Devices owns every placed device. The net graph never sees it directly;
// it only consumes PortPoints and GroundAnchors.
type Devices struct {
	items    map[ID]*Device
	nextID   ID
	seq      map[string]int   // last instance number per prefix
	defaults map[Class]string // overrides Class.DefaultValue
}

// NewDevices creates an empty collection.
func NewDevices() *Devices {
	return &Devices{
		items:    make(map[ID]*Device),
		seq:      make(map[string]int),
		defaults: make(map[Class]string),
	}
}

// SetDefault overrides the value given to newly placed devices of class c.
func (ds *Devices) SetDefault(c Class, value string) {
	ds.defaults[c] = value
}

// New places a device of class c at the origin with its default value.
func (ds *Devices) New(c Class) ID {
	value, ok := ds.defaults[c]
	if !ok {
		value = c.DefaultValue()
	}
	return ds.Insert(Device{Class: c, Transform: grid.Identity(), Value: value})
}

// Insert stores a copy of d under a fresh ID and instance number.
func (ds *Devices) Insert(d Device) ID {
	ds.nextID++
	d.ID = ds.nextID
	key := seqKey(d.Class)
	ds.seq[key]++
	d.Seq = ds.seq[key]
	d.OpPoint = nil
	ds.items[d.ID] = &d
	return d.ID
}

func seqKey(c Class) string {
	if c == Ground {
		return "GND"
	}
	return c.Prefix()
}

// Delete removes the device.
func (ds *Devices) Delete(id ID) bool {
	if _, ok := ds.items[id]; !ok {
		return false
	}
	delete(ds.items, id)
	return true
}

// Get returns a copy of the device.
func (ds *Devices) Get(id ID) (Device, bool) {
	d, ok := ds.items[id]
	if !ok {
		return Device{}, false
	}
	return *d, true
}

// SetValue replaces the device's value string.
func (ds *Devices) SetValue(id ID, value string) bool {
	d, ok := ds.items[id]
	if !ok {
		return false
	}
	d.Value = value
	return true
}

// Transform applies t after the device's current placement.
func (ds *Devices) Transform(id ID, t grid.Transform) bool {
	d, ok := ds.items[id]
	if !ok {
		return false
	}
	d.Transform = d.Transform.Then(t)
	return true
}

// Len returns the number of devices.
func (ds *Devices) Len() int {
	return len(ds.items)
}

// All returns copies of every device ordered by ID. This is the netlist
// enumeration order.
func (ds *Devices) All() []Device {
	out := make([]Device, 0, len(ds.items))
	for _, d := range ds.items {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PortPoints returns every grid point occupied by a port.
func (ds *Devices) PortPoints() nets.PointSet {
	pts := make(nets.PointSet)
	for _, d := range ds.items {
		for _, p := range d.Ports() {
			pts.Add(p.Point)
		}
	}
	return pts
}

// AnyPortOccupies reports whether some port sits on p.
func (ds *Devices) AnyPortOccupies(p grid.Point) bool {
	for _, d := range ds.items {
		for _, port := range d.Ports() {
			if port.Point == p {
				return true
			}
		}
	}
	return false
}

// GroundAnchors returns a naming anchor on every ground port so their nets
// are named GroundNet.
func (ds *Devices) GroundAnchors() []nets.Anchor {
	var out []nets.Anchor
	for _, d := range ds.All() {
		if d.Class != Ground {
			continue
		}
		for _, p := range d.Ports() {
			out = append(out, nets.Anchor{Point: p.Point, Name: GroundNet, Priority: nets.PriorityGround})
		}
	}
	return out
}

// IntersectingBox returns the devices whose bounds touch box.
func (ds *Devices) IntersectingBox(box grid.Box) []ID {
	var ids []ID
	for _, d := range ds.All() {
		if d.Bounds().Intersects(box) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Selectable works like nets.Graph.Selectable over devices.
func (ds *Devices) Selectable(p grid.Point, skip int, count *int) (ID, bool) {
	for _, d := range ds.All() {
		if !d.Bounds().Contains(p) {
			continue
		}
		if *count >= skip {
			return d.ID, true
		}
		*count++
	}
	return 0, false
}

// BoundingBox returns the box around every device.
func (ds *Devices) BoundingBox() grid.Box {
	bb := grid.EmptyBox()
	for _, d := range ds.items {
		bb = bb.Union(d.Bounds())
	}
	return bb
}

// ApplyOpPoint annotates every port with the voltage of its net. Nodes in
// the result that match no port are ignored; ports without a result stay
// unannotated.
func (ds *Devices) ApplyOpPoint(v Voltages, node func(grid.Point) string) {
	for _, d := range ds.items {
		d.OpPoint = make(map[string]float64)
		for _, p := range d.Ports() {
			name := node(p.Point)
			if name == "" {
				continue
			}
			if volts, ok := v.Voltage(name); ok {
				d.OpPoint[p.Name] = volts
			}
		}
	}
}
