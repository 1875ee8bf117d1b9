package device

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/circe/pkg/grid"
)

// ID identifies a device inside a Devices collection.
type ID uint64

// Device is one placed instance.
type Device struct {
	ID        ID
	Class     Class
	Seq       int            // instance number within the SPICE prefix (R1, R2, ...)
	Transform grid.Transform // device coordinates -> schematic grid
	Value     string         // value or extra parameters, emitted verbatim

	// OpPoint holds port voltages from the last operating point, keyed by
	// port name. Ports without a result are absent.
	OpPoint map[string]float64
}

// PlacedPort is a port resolved to its schematic position.
type PlacedPort struct {
	Name  string
	Point grid.Point
}

// Graphics returns the shared catalog entry for the device's class.
func (d Device) Graphics() *Graphics {
	return GraphicsFor(d.Class)
}

// Name returns the instance designator, e.g. "R3" or "M1". Ground devices
// are named "GND<n>".
func (d Device) Name() string {
	if d.Class == Ground {
		return fmt.Sprintf("GND%d", d.Seq)
	}
	return fmt.Sprintf("%s%d", d.Class.Prefix(), d.Seq)
}

// Ports returns the device's ports at their schematic positions.
func (d Device) Ports() []PlacedPort {
	g := d.Graphics()
	out := make([]PlacedPort, len(g.Ports))
	for i, p := range g.Ports {
		out[i] = PlacedPort{Name: p.Name, Point: d.Transform.Apply(p.Offset)}
	}
	return out
}

// Bounds returns the selection box in schematic coordinates.
func (d Device) Bounds() grid.Box {
	return d.Transform.ApplyBox(d.Graphics().Bounds)
}

// SpiceLine renders the element line for the device, newline included.
// node resolves the net name at a grid point. Ground returns "".
//
//	R<n> n+ n- value     (likewise C, L, V, I)
//	M<n> nd ng ns nb mosn|mosp [params]
func (d Device) SpiceLine(node func(grid.Point) string) string {
	if d.Class == Ground {
		return ""
	}

	fields := []string{d.Name()}
	for _, p := range d.Ports() {
		fields = append(fields, node(p.Point))
	}
	if model := d.Class.Model(); model != "" {
		fields = append(fields, model)
	}
	if v := strings.TrimSpace(d.Value); v != "" {
		fields = append(fields, v)
	}
	return strings.Join(fields, " ") + "\n"
}

// Summary returns a short one-line description, e.g. "R1 resistor 10k".
func (d Device) Summary() string {
	parts := []string{d.Name(), d.Class.String()}
	if d.Value != "" {
		parts = append(parts, d.Value)
	}
	return strings.Join(parts, " ")
}
