package device

import "github.com/OpenTraceLab/circe/pkg/grid"

// Port is a named connection point at a fixed offset from the device origin.
type Port struct {
	Name   string
	Offset grid.Point
}

// Graphics is the per-class data shared by every instance: port offsets and
// the selection bounds, both in device coordinates.
type Graphics struct {
	Ports  []Port
	Bounds grid.Box
}

var twoTerminal = Graphics{
	Ports: []Port{
		{Name: "+", Offset: grid.Pt(0, 3)},
		{Name: "-", Offset: grid.Pt(0, -3)},
	},
	Bounds: grid.NewBox(grid.Pt(-2, -3), grid.Pt(2, 3)),
}

// catalog is built once at package init and never written afterwards.
var catalog = map[Class]*Graphics{
	Resistor:      &twoTerminal,
	Capacitor:     &twoTerminal,
	Inductor:      &twoTerminal,
	VoltageSource: &twoTerminal,
	CurrentSource: &twoTerminal,
	// port order is the SPICE order: drain, gate, source, bulk
	NMOS: {
		Ports: []Port{
			{Name: "d", Offset: grid.Pt(2, 3)},
			{Name: "g", Offset: grid.Pt(-2, 0)},
			{Name: "s", Offset: grid.Pt(2, -3)},
			{Name: "b", Offset: grid.Pt(2, 0)},
		},
		Bounds: grid.NewBox(grid.Pt(-2, -3), grid.Pt(2, 3)),
	},
	PMOS: {
		Ports: []Port{
			{Name: "d", Offset: grid.Pt(2, -3)},
			{Name: "g", Offset: grid.Pt(-2, 0)},
			{Name: "s", Offset: grid.Pt(2, 3)},
			{Name: "b", Offset: grid.Pt(2, 0)},
		},
		Bounds: grid.NewBox(grid.Pt(-2, -3), grid.Pt(2, 3)),
	},
	Ground: {
		Ports: []Port{
			{Name: "gnd", Offset: grid.Pt(0, 2)},
		},
		Bounds: grid.NewBox(grid.Pt(-1, -1), grid.Pt(1, 2)),
	},
}

// GraphicsFor returns the shared catalog entry for c. Callers must not
// modify it.
func GraphicsFor(c Class) *Graphics {
	return catalog[c]
}
