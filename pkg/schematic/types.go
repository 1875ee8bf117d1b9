// Package schematic reads Circe schematic scripts, an S-expression format
// listing devices, wires and labels, and replays them into a circuit.
//
//	(circe_sch (version 1)
//	  (device (class r) (at 0 0) (rot 90) (value "10k"))
//	  (wire (pts (xy 0 3) (xy 0 6) (xy 4 6)))
//	  (label "VDD" (at 4 6)))
package schematic

import (
	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
)

// Version is the newest script version this package reads.
const Version = 1

// Schematic is the parsed content of a script.
type Schematic struct {
	Version int
	Devices []Device
	Wires   []Wire
	Labels  []Label
}

// Device is a (device ...) entry.
type Device struct {
	Class  device.Class
	At     grid.Point
	Rot    int    // degrees, counter-clockwise, multiple of 90
	Mirror string // "", "x" or "y"
	Value  string // empty keeps the class default
}

// Transform returns the placement: rotation, then mirroring, then the
// translation to At.
func (d Device) Transform() grid.Transform {
	t := grid.Identity()
	for i := 0; i < (d.Rot/90)%4; i++ {
		t = t.Then(grid.Rotate90())
	}
	switch d.Mirror {
	case "x":
		t = t.Then(grid.MirrorX())
	case "y":
		t = t.Then(grid.MirrorY())
	}
	return t.Then(grid.Translate(d.At))
}

// Wire is a polyline drawn through Points.
type Wire struct {
	Points []grid.Point
}

// Label is a (label "name" (at x y)) entry.
type Label struct {
	Name string
	At   grid.Point
}
