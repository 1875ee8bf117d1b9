package circuit

import (
	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
	"github.com/OpenTraceLab/circe/pkg/nets"
)

// State is the gesture state of the editor.
type State interface {
	isState()
}

// Idle accepts placement and wiring commands.
type Idle struct{}

// Wiring is the wire-drawing mode. While Active, a path is being drawn from
// Anchor to the cursor and Preview holds the routed, uncommitted segments.
type Wiring struct {
	Active  bool
	Anchor  grid.Point
	Preview *nets.Graph
}

func (Idle) isState()   {}
func (Wiring) isState() {}

// Event is one discrete user input. Each event causes exactly one
// transition.
type Event interface {
	isEvent()
}

type (
	// PointerMoved reports an unsnapped pointer position in grid units.
	PointerMoved struct{ X, Y float64 }
	// BeginWire enters wiring mode, dropping any unfinished path.
	BeginWire struct{}
	// PlacePoint is a click at the cursor.
	PlacePoint struct{}
	// Cancel drops the path being drawn but stays in wiring mode.
	Cancel struct{}
	// Escape returns to Idle from any state.
	Escape struct{}
	// PlaceDevice creates a device of Class at the cursor.
	PlaceDevice struct{ Class device.Class }
	// PlaceLabel creates a default-named label at the cursor.
	PlaceLabel struct{}
	// Delete removes the given elements.
	Delete struct{ Elements []Element }
	// OpPoint annotates devices with simulation results.
	OpPoint struct{ Results device.Voltages }
)

func (PointerMoved) isEvent() {}
func (BeginWire) isEvent()    {}
func (PlacePoint) isEvent()   {}
func (Cancel) isEvent()       {}
func (Escape) isEvent()       {}
func (PlaceDevice) isEvent()  {}
func (PlaceLabel) isEvent()   {}
func (Delete) isEvent()       {}
func (OpPoint) isEvent()      {}

// Command is the side effect a transition asks the controller to perform.
// A nil Command means nothing to do.
type Command interface {
	isCommand()
}

type (
	// CommitWire merges Path into the schematic's net graph.
	CommitWire struct{ Path *nets.Graph }
	// NewDevice creates a device at the cursor.
	NewDevice struct{ Class device.Class }
	// NewLabel creates a label at the cursor.
	NewLabel struct{}
	// DeleteElements removes elements from the schematic.
	DeleteElements struct{ Elements []Element }
	// ApplyOpPoint annotates device ports.
	ApplyOpPoint struct{ Results device.Voltages }
)

func (CommitWire) isCommand()     {}
func (NewDevice) isCommand()      {}
func (NewLabel) isCommand()       {}
func (DeleteElements) isCommand() {}
func (ApplyOpPoint) isCommand()   {}

// Step is the transition function of the gesture state machine. cursor is the
// snapped cursor position after the event and occupied reports whether a
// point already carries a wire end or a device port. Step does not modify
// its inputs.
func Step(s State, ev Event, cursor grid.Point, occupied func(grid.Point) bool) (State, Command) {
	if s == nil {
		s = Idle{}
	}

	switch ev := ev.(type) {
	case Escape:
		return Idle{}, nil
	case BeginWire:
		return Wiring{}, nil
	case Delete:
		return s, DeleteElements{Elements: ev.Elements}
	case OpPoint:
		return s, ApplyOpPoint{Results: ev.Results}
	}

	switch s := s.(type) {
	case Idle:
		switch ev := ev.(type) {
		case PlaceDevice:
			return s, NewDevice{Class: ev.Class}
		case PlaceLabel:
			return s, NewLabel{}
		}
		return s, nil

	case Wiring:
		switch ev.(type) {
		case PointerMoved:
			if !s.Active {
				return s, nil
			}
			return Wiring{Active: true, Anchor: s.Anchor, Preview: routed(s.Anchor, cursor)}, nil

		case Cancel:
			return Wiring{}, nil

		case PlacePoint:
			if !s.Active {
				return startWire(cursor), nil
			}
			if cursor == s.Anchor {
				return Wiring{}, nil
			}
			cmd := CommitWire{Path: routed(s.Anchor, cursor)}
			if occupied != nil && occupied(cursor) {
				// landed on something: the wire is finished
				return Wiring{}, cmd
			}
			return startWire(cursor), cmd
		}
		return s, nil
	}
	return s, nil
}

func startWire(at grid.Point) Wiring {
	return Wiring{Active: true, Anchor: at, Preview: nets.NewGraph()}
}

func routed(from, to grid.Point) *nets.Graph {
	g := nets.NewGraph()
	g.Route(from, to)
	return g
}
