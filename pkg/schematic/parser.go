package schematic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
	"github.com/OpenTraceLab/circe/pkg/sexp"
)

// ErrNotSchematic is returned when the input is not a (circe_sch ...) script.
var ErrNotSchematic = errors.New("schematic: not a circe schematic")

// ParseFile reads a schematic script from a file.
func ParseFile(filename string) (*Schematic, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("schematic: failed to open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseString reads a schematic script from a string.
func ParseString(s string) (*Schematic, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a schematic script.
func Parse(r io.Reader) (*Schematic, error) {
	nodes, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("schematic: failed to parse s-expression: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrNotSchematic)
	}

	root, ok := nodes[0].(*sexp.List)
	if !ok {
		return nil, fmt.Errorf("%w: root is an atom", ErrNotSchematic)
	}
	if name, _ := sexp.Name(root); name != "circe_sch" {
		return nil, fmt.Errorf("%w: expected 'circe_sch', got %q", ErrNotSchematic, name)
	}

	sch := &Schematic{Version: Version}
	if v, ok := sexp.FindNode(root, "version"); ok {
		if sch.Version, err = sexp.Int(v, 1); err != nil {
			return nil, fmt.Errorf("schematic: %w", err)
		}
		if sch.Version < 1 || sch.Version > Version {
			return nil, fmt.Errorf("schematic: unsupported version %d", sch.Version)
		}
	}

	for _, n := range sexp.FindAllNodes(root, "device") {
		d, err := parseDevice(n)
		if err != nil {
			return nil, fmt.Errorf("schematic: %w", err)
		}
		sch.Devices = append(sch.Devices, d)
	}

	for _, n := range sexp.FindAllNodes(root, "wire") {
		w, err := parseWire(n)
		if err != nil {
			return nil, fmt.Errorf("schematic: %w", err)
		}
		sch.Wires = append(sch.Wires, w)
	}

	for _, n := range sexp.FindAllNodes(root, "label") {
		l, err := parseLabel(n)
		if err != nil {
			return nil, fmt.Errorf("schematic: %w", err)
		}
		sch.Labels = append(sch.Labels, l)
	}

	return sch, nil
}

func parseDevice(n *sexp.List) (Device, error) {
	var d Device

	cls, ok := sexp.FindNode(n, "class")
	if !ok {
		return d, fmt.Errorf("line %d: device without class", n.Line)
	}
	name, err := sexp.Text(cls, 1)
	if err != nil {
		return d, err
	}
	if d.Class, err = device.ParseClass(name); err != nil {
		return d, fmt.Errorf("line %d: %w", cls.Line, err)
	}

	if at, ok := sexp.FindNode(n, "at"); ok {
		if d.At, err = getPoint(at); err != nil {
			return d, err
		}
	}

	if rot, ok := sexp.FindNode(n, "rot"); ok {
		if d.Rot, err = sexp.Int(rot, 1); err != nil {
			return d, err
		}
		if d.Rot%90 != 0 {
			return d, fmt.Errorf("line %d: rotation %d is not a multiple of 90", rot.Line, d.Rot)
		}
		d.Rot = ((d.Rot % 360) + 360) % 360
	}

	if m, ok := sexp.FindNode(n, "mirror"); ok {
		axis, err := sexp.Text(m, 1)
		if err != nil {
			return d, err
		}
		if axis != "x" && axis != "y" {
			return d, fmt.Errorf("line %d: mirror axis must be x or y, got %q", m.Line, axis)
		}
		d.Mirror = axis
	}

	if v, ok := sexp.FindNode(n, "value"); ok {
		if d.Value, err = sexp.Text(v, 1); err != nil {
			return d, err
		}
	}
	return d, nil
}

func parseWire(n *sexp.List) (Wire, error) {
	pts, ok := sexp.FindNode(n, "pts")
	if !ok {
		return Wire{}, fmt.Errorf("line %d: wire without pts", n.Line)
	}

	var w Wire
	for _, xy := range sexp.FindAllNodes(pts, "xy") {
		p, err := getPoint(xy)
		if err != nil {
			return Wire{}, err
		}
		w.Points = append(w.Points, p)
	}
	if len(w.Points) < 2 {
		return Wire{}, fmt.Errorf("line %d: wire needs at least two points", n.Line)
	}
	return w, nil
}

func parseLabel(n *sexp.List) (Label, error) {
	name, err := sexp.Text(n, 1)
	if err != nil {
		return Label{}, err
	}
	at, ok := sexp.FindNode(n, "at")
	if !ok {
		return Label{}, fmt.Errorf("line %d: label %q without position", n.Line, name)
	}
	p, err := getPoint(at)
	if err != nil {
		return Label{}, err
	}
	return Label{Name: name, At: p}, nil
}

// getPoint reads (key X Y) as a grid point.
func getPoint(n *sexp.List) (grid.Point, error) {
	x, err := sexp.Int(n, 1)
	if err != nil {
		return grid.Point{}, fmt.Errorf("failed to parse X: %w", err)
	}
	y, err := sexp.Int(n, 2)
	if err != nil {
		return grid.Point{}, fmt.Errorf("failed to parse Y: %w", err)
	}
	return grid.Pt(x, y), nil
}
