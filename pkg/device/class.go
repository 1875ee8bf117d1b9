// Package device holds the circuit devices placed on a schematic: their
// classes, the shared port/bounds catalog for each class, and the collection
// that owns placed instances.
package device

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownClass is returned by ParseClass for an unrecognized name.
var ErrUnknownClass = errors.New("device: unknown class")

// Class identifies the kind of a device.
type Class int

const (
	Resistor Class = iota
	Capacitor
	Inductor
	NMOS
	PMOS
	VoltageSource
	CurrentSource
	Ground
)

// Classes lists every class in declaration order.
var Classes = []Class{Resistor, Capacitor, Inductor, NMOS, PMOS, VoltageSource, CurrentSource, Ground}

func (c Class) String() string {
	switch c {
	case Resistor:
		return "resistor"
	case Capacitor:
		return "capacitor"
	case Inductor:
		return "inductor"
	case NMOS:
		return "nmos"
	case PMOS:
		return "pmos"
	case VoltageSource:
		return "vsource"
	case CurrentSource:
		return "isource"
	case Ground:
		return "ground"
	default:
		return "unknown"
	}
}

// Prefix returns the SPICE element letter. Ground has none: it emits no
// element line and only names its net.
func (c Class) Prefix() string {
	switch c {
	case Resistor:
		return "R"
	case Capacitor:
		return "C"
	case Inductor:
		return "L"
	case NMOS, PMOS:
		return "M"
	case VoltageSource:
		return "V"
	case CurrentSource:
		return "I"
	default:
		return ""
	}
}

// DefaultValue is the value a freshly placed device starts with.
func (c Class) DefaultValue() string {
	switch c {
	case Resistor:
		return "1k"
	case Capacitor:
		return "1u"
	case Inductor:
		return "1m"
	case VoltageSource:
		return "3.3"
	case CurrentSource:
		return "1m"
	default:
		return ""
	}
}

// Model returns the .model name a MOSFET refers to, or "".
func (c Class) Model() string {
	switch c {
	case NMOS:
		return "mosn"
	case PMOS:
		return "mosp"
	default:
		return ""
	}
}

// ParseClass accepts a class name, its short form, or its SPICE letter.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "res", "resistor":
		return Resistor, nil
	case "c", "cap", "capacitor":
		return Capacitor, nil
	case "l", "ind", "inductor":
		return Inductor, nil
	case "n", "nm", "nmos":
		return NMOS, nil
	case "p", "pm", "pmos":
		return PMOS, nil
	case "v", "vs", "vsource":
		return VoltageSource, nil
	case "i", "is", "isource":
		return CurrentSource, nil
	case "g", "gnd", "ground":
		return Ground, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}
