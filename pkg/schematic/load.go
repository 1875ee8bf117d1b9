package schematic

import (
	"log"

	"github.com/OpenTraceLab/circe/pkg/circuit"
)

// Apply replays the script into c: devices first so that their ports split
// the wires drawn onto them, then wires, then labels.
func (s *Schematic) Apply(c *circuit.Circuit) {
	for _, d := range s.Devices {
		c.PlaceDevice(d.Class, d.Transform(), d.Value)
	}
	for _, w := range s.Wires {
		c.AddWire(w.Points...)
	}
	for _, l := range s.Labels {
		c.PlaceLabel(l.Name, l.At)
	}
}

// Build returns a new circuit holding the script's content.
func (s *Schematic) Build(logger *log.Logger) *circuit.Circuit {
	c := circuit.New(logger)
	s.Apply(c)
	return c
}
