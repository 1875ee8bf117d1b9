package circuit

import (
	"fmt"

	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/nets"
)

// Element refers to one selectable item of the schematic by ID. Elements are
// comparable and can be used as map keys by a selection layer. An element
// whose item was deleted resolves to nothing and is ignored.
type Element interface {
	isElement()
	String() string
}

// EdgeElement is a wire segment.
type EdgeElement struct{ ID nets.EdgeID }

// DeviceElement is a placed device.
type DeviceElement struct{ ID device.ID }

// LabelElement is a net label.
type LabelElement struct{ ID nets.LabelID }

func (EdgeElement) isElement()   {}
func (DeviceElement) isElement() {}
func (LabelElement) isElement()  {}

func (e EdgeElement) String() string   { return fmt.Sprintf("edge#%d", e.ID) }
func (e DeviceElement) String() string { return fmt.Sprintf("device#%d", e.ID) }
func (e LabelElement) String() string  { return fmt.Sprintf("label#%d", e.ID) }
