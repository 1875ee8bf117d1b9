// Package netlist writes a schematic as a SPICE netlist.
package netlist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
	"github.com/OpenTraceLab/circe/pkg/nets"
)

// DefaultFilename is the artifact the editor exports to and the simulator
// reads from.
const DefaultFilename = "netlist.cir"

const (
	banner = "Netlist Created by Circe"

	// placeholder keeps the simulator from stalling on an empty circuit.
	placeholder = "V_0 0 n1 0"

	floatingPrefix = "nc"
)

var models = []string{
	".model MOSN NMOS level=1",
	".model MOSP PMOS level=1",
}

// ExportError reports a failure to write the netlist artifact.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("netlist: write %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Serialize renders the devices and the pruned graph as netlist text.
//
// Each port takes the net name at its grid point. A port on no named net
// gets a fresh floating name, shared only with ports on the same point.
func Serialize(ds *device.Devices, g *nets.Graph) string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	for _, m := range models {
		b.WriteString(m + "\n")
	}

	all := ds.All()
	if len(all) == 0 {
		b.WriteString(placeholder + "\n")
	}

	resolve := newResolver(g)
	for _, d := range all {
		b.WriteString(d.SpiceLine(resolve.node))
	}
	b.WriteString("\n")
	return b.String()
}

// Write serializes the schematic to w.
func Write(w io.Writer, ds *device.Devices, g *nets.Graph) error {
	_, err := io.WriteString(w, Serialize(ds, g))
	return err
}

// Export replaces the content of the file at path with the netlist.
func Export(path string, ds *device.Devices, g *nets.Graph) error {
	var buf bytes.Buffer
	if err := Write(&buf, ds, g); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// resolver names port nodes for one Serialize call.
type resolver struct {
	g        *nets.Graph
	used     map[string]bool
	floating map[grid.Point]string
	seq      int
}

func newResolver(g *nets.Graph) *resolver {
	used := make(map[string]bool)
	for _, name := range g.NetNames() {
		used[name] = true
	}
	return &resolver{g: g, used: used, floating: make(map[grid.Point]string)}
}

func (r *resolver) node(p grid.Point) string {
	if name := r.g.NetNameAt(p); name != "" {
		return name
	}
	if name, ok := r.floating[p]; ok {
		return name
	}
	var name string
	for {
		r.seq++
		name = fmt.Sprintf("%s%d", floatingPrefix, r.seq)
		if !r.used[name] {
			break
		}
	}
	r.used[name] = true
	r.floating[p] = name
	return name
}
