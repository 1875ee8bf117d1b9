package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/circe/internal/config"
	"github.com/OpenTraceLab/circe/pkg/circuit"
	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
	"github.com/OpenTraceLab/circe/pkg/oppoint"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell [schematic_file]",
	Short: "Drive the schematic editor from stdin",
	Long: `Read editor commands from stdin, one per line, and apply each as a
single event. An optional schematic script seeds the circuit.

Commands:
  move X Y          pointer moved to (X, Y); prints the net under the cursor
  wire              enter wiring mode
  click             place a point
  cancel            drop the wire being drawn
  esc               return to idle
  place CLASS       place a device (r, c, l, nmos, pmos, v, i, gnd)
  label [NAME]      place a net label, optionally naming it
  value VALUE       set the value of the last placed device
  select X Y [SKIP] select the element under (X, Y)
  delete            delete the selection
  moveby DX DY      move the selection
  copy DX DY        copy the selection
  op FILE           annotate with operating-point results
  netlist           print the netlist
  export [PATH]     write the netlist
  info              show a summary
  state             show the editor state
  quit              exit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var c *circuit.Circuit
	if len(args) == 1 {
		if c, err = loadCircuit(cfg, args[0]); err != nil {
			return err
		}
	} else {
		c = newCircuit(cfg)
	}

	s := &shell{c: c, cfg: cfg, out: cmd.OutOrStdout()}
	return s.run(cmd.InOrStdin())
}

// shell maps text commands onto circuit events.
type shell struct {
	c   *circuit.Circuit
	cfg *config.Config
	out io.Writer

	last      circuit.Element
	selection []circuit.Element
}

func (s *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := s.exec(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *shell) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	verb, args := fields[0], fields[1:]

	switch verb {
	case "quit", "exit":
		return true, nil

	case "move":
		x, y, err := floatPair(args)
		if err != nil {
			return false, err
		}
		s.c.Update(circuit.PointerMoved{X: x, Y: y})
		if net := s.c.InfoBar(); net != "" {
			fmt.Fprintf(s.out, "net: %s\n", net)
		}

	case "wire":
		s.c.Update(circuit.BeginWire{})
	case "click":
		s.c.Update(circuit.PlacePoint{})
	case "cancel":
		s.c.Update(circuit.Cancel{})
	case "esc":
		s.c.Update(circuit.Escape{})

	case "place":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: place CLASS")
		}
		class, err := device.ParseClass(args[0])
		if err != nil {
			return false, err
		}
		s.remember(s.c.Update(circuit.PlaceDevice{Class: class}))

	case "label":
		reply := s.c.Update(circuit.PlaceLabel{})
		s.remember(reply)
		if l, ok := reply.NewElement.(circuit.LabelElement); ok && len(args) > 0 {
			s.c.RenameLabel(l.ID, strings.Join(args, " "))
		}

	case "value":
		d, ok := s.last.(circuit.DeviceElement)
		if !ok || len(args) == 0 {
			return false, fmt.Errorf("usage: value VALUE (after place)")
		}
		s.c.Devices().SetValue(d.ID, strings.Join(args, " "))

	case "select":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: select X Y [SKIP]")
		}
		x, y, err := intPair(args[:2])
		if err != nil {
			return false, err
		}
		skip := 0
		if len(args) > 2 {
			if skip, err = strconv.Atoi(args[2]); err != nil {
				return false, fmt.Errorf("bad skip %q", args[2])
			}
		}
		var count int
		e, ok := s.c.Selectable(grid.Pt(x, y), skip, &count)
		if !ok {
			s.selection = nil
			fmt.Fprintln(s.out, "nothing selected")
			return false, nil
		}
		s.selection = []circuit.Element{e}
		fmt.Fprintf(s.out, "selected %s\n", e)

	case "delete":
		s.c.Update(circuit.Delete{Elements: s.selection})
		s.selection = nil

	case "moveby", "copy":
		dx, dy, err := intPair(args)
		if err != nil {
			return false, err
		}
		t := grid.Translate(grid.Pt(dx, dy))
		if verb == "moveby" {
			s.selection = s.c.MoveElements(s.selection, t)
		} else {
			s.selection = s.c.CopyElements(s.selection, t)
		}

	case "op":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: op FILE")
		}
		res, err := oppoint.ParseFile(args[0])
		if err != nil {
			return false, err
		}
		s.c.Update(circuit.OpPoint{Results: res})

	case "netlist":
		fmt.Fprint(s.out, s.c.Netlist())

	case "export":
		path := s.cfg.NetlistPath
		if len(args) > 0 {
			path = args[0]
		}
		if err := s.c.ExportNetlist(path); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Netlist written to %s\n", path)

	case "info":
		printSummary(s.out, s.c)

	case "state":
		fmt.Fprintf(s.out, "%s at %v\n", stateName(s.c.State()), s.c.Cursor())

	default:
		return false, fmt.Errorf("unknown command %q", verb)
	}
	return false, nil
}

func (s *shell) remember(r circuit.Reply) {
	if r.NewElement != nil {
		s.last = r.NewElement
		s.selection = []circuit.Element{r.NewElement}
	}
}

func stateName(st circuit.State) string {
	switch st := st.(type) {
	case circuit.Wiring:
		if st.Active {
			return fmt.Sprintf("wiring from %v", st.Anchor)
		}
		return "wiring"
	default:
		return "idle"
	}
}

func floatPair(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected two coordinates")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad coordinate %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad coordinate %q", args[1])
	}
	return x, y, nil
}

func intPair(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected two coordinates")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad coordinate %q", args[1])
	}
	return x, y, nil
}
