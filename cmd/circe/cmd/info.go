package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/circe/pkg/circuit"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <schematic_file>",
	Short: "Show devices, nets and labels of a schematic",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCircuit(cfg, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Schematic: %s\n", args[0])
	printSummary(cmd.OutOrStdout(), c)
	return nil
}

func printSummary(w io.Writer, c *circuit.Circuit) {
	g := c.Graph()
	if b := c.Bounds(); b.IsEmpty() {
		fmt.Fprintln(w, "Bounds: empty")
	} else {
		fmt.Fprintf(w, "Bounds: %v - %v\n", b.Min, b.Max)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Statistics:")
	fmt.Fprintf(w, "  Devices: %d\n", c.Devices().Len())
	fmt.Fprintf(w, "  Wire segments: %d\n", g.EdgeCount())
	fmt.Fprintf(w, "  Vertices: %d\n", g.VertexCount())
	fmt.Fprintf(w, "  Labels: %d\n", c.Labels().Len())
	fmt.Fprintf(w, "  Nets: %d\n", len(g.NetNames()))
	fmt.Fprintln(w)

	if c.Devices().Len() > 0 {
		fmt.Fprintln(w, "Devices:")
		for _, d := range c.Devices().All() {
			var ports []string
			for _, p := range d.Ports() {
				net := g.NetNameAt(p.Point)
				if net == "" {
					net = "-"
				}
				ports = append(ports, fmt.Sprintf("%s=%s", p.Name, net))
			}
			fmt.Fprintf(w, "  %-20s %s\n", d.Summary(), strings.Join(ports, " "))
		}
		fmt.Fprintln(w)
	}

	if names := g.NetNames(); len(names) > 0 {
		fmt.Fprintf(w, "Nets: %s\n", strings.Join(names, ", "))
	}

	if c.Labels().Len() > 0 {
		fmt.Fprintln(w, "Net Labels:")
		for _, l := range c.Labels().All() {
			marker := ""
			if !l.UserAssigned {
				marker = " (default)"
			}
			fmt.Fprintf(w, "  %s at %v%s\n", l.Name, l.Anchor, marker)
		}
	}
}
