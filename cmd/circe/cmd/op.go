package cmd

import (
	"fmt"
	"sort"

	"github.com/OpenTraceLab/circe/pkg/circuit"
	"github.com/OpenTraceLab/circe/pkg/oppoint"
	"github.com/spf13/cobra"
)

var opCmd = &cobra.Command{
	Use:   "op <schematic_file> <op_file>",
	Short: "Annotate a schematic with operating-point results",
	Long: `Read an operating-point listing as printed by ngspice
(e.g. "v(vdd) = 3.3") and show the voltage at every device port.`,
	Args: cobra.ExactArgs(2),
	RunE: runOp,
}

func init() {
	rootCmd.AddCommand(opCmd)
}

func runOp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCircuit(cfg, args[0])
	if err != nil {
		return err
	}

	res, err := oppoint.ParseFile(args[1])
	if err != nil {
		return fmt.Errorf("error reading results: %w", err)
	}
	c.Update(circuit.OpPoint{Results: res})

	out := cmd.OutOrStdout()
	for _, d := range c.Devices().All() {
		if len(d.OpPoint) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s:\n", d.Name())
		var ports []string
		for p := range d.OpPoint {
			ports = append(ports, p)
		}
		sort.Strings(ports)
		for _, p := range ports {
			fmt.Fprintf(out, "  %-4s %12.6g V\n", p, d.OpPoint[p])
		}
	}
	return nil
}
