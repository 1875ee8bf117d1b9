package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	netlistOutput string
	netlistStdout bool
)

var netlistCmd = &cobra.Command{
	Use:   "netlist <schematic_file>",
	Short: "Write the SPICE netlist of a schematic",
	Long: `Load a schematic script and export its SPICE netlist.

The output path defaults to netlist_path from the config file
(netlist.cir when unset). An existing file is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runNetlist,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.Flags().StringVarP(&netlistOutput, "output", "o", "", "output file")
	netlistCmd.Flags().BoolVar(&netlistStdout, "stdout", false, "print the netlist instead of writing a file")
}

func runNetlist(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCircuit(cfg, args[0])
	if err != nil {
		return err
	}

	if netlistStdout {
		fmt.Fprint(cmd.OutOrStdout(), c.Netlist())
		return nil
	}

	path := netlistOutput
	if path == "" {
		path = cfg.NetlistPath
	}
	if err := c.ExportNetlist(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Netlist written to %s\n", path)
	return nil
}
